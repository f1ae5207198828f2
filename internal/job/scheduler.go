// Package job runs periodic background work on cron schedules.
package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler thin wrapper over robfig/cron with per-run timeouts and logging.
// Specs use the standard five fields in the scheduler's time zone.
type Scheduler struct {
	c      *cron.Cron
	parser cron.Parser
	logger *zap.Logger
}

// NewScheduler creates a stopped Scheduler evaluating specs in loc.
func NewScheduler(loc *time.Location, logger *zap.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return &Scheduler{
		c:      cron.New(cron.WithParser(parser), cron.WithLocation(loc)),
		parser: parser,
		logger: logger,
	}
}

// Register adds fn under spec. Overlapping runs of the same job are skipped.
func (s *Scheduler) Register(name, spec string, timeout time.Duration, fn func(ctx context.Context) error) error {
	if _, err := s.parser.Parse(spec); err != nil {
		return err
	}

	run := cron.FuncJob(func() {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		start := time.Now()
		if err := fn(ctx); err != nil {
			s.logger.Error("job failed", zap.String("job", name), zap.Duration("took", time.Since(start)), zap.Error(err))
			return
		}
		s.logger.Info("job finished", zap.String("job", name), zap.Duration("took", time.Since(start)))
	})

	_, err := s.c.AddJob(spec, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(run))
	if err != nil {
		return err
	}
	s.logger.Info("job registered", zap.String("job", name), zap.String("spec", spec))
	return nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.c.Start()
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.c.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("jobs still running at shutdown")
	}
}

package job

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"go.uber.org/zap"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/repository"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/scheduling"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/service"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/mail"
)

var digestTmpl = template.Must(template.New("digest").Parse(
	`Upcoming arrivals from {{.From}} to {{.Through}}
{{range .Items}}
- {{.Saint}} at {{.Location}}{{if .City}}, {{.City}}{{end}}
  {{.Start}} to {{.End}}{{if .Purpose}} ({{.Purpose}}){{end}}
{{end}}
{{len .Items}} schedule(s) in total.
`))

type digestItem struct {
	Saint, Location, City string
	Start, End            string
	Purpose               string
}

type digestData struct {
	From, Through string
	Items         []digestItem
}

// DigestJob mails active admins the schedules starting in the next few days.
type DigestJob struct {
	repo      *repository.Repository
	mailer    mail.Mailer
	clock     service.Clock
	daysAhead int
	logger    *zap.Logger
}

// NewDigestJob creates a DigestJob; daysAhead is clamped like the public
// upcoming listing.
func NewDigestJob(repo *repository.Repository, mailer mail.Mailer, clock service.Clock, daysAhead int, logger *zap.Logger) *DigestJob {
	return &DigestJob{
		repo:      repo,
		mailer:    mailer,
		clock:     clock,
		daysAhead: scheduling.ClampDaysAhead(daysAhead),
		logger:    logger,
	}
}

// Run sends one digest per recipient. Nothing is sent when no schedule
// starts in the window.
func (j *DigestJob) Run(ctx context.Context) error {
	after, through := scheduling.UpcomingWindow(j.clock.Today(), j.daysAhead)

	schedules, err := j.repo.Schedule.ListUpcoming(ctx, after, through, "", "", 0)
	if err != nil {
		return fmt.Errorf("list upcoming schedules: %w", err)
	}
	if len(schedules) == 0 {
		j.logger.Debug("digest skipped, nothing upcoming")
		return nil
	}

	admins, err := j.repo.AdminUser.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list admins: %w", err)
	}

	body, err := renderDigest(after.AddDays(1), through, schedules)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Upcoming arrivals: %d in the next %d days", len(schedules), j.daysAhead)

	var errs []error
	sent := 0
	for _, admin := range admins {
		if admin.Email == "" {
			continue
		}
		err := j.mailer.Send(ctx, mail.Message{To: []string{admin.Email}, Subject: subject, Body: body})
		if err != nil {
			j.logger.Warn("failed to send digest", zap.String("to", admin.Email), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		sent++
	}

	j.logger.Info("digest sent", zap.Int("recipients", sent), zap.Int("schedules", len(schedules)))
	return errors.Join(errs...)
}

func renderDigest(from, through scheduling.Date, schedules []model.Schedule) (string, error) {
	data := digestData{From: from.String(), Through: through.String()}
	for i := range schedules {
		s := &schedules[i]
		item := digestItem{Start: s.StartDate.String(), End: s.EndDate.String(), Purpose: s.Purpose}
		if s.Saint != nil {
			item.Saint = s.Saint.Name
			if s.Saint.Title != "" {
				item.Saint = s.Saint.Title + " " + s.Saint.Name
			}
		}
		if s.Location != nil {
			item.Location, item.City = s.Location.Name, s.Location.City
		}
		data.Items = append(data.Items, item)
	}

	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return buf.String(), nil
}

package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/repository"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/scheduling"
	pkgerrors "github.com/ai-tejas-firodiya/Jain-Munis/pkg/errors"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/lock"
)

// ScheduleService stay schedules and the one-saint-one-place invariant.
//
// Writes for a saint are serialised: the per-saint Locker is held around a
// transaction that row-locks the saint, looks for overlapping schedules and
// only then inserts or updates. On PostgreSQL an exclusion constraint backs
// this up; its violation surfaces as a conflict like any other.
type ScheduleService interface {
	Create(ctx context.Context, req *dto.CreateScheduleRequest, actor Actor) (*dto.ScheduleResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateScheduleRequest, actor Actor) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id string, actor Actor) error

	// CheckOverlap is the read-only conflict check. It does not check that
	// the saint exists.
	CheckOverlap(ctx context.Context, req *dto.OverlapCheckRequest) (*dto.OverlapCheckResponse, error)

	GetByID(ctx context.Context, id string) (*dto.ScheduleResponse, error)
	List(ctx context.Context, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, int64, error)
	ListCurrent(ctx context.Context, req *dto.CurrentSchedulesRequest) ([]dto.ScheduleResponse, error)
	ListUpcoming(ctx context.Context, req *dto.UpcomingSchedulesRequest) ([]dto.ScheduleResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	locker lock.Locker
	clock  Clock
	audit  Auditor
	logger *zap.Logger
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(
	repo *repository.Repository,
	locker lock.Locker,
	clock Clock,
	audit Auditor,
	logger *zap.Logger,
) ScheduleService {
	return &scheduleService{
		repo:   repo,
		locker: locker,
		clock:  clock,
		audit:  audit,
		logger: logger,
	}
}

func saintLockKey(saintID string) string {
	return "saint:" + saintID
}

// ────────────────────── Create ──────────────────────

func (s *scheduleService) Create(ctx context.Context, req *dto.CreateScheduleRequest, actor Actor) (*dto.ScheduleResponse, error) {
	// 1. dates first: an inverted range never reaches storage
	rg, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	// 2. references
	if err := s.ensureSaint(ctx, req.SaintID); err != nil {
		return nil, err
	}
	if err := s.ensureLocation(ctx, req.LocationID); err != nil {
		return nil, err
	}

	schedule := &model.Schedule{
		SaintID:       req.SaintID,
		LocationID:    req.LocationID,
		StartDate:     rg.Start,
		EndDate:       rg.End,
		Purpose:       req.Purpose,
		Notes:         req.Notes,
		ContactPerson: req.ContactPerson,
		ContactPhone:  req.ContactPhone,
	}
	schedule.CreatedBy = actor.ID
	schedule.UpdatedBy = actor.ID

	// 3. check and insert atomically for this saint
	unlock, err := s.locker.Lock(ctx, saintLockKey(req.SaintID))
	if err != nil {
		s.logger.Error("failed to acquire saint lock", zap.String("saint_id", req.SaintID), zap.Error(err))
		return nil, err
	}
	defer unlock()

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := tx.Saint.LockByID(ctx, req.SaintID); err != nil {
			return err
		}
		conflicts, err := tx.Schedule.FindOverlapping(ctx, req.SaintID, rg, "")
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return s.conflictError(conflicts)
		}
		return tx.Schedule.Create(ctx, schedule)
	})
	if err != nil {
		return nil, s.mapWriteError(ctx, err, req.SaintID, rg, "")
	}

	// 4. reload denormalised, then audit
	created, err := s.repo.Schedule.GetByID(ctx, schedule.ScheduleID)
	if err != nil {
		s.logger.Error("failed to reload schedule", zap.String("id", schedule.ScheduleID), zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, AuditEntry{
		Actor:      actor,
		Action:     model.ActionCreateSchedule,
		EntityType: model.EntitySchedule,
		EntityID:   created.ScheduleID,
		After:      scheduleSnapshot(created).JSON(),
	})

	resp := dto.NewScheduleResponse(created, s.clock.Today())
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

// scheduleChanges parsed form of an UpdateScheduleRequest
type scheduleChanges struct {
	req   *dto.UpdateScheduleRequest
	start *scheduling.Date
	end   *scheduling.Date
}

func parseScheduleChanges(req *dto.UpdateScheduleRequest) (*scheduleChanges, error) {
	c := &scheduleChanges{req: req}
	if req.StartDate != nil {
		d, err := scheduling.ParseDate(*req.StartDate)
		if err != nil {
			return nil, validationError("startDate: %v", err)
		}
		c.start = &d
	}
	if req.EndDate != nil {
		d, err := scheduling.ParseDate(*req.EndDate)
		if err != nil {
			return nil, validationError("endDate: %v", err)
		}
		c.end = &d
	}
	if c.start != nil && c.end != nil && c.end.Before(*c.start) {
		return nil, validationError("%v", scheduling.ErrInvalidRange)
	}
	return c, nil
}

// apply overlays the changes onto sch and returns the effective range.
func (c *scheduleChanges) apply(sch *model.Schedule) (scheduling.Range, error) {
	if c.req.SaintID != nil {
		sch.SaintID = *c.req.SaintID
	}
	if c.req.LocationID != nil {
		sch.LocationID = *c.req.LocationID
	}
	if c.start != nil {
		sch.StartDate = *c.start
	}
	if c.end != nil {
		sch.EndDate = *c.end
	}
	if c.req.Purpose != nil {
		sch.Purpose = *c.req.Purpose
	}
	if c.req.Notes != nil {
		sch.Notes = *c.req.Notes
	}
	if c.req.ContactPerson != nil {
		sch.ContactPerson = *c.req.ContactPerson
	}
	if c.req.ContactPhone != nil {
		sch.ContactPhone = *c.req.ContactPhone
	}
	// associations are stale once the ids may have changed
	sch.Saint = nil
	sch.Location = nil

	rg, err := scheduling.NewRange(sch.StartDate, sch.EndDate)
	if err != nil {
		return scheduling.Range{}, validationError("%v", err)
	}
	return rg, nil
}

// maxUpdateAttempts bounds how often Update re-locks after the schedule
// moved to another saint between its first read and the lock.
const maxUpdateAttempts = 3

// errSaintMoved the row was reassigned while Update waited for the lock on
// its previous saint.
var errSaintMoved = errors.New("schedule moved to another saint")

func (s *scheduleService) Update(ctx context.Context, id string, req *dto.UpdateScheduleRequest, actor Actor) (*dto.ScheduleResponse, error) {
	// 1. explicit dates are validated before any lookup
	changes, err := parseScheduleChanges(req)
	if err != nil {
		return nil, err
	}

	var before Snapshot
	for attempt := 1; ; attempt++ {
		before, err = s.updateOnce(ctx, id, req, changes, actor)
		if !errors.Is(err, errSaintMoved) {
			break
		}
		if attempt == maxUpdateAttempts {
			s.logger.Warn("schedule kept moving between saints", zap.String("id", id), zap.Int("attempts", attempt))
			return nil, ErrConcurrentUpdate
		}
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to reload schedule", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, AuditEntry{
		Actor:      actor,
		Action:     model.ActionUpdateSchedule,
		EntityType: model.EntitySchedule,
		EntityID:   id,
		Before:     before.JSON(),
		After:      scheduleSnapshot(updated).JSON(),
	})

	resp := dto.NewScheduleResponse(updated, s.clock.Today())
	return &resp, nil
}

// updateOnce reads the schedule, locks its effective saint and applies the
// changes. It returns errSaintMoved when the saint seen under the lock is
// not the one that was locked.
func (s *scheduleService) updateOnce(ctx context.Context, id string, req *dto.UpdateScheduleRequest, changes *scheduleChanges, actor Actor) (Snapshot, error) {
	// 2. effective values from the current record
	existing, err := s.getSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	preview := *existing
	rg, err := changes.apply(&preview)
	if err != nil {
		return nil, err
	}
	if req.SaintID != nil && *req.SaintID != existing.SaintID {
		if err := s.ensureSaint(ctx, *req.SaintID); err != nil {
			return nil, err
		}
	}
	if req.LocationID != nil && *req.LocationID != existing.LocationID {
		if err := s.ensureLocation(ctx, *req.LocationID); err != nil {
			return nil, err
		}
	}

	// 3. check and write under the effective saint's lock
	unlock, err := s.locker.Lock(ctx, saintLockKey(preview.SaintID))
	if err != nil {
		s.logger.Error("failed to acquire saint lock", zap.String("saint_id", preview.SaintID), zap.Error(err))
		return nil, err
	}
	defer unlock()

	var before Snapshot
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := tx.Saint.LockByID(ctx, preview.SaintID); err != nil {
			return err
		}
		// re-read inside the transaction: the row may have changed or gone
		current, err := tx.Schedule.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}
		before = scheduleSnapshot(current)

		rg, err = changes.apply(current)
		if err != nil {
			return err
		}
		if current.SaintID != preview.SaintID {
			return errSaintMoved
		}
		conflicts, err := tx.Schedule.FindOverlapping(ctx, current.SaintID, rg, id)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return s.conflictError(conflicts)
		}

		current.UpdatedBy = actor.ID
		return tx.Schedule.Update(ctx, current)
	})
	if err != nil {
		return nil, s.mapWriteError(ctx, err, preview.SaintID, rg, id)
	}
	return before, nil
}

// ────────────────────── Delete ──────────────────────

func (s *scheduleService) Delete(ctx context.Context, id string, actor Actor) error {
	var before Snapshot
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		existing, err := tx.Schedule.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}
		before = scheduleSnapshot(existing)
		return tx.Schedule.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrScheduleNotFound) {
			return err
		}
		s.logger.Error("failed to delete schedule", zap.String("id", id), zap.Error(err))
		return err
	}

	s.audit.Record(ctx, AuditEntry{
		Actor:      actor,
		Action:     model.ActionDeleteSchedule,
		EntityType: model.EntitySchedule,
		EntityID:   id,
		Before:     before.JSON(),
	})
	return nil
}

// ────────────────────── Overlap check ──────────────────────

func (s *scheduleService) CheckOverlap(ctx context.Context, req *dto.OverlapCheckRequest) (*dto.OverlapCheckResponse, error) {
	rg, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	conflicts, err := s.repo.Schedule.FindOverlapping(ctx, req.SaintID, rg, req.ExcludeScheduleID)
	if err != nil {
		s.logger.Error("failed to query overlapping schedules",
			zap.String("saint_id", req.SaintID), zap.Error(err))
		return nil, err
	}

	list := dto.NewScheduleResponses(conflicts, s.clock.Today())
	return &dto.OverlapCheckResponse{
		HasConflict: len(list) > 0,
		Conflicts:   list,
	}, nil
}

// ────────────────────── Queries ──────────────────────

func (s *scheduleService) GetByID(ctx context.Context, id string) (*dto.ScheduleResponse, error) {
	sch, err := s.getSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewScheduleResponse(sch, s.clock.Today())
	return &resp, nil
}

func (s *scheduleService) List(ctx context.Context, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, int64, error) {
	from, err := parseOptionalDate("from", req.From)
	if err != nil {
		return nil, 0, err
	}
	to, err := parseOptionalDate("to", req.To)
	if err != nil {
		return nil, 0, err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, 0, validationError("to must not be before from")
	}

	list, total, err := s.repo.Schedule.List(ctx, repository.ScheduleFilter{
		SaintID:    req.SaintID,
		LocationID: req.LocationID,
		City:       req.City,
		From:       from,
		To:         to,
		Page:       pageOf(req.PaginationRequest),
	})
	if err != nil {
		s.logger.Error("failed to list schedules", zap.Error(err))
		return nil, 0, err
	}
	return dto.NewScheduleResponses(list, s.clock.Today()), total, nil
}

func (s *scheduleService) ListCurrent(ctx context.Context, req *dto.CurrentSchedulesRequest) ([]dto.ScheduleResponse, error) {
	today := s.clock.Today()
	list, err := s.repo.Schedule.ListCurrent(ctx, today, req.City, req.SaintID)
	if err != nil {
		s.logger.Error("failed to list current schedules", zap.Error(err))
		return nil, err
	}
	return dto.NewScheduleResponses(list, today), nil
}

func (s *scheduleService) ListUpcoming(ctx context.Context, req *dto.UpcomingSchedulesRequest) ([]dto.ScheduleResponse, error) {
	today := s.clock.Today()
	after, through := scheduling.UpcomingWindow(today, scheduling.ClampDaysAhead(req.DaysAhead))

	list, err := s.repo.Schedule.ListUpcoming(ctx, after, through, req.City, req.SaintID, 0)
	if err != nil {
		s.logger.Error("failed to list upcoming schedules", zap.Error(err))
		return nil, err
	}
	return dto.NewScheduleResponses(list, today), nil
}

// ── helpers ──

func (s *scheduleService) getSchedule(ctx context.Context, id string) (*model.Schedule, error) {
	sch, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("failed to get schedule", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return sch, nil
}

func (s *scheduleService) ensureSaint(ctx context.Context, id string) error {
	if _, err := s.repo.Saint.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSaintNotFound
		}
		s.logger.Error("failed to get saint", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *scheduleService) ensureLocation(ctx context.Context, id string) error {
	if _, err := s.repo.Location.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		s.logger.Error("failed to get location", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *scheduleService) conflictError(conflicts []model.Schedule) error {
	return &ScheduleConflictError{Conflicts: dto.NewScheduleResponses(conflicts, s.clock.Today())}
}

// mapWriteError turns a failed check-and-write into a domain error where
// one applies, logging anything else.
func (s *scheduleService) mapWriteError(ctx context.Context, err error, saintID string, rg scheduling.Range, excludeID string) error {
	switch {
	case errors.Is(err, ErrScheduleConflict),
		errors.Is(err, ErrValidation),
		errors.Is(err, ErrScheduleNotFound),
		errors.Is(err, errSaintMoved):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrSaintNotFound
	case pkgerrors.IsExclusionViolation(err):
		// lost a race another instance won; report what it wrote
		s.logger.Warn("schedule exclusion constraint hit", zap.String("saint_id", saintID))
		conflicts, qerr := s.repo.Schedule.FindOverlapping(ctx, saintID, rg, excludeID)
		if qerr != nil {
			s.logger.Error("failed to query overlapping schedules", zap.String("saint_id", saintID), zap.Error(qerr))
			return qerr
		}
		return s.conflictError(conflicts)
	case pkgerrors.IsCheckViolation(err):
		return validationError("%v", scheduling.ErrInvalidRange)
	case pkgerrors.IsForeignKeyViolation(err):
		return validationError("saint or location no longer exists")
	}
	s.logger.Error("failed to write schedule", zap.String("saint_id", saintID), zap.Error(err))
	return err
}

// scheduleSnapshot audit view of the mutable fields.
func scheduleSnapshot(sch *model.Schedule) Snapshot {
	return Snapshot{
		"saintId":       sch.SaintID,
		"locationId":    sch.LocationID,
		"startDate":     sch.StartDate.String(),
		"endDate":       sch.EndDate.String(),
		"purpose":       sch.Purpose,
		"notes":         sch.Notes,
		"contactPerson": sch.ContactPerson,
		"contactPhone":  sch.ContactPhone,
	}
}

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
)

// SaintService saint directory. Saints are deactivated, never deleted, so
// their schedules keep a valid reference.
type SaintService interface {
	Create(ctx context.Context, req *dto.CreateSaintRequest, actor Actor) (*dto.SaintResponse, error)
	// GetProfile returns the saint with the current schedule and the next
	// few upcoming ones.
	GetProfile(ctx context.Context, id string) (*dto.SaintProfileResponse, error)
	List(ctx context.Context, req *dto.SaintListRequest) ([]dto.SaintResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateSaintRequest, actor Actor) (*dto.SaintResponse, error)
	Deactivate(ctx context.Context, id string, actor Actor) error
}

type saintService struct {
	repo   *repository.Repository
	clock  Clock
	audit  Auditor
	logger *zap.Logger
}

// NewSaintService creates a SaintService.
func NewSaintService(repo *repository.Repository, clock Clock, audit Auditor, logger *zap.Logger) SaintService {
	return &saintService{repo: repo, clock: clock, audit: audit, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *saintService) Create(ctx context.Context, req *dto.CreateSaintRequest, actor Actor) (*dto.SaintResponse, error) {
	saint := &model.Saint{
		Name:     req.Name,
		Title:    req.Title,
		Lineage:  req.Lineage,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
		IsActive: true,
	}
	saint.CreatedBy = actor.ID
	saint.UpdatedBy = actor.ID

	if err := s.repo.Saint.Create(ctx, saint); err != nil {
		s.logger.Error("failed to create saint", zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, AuditEntry{
		Actor:      actor,
		Action:     model.ActionCreateSaint,
		EntityType: model.EntitySaint,
		EntityID:   saint.SaintID,
		After:      saintSnapshot(saint).JSON(),
	})

	resp := dto.NewSaintResponse(saint)
	return &resp, nil
}

// ────────────────────── Profile ──────────────────────

func (s *saintService) GetProfile(ctx context.Context, id string) (*dto.SaintProfileResponse, error) {
	saint, err := s.getSaint(ctx, id)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()

	current, err := s.repo.Schedule.ListCurrent(ctx, today, "", id)
	if err != nil {
		s.logger.Error("failed to list current schedules", zap.String("saint_id", id), zap.Error(err))
		return nil, err
	}
	if len(current) > 1 {
		// cannot happen while the overlap guard holds
		s.logger.Warn("saint has more than one current schedule",
			zap.String("saint_id", id), zap.Int("count", len(current)))
	}

	upcoming, err := s.repo.Schedule.ListUpcoming(ctx, today, scheduling.Date{}, "", id, scheduling.ProfileUpcomingLimit)
	if err != nil {
		s.logger.Error("failed to list upcoming schedules", zap.String("saint_id", id), zap.Error(err))
		return nil, err
	}

	profile := &dto.SaintProfileResponse{
		SaintResponse:     dto.NewSaintResponse(saint),
		UpcomingSchedules: dto.NewScheduleResponses(upcoming, today),
	}

	ranges := make([]scheduling.Range, len(current))
	for i := range current {
		ranges[i] = current[i].Range()
	}
	if idx := scheduling.PickCurrent(ranges, today); idx >= 0 {
		resp := dto.NewScheduleResponse(&current[idx], today)
		profile.CurrentSchedule = &resp
	}

	return profile, nil
}

// ────────────────────── List ──────────────────────

func (s *saintService) List(ctx context.Context, req *dto.SaintListRequest) ([]dto.SaintResponse, int64, error) {
	saints, total, err := s.repo.Saint.List(ctx, repository.SaintFilter{
		Search:          req.Search,
		IncludeInactive: req.IncludeInactive,
		Page:            pageOf(req.PaginationRequest),
	})
	if err != nil {
		s.logger.Error("failed to list saints", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.SaintResponse, 0, len(saints))
	for i := range saints {
		result = append(result, dto.NewSaintResponse(&saints[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *saintService) Update(ctx context.Context, id string, req *dto.UpdateSaintRequest, actor Actor) (*dto.SaintResponse, error) {
	saint, err := s.getSaint(ctx, id)
	if err != nil {
		return nil, err
	}
	before := saintSnapshot(saint)

	if req.Name != nil {
		saint.Name = *req.Name
	}
	if req.Title != nil {
		saint.Title = *req.Title
	}
	if req.Lineage != nil {
		saint.Lineage = *req.Lineage
	}
	if req.Bio != nil {
		saint.Bio = *req.Bio
	}
	if req.PhotoURL != nil {
		saint.PhotoURL = *req.PhotoURL
	}
	if req.IsActive != nil {
		saint.IsActive = *req.IsActive
	}
	saint.UpdatedBy = actor.ID

	if err := s.repo.Saint.Update(ctx, saint); err != nil {
		s.logger.Error("failed to update saint", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, AuditEntry{
		Actor:      actor,
		Action:     model.ActionUpdateSaint,
		EntityType: model.EntitySaint,
		EntityID:   id,
		Before:     before.JSON(),
		After:      saintSnapshot(saint).JSON(),
	})

	resp := dto.NewSaintResponse(saint)
	return &resp, nil
}

// ────────────────────── Deactivate ──────────────────────

func (s *saintService) Deactivate(ctx context.Context, id string, actor Actor) error {
	saint, err := s.getSaint(ctx, id)
	if err != nil {
		return err
	}
	if !saint.IsActive {
		return nil
	}
	before := saintSnapshot(saint)

	saint.IsActive = false
	saint.UpdatedBy = actor.ID
	if err := s.repo.Saint.Update(ctx, saint); err != nil {
		s.logger.Error("failed to deactivate saint", zap.String("id", id), zap.Error(err))
		return err
	}

	s.audit.Record(ctx, AuditEntry{
		Actor:      actor,
		Action:     model.ActionDeactivateSaint,
		EntityType: model.EntitySaint,
		EntityID:   id,
		Before:     before.JSON(),
		After:      saintSnapshot(saint).JSON(),
	})
	return nil
}

// ── helpers ──

func (s *saintService) getSaint(ctx context.Context, id string) (*model.Saint, error) {
	saint, err := s.repo.Saint.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaintNotFound
		}
		s.logger.Error("failed to get saint", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return saint, nil
}

func saintSnapshot(saint *model.Saint) Snapshot {
	return Snapshot{
		"name":     saint.Name,
		"title":    saint.Title,
		"lineage":  saint.Lineage,
		"bio":      saint.Bio,
		"photoUrl": saint.PhotoURL,
		"isActive": saint.IsActive,
	}
}

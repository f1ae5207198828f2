package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/repository"
	pkgerrors "github.com/ai-tejas-firodiya/Jain-Munis/pkg/errors"
)

// LocationService location business interface
type LocationService interface {
	Create(ctx context.Context, req *dto.CreateLocationRequest, actor Actor) (*dto.LocationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.LocationResponse, error)
	List(ctx context.Context, req *dto.LocationListRequest) ([]dto.LocationResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateLocationRequest, actor Actor) (*dto.LocationResponse, error)
	// Delete refuses with ErrLocationInUse while any schedule references it.
	Delete(ctx context.Context, id string, actor Actor) error
}

type locationService struct {
	repo   *repository.Repository
	audit  Auditor
	logger *zap.Logger
}

// NewLocationService creates a LocationService.
func NewLocationService(repo *repository.Repository, audit Auditor, logger *zap.Logger) LocationService {
	return &locationService{repo: repo, audit: audit, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *locationService) Create(ctx context.Context, req *dto.CreateLocationRequest, actor Actor) (*dto.LocationResponse, error) {
	loc := &model.Location{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ContactPhone: req.ContactPhone,
	}

	if err := s.repo.Location.Create(ctx, loc); err != nil {
		s.logger.Error("failed to create location", zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, AuditEntry{
		Actor:      actor,
		Action:     model.ActionCreateLocation,
		EntityType: model.EntityLocation,
		EntityID:   loc.LocationID,
		After:      locationSnapshot(loc).JSON(),
	})

	resp := dto.NewLocationResponse(loc)
	return &resp, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *locationService) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	loc, err := s.getLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewLocationResponse(loc)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *locationService) List(ctx context.Context, req *dto.LocationListRequest) ([]dto.LocationResponse, int64, error) {
	locations, total, err := s.repo.Location.List(ctx, repository.LocationFilter{
		Search: req.Search,
		City:   req.City,
		Page:   pageOf(req.PaginationRequest),
	})
	if err != nil {
		s.logger.Error("failed to list locations", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		result = append(result, dto.NewLocationResponse(&locations[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *locationService) Update(ctx context.Context, id string, req *dto.UpdateLocationRequest, actor Actor) (*dto.LocationResponse, error) {
	loc, err := s.getLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	before := locationSnapshot(loc)

	if req.Name != nil {
		loc.Name = *req.Name
	}
	if req.Address != nil {
		loc.Address = *req.Address
	}
	if req.City != nil {
		loc.City = *req.City
	}
	if req.State != nil {
		loc.State = *req.State
	}
	if req.PostalCode != nil {
		loc.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		loc.Country = *req.Country
		if loc.Country == "" {
			loc.Country = model.DefaultCountry
		}
	}
	if req.Latitude != nil {
		loc.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		loc.Longitude = req.Longitude
	}
	if req.ContactPhone != nil {
		loc.ContactPhone = *req.ContactPhone
	}

	if err := s.repo.Location.Update(ctx, loc); err != nil {
		s.logger.Error("failed to update location", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, AuditEntry{
		Actor:      actor,
		Action:     model.ActionUpdateLocation,
		EntityType: model.EntityLocation,
		EntityID:   id,
		Before:     before.JSON(),
		After:      locationSnapshot(loc).JSON(),
	})

	resp := dto.NewLocationResponse(loc)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *locationService) Delete(ctx context.Context, id string, actor Actor) error {
	loc, err := s.getLocation(ctx, id)
	if err != nil {
		return err
	}

	inUse, err := s.repo.Schedule.CountByLocation(ctx, id)
	if err != nil {
		s.logger.Error("failed to count schedules of location", zap.String("id", id), zap.Error(err))
		return err
	}
	if inUse > 0 {
		return ErrLocationInUse
	}

	if err := s.repo.Location.Delete(ctx, id); err != nil {
		// a schedule may have been added since the count
		if pkgerrors.IsForeignKeyViolation(err) {
			return ErrLocationInUse
		}
		s.logger.Error("failed to delete location", zap.String("id", id), zap.Error(err))
		return err
	}

	s.audit.Record(ctx, AuditEntry{
		Actor:      actor,
		Action:     model.ActionDeleteLocation,
		EntityType: model.EntityLocation,
		EntityID:   id,
		Before:     locationSnapshot(loc).JSON(),
	})
	return nil
}

// ── helpers ──

func (s *locationService) getLocation(ctx context.Context, id string) (*model.Location, error) {
	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("failed to get location", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return loc, nil
}

func locationSnapshot(loc *model.Location) Snapshot {
	return Snapshot{
		"name":         loc.Name,
		"address":      loc.Address,
		"city":         loc.City,
		"state":        loc.State,
		"postalCode":   loc.PostalCode,
		"country":      loc.Country,
		"latitude":     loc.Latitude,
		"longitude":    loc.Longitude,
		"contactPhone": loc.ContactPhone,
	}
}

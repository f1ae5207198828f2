package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/repository"
)

// Snapshot field name → value view of an entity for the audit trail.
type Snapshot map[string]interface{}

// JSON serialises the snapshot; a nil snapshot yields nil.
func (s Snapshot) JSON() datatypes.JSON {
	if s == nil {
		return nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// AuditEntry one audit record. Before/After are already serialised so the
// sink stays independent of the entity types.
type AuditEntry struct {
	Actor      Actor
	Action     string
	EntityType string
	EntityID   string
	Before     datatypes.JSON
	After      datatypes.JSON
}

// Auditor receives audit entries. Record never fails from the caller's
// point of view; sink errors are logged.
type Auditor interface {
	Record(ctx context.Context, entry AuditEntry)
}

// ActivityLogService audit sink plus the admin listing.
type ActivityLogService interface {
	Auditor
	List(ctx context.Context, req *dto.ActivityLogListRequest) ([]dto.ActivityLogResponse, int64, error)
}

type activityLogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityLogService creates an ActivityLogService.
func NewActivityLogService(repo *repository.Repository, logger *zap.Logger) ActivityLogService {
	return &activityLogService{repo: repo, logger: logger}
}

func (s *activityLogService) Record(ctx context.Context, entry AuditEntry) {
	// the entity write already happened; a cancelled request must not drop its trail
	ctx = context.WithoutCancel(ctx)

	row := &model.ActivityLog{
		ActorID:    entry.Actor.ID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Before:     entry.Before,
		After:      entry.After,
		IPAddress:  entry.Actor.IP,
	}
	if err := s.repo.ActivityLog.Create(ctx, row); err != nil {
		s.logger.Error("failed to write activity log",
			zap.String("action", entry.Action),
			zap.String("entity_type", entry.EntityType),
			zap.String("entity_id", entry.EntityID),
			zap.Error(err))
	}
}

func (s *activityLogService) List(ctx context.Context, req *dto.ActivityLogListRequest) ([]dto.ActivityLogResponse, int64, error) {
	logs, total, err := s.repo.ActivityLog.List(ctx, repository.ActivityLogFilter{
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		ActorID:    req.ActorID,
		Action:     req.Action,
		Page:       pageOf(req.PaginationRequest),
	})
	if err != nil {
		s.logger.Error("failed to list activity logs", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ActivityLogResponse, 0, len(logs))
	for i := range logs {
		result = append(result, dto.NewActivityLogResponse(&logs[i]))
	}
	return result, total, nil
}

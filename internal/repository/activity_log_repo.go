package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
)

// ActivityLogFilter list criteria
type ActivityLogFilter struct {
	EntityType string
	EntityID   string
	ActorID    string
	Action     string
	Page
}

// ActivityLogRepository append-only audit storage
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *model.ActivityLog) error
	List(ctx context.Context, f ActivityLogFilter) ([]model.ActivityLog, int64, error)
}

type activityLogRepo struct {
	db *gorm.DB
}

// NewActivityLogRepo creates an ActivityLogRepository.
func NewActivityLogRepo(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepo{db: db}
}

func (r *activityLogRepo) Create(ctx context.Context, entry *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *activityLogRepo) List(ctx context.Context, f ActivityLogFilter) ([]model.ActivityLog, int64, error) {
	var logs []model.ActivityLog
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ActivityLog{})
	if f.EntityType != "" {
		db = db.Where("entity_type = ?", f.EntityType)
	}
	if f.EntityID != "" {
		db = db.Where("entity_id = ?", f.EntityID)
	}
	if f.ActorID != "" {
		db = db.Where("actor_id = ?", f.ActorID)
	}
	if f.Action != "" {
		db = db.Where("action = ?", f.Action)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := f.Page.apply(db).Order("created_at DESC").Find(&logs).Error
	return logs, total, err
}

package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/scheduling"
)

// ScheduleFilter list criteria. From/To select schedules that overlap the
// window; either bound may be zero.
type ScheduleFilter struct {
	SaintID    string
	LocationID string
	City       string
	From       scheduling.Date
	To         scheduling.Date
	Page
}

// ScheduleRepository schedule data access. Read methods preload Saint and
// Location so results can be shown without further lookups.
type ScheduleRepository interface {
	Create(ctx context.Context, s *model.Schedule) error
	GetByID(ctx context.Context, id string) (*model.Schedule, error)
	Update(ctx context.Context, s *model.Schedule) error
	Delete(ctx context.Context, id string) error

	// FindOverlapping returns the saint's schedules sharing at least one day
	// with r, skipping excludeID, ordered by start date.
	FindOverlapping(ctx context.Context, saintID string, r scheduling.Range, excludeID string) ([]model.Schedule, error)

	List(ctx context.Context, f ScheduleFilter) ([]model.Schedule, int64, error)
	// ListCurrent schedules whose range contains today.
	ListCurrent(ctx context.Context, today scheduling.Date, city, saintID string) ([]model.Schedule, error)
	// ListUpcoming schedules starting in (after, through]. A zero through
	// means no upper bound; limit 0 = all.
	ListUpcoming(ctx context.Context, after, through scheduling.Date, city, saintID string, limit int) ([]model.Schedule, error)
	ListBySaint(ctx context.Context, saintID string) ([]model.Schedule, error)

	CountByLocation(ctx context.Context, locationID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountCurrent(ctx context.Context, today scheduling.Date) (int64, error)
	CountUpcoming(ctx context.Context, after, through scheduling.Date) (int64, error)
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo creates a ScheduleRepository.
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Saint").
		Preload("Location")
}

func (r *scheduleRepo) Create(ctx context.Context, s *model.Schedule) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*model.Schedule, error) {
	var s model.Schedule
	err := r.withRelations(ctx).
		Where("schedule_id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepo) Update(ctx context.Context, s *model.Schedule) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error
}

func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("schedule_id = ?", id).
		Delete(&model.Schedule{}).Error
}

// ── overlap ──

func (r *scheduleRepo) FindOverlapping(ctx context.Context, saintID string, rg scheduling.Range, excludeID string) ([]model.Schedule, error) {
	var schedules []model.Schedule

	// closed ranges: [a,b] and [c,d] overlap iff a <= d AND c <= b
	db := r.withRelations(ctx).
		Where("saint_id = ?", saintID).
		Where("start_date <= ? AND end_date >= ?", rg.End, rg.Start)
	if excludeID != "" {
		db = db.Where("schedule_id <> ?", excludeID)
	}

	err := db.Order("start_date ASC").Find(&schedules).Error
	return schedules, err
}

// ── listings ──

func (r *scheduleRepo) scoped(db *gorm.DB, city, saintID string) *gorm.DB {
	if saintID != "" {
		db = db.Where("saint_id = ?", saintID)
	}
	if city != "" {
		db = db.Where("location_id IN (?)",
			r.db.Model(&model.Location{}).Select("location_id").Where("LOWER(city) = LOWER(?)", city))
	}
	return db
}

func (r *scheduleRepo) List(ctx context.Context, f ScheduleFilter) ([]model.Schedule, int64, error) {
	var schedules []model.Schedule
	var total int64

	db := r.scoped(r.db.WithContext(ctx).Model(&model.Schedule{}), f.City, f.SaintID)
	if f.LocationID != "" {
		db = db.Where("location_id = ?", f.LocationID)
	}
	if !f.From.IsZero() {
		db = db.Where("end_date >= ?", f.From)
	}
	if !f.To.IsZero() {
		db = db.Where("start_date <= ?", f.To)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := f.Page.apply(db).
		Preload("Saint").Preload("Location").
		Order("start_date ASC, created_at ASC").
		Find(&schedules).Error
	return schedules, total, err
}

func (r *scheduleRepo) ListCurrent(ctx context.Context, today scheduling.Date, city, saintID string) ([]model.Schedule, error) {
	var schedules []model.Schedule
	db := r.scoped(r.withRelations(ctx), city, saintID).
		Where("start_date <= ? AND end_date >= ?", today, today)
	err := db.Order("start_date DESC").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) ListUpcoming(ctx context.Context, after, through scheduling.Date, city, saintID string, limit int) ([]model.Schedule, error) {
	var schedules []model.Schedule
	db := r.scoped(r.withRelations(ctx), city, saintID).
		Where("start_date > ?", after)
	if !through.IsZero() {
		db = db.Where("start_date <= ?", through)
	}
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Order("start_date ASC").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) ListBySaint(ctx context.Context, saintID string) ([]model.Schedule, error) {
	var schedules []model.Schedule
	err := r.withRelations(ctx).
		Where("saint_id = ?", saintID).
		Order("start_date ASC").
		Find(&schedules).Error
	return schedules, err
}

// ── counts ──

func (r *scheduleRepo) CountByLocation(ctx context.Context, locationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("location_id = ?", locationID).
		Count(&count).Error
	return count, err
}

func (r *scheduleRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Schedule{}).Count(&count).Error
	return count, err
}

func (r *scheduleRepo) CountCurrent(ctx context.Context, today scheduling.Date) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("start_date <= ? AND end_date >= ?", today, today).
		Count(&count).Error
	return count, err
}

func (r *scheduleRepo) CountUpcoming(ctx context.Context, after, through scheduling.Date) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("start_date > ? AND start_date <= ?", after, through).
		Count(&count).Error
	return count, err
}

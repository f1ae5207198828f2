package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
)

// LocationFilter list criteria
type LocationFilter struct {
	Search string // name, address or city
	City   string // exact, case-insensitive
	Page
}

// LocationRepository location data access
type LocationRepository interface {
	Create(ctx context.Context, loc *model.Location) error
	GetByID(ctx context.Context, id string) (*model.Location, error)
	List(ctx context.Context, f LocationFilter) ([]model.Location, int64, error)
	Update(ctx context.Context, loc *model.Location) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type locationRepo struct {
	db *gorm.DB
}

// NewLocationRepo creates a LocationRepository.
func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) Create(ctx context.Context, loc *model.Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *locationRepo) GetByID(ctx context.Context, id string) (*model.Location, error) {
	var loc model.Location
	err := r.db.WithContext(ctx).
		Where("location_id = ?", id).
		First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *locationRepo) List(ctx context.Context, f LocationFilter) ([]model.Location, int64, error) {
	var locations []model.Location
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Location{})
	if f.City != "" {
		db = db.Where("LOWER(city) = LOWER(?)", f.City)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		db = db.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ? OR LOWER(city) LIKE ?", p, p, p)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := f.Page.apply(db).Order("city ASC, name ASC").Find(&locations).Error
	return locations, total, err
}

func (r *locationRepo) Update(ctx context.Context, loc *model.Location) error {
	return r.db.WithContext(ctx).Save(loc).Error
}

func (r *locationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("location_id = ?", id).
		Delete(&model.Location{}).Error
}

func (r *locationRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Location{}).Count(&count).Error
	return count, err
}

package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
)

// SaintFilter list criteria
type SaintFilter struct {
	Search          string // name, title or lineage, case-insensitive
	IncludeInactive bool
	Page
}

// SaintRepository saint data access
type SaintRepository interface {
	Create(ctx context.Context, saint *model.Saint) error
	GetByID(ctx context.Context, id string) (*model.Saint, error)
	// LockByID loads the saint with SELECT ... FOR UPDATE. Only meaningful
	// inside a transaction; SQLite ignores the clause.
	LockByID(ctx context.Context, id string) (*model.Saint, error)
	List(ctx context.Context, f SaintFilter) ([]model.Saint, int64, error)
	Update(ctx context.Context, saint *model.Saint) error
	Count(ctx context.Context, activeOnly bool) (int64, error)
}

type saintRepo struct {
	db *gorm.DB
}

// NewSaintRepo creates a SaintRepository.
func NewSaintRepo(db *gorm.DB) SaintRepository {
	return &saintRepo{db: db}
}

func (r *saintRepo) Create(ctx context.Context, saint *model.Saint) error {
	return r.db.WithContext(ctx).Create(saint).Error
}

func (r *saintRepo) GetByID(ctx context.Context, id string) (*model.Saint, error) {
	var saint model.Saint
	err := r.db.WithContext(ctx).
		Where("saint_id = ?", id).
		First(&saint).Error
	if err != nil {
		return nil, err
	}
	return &saint, nil
}

func (r *saintRepo) LockByID(ctx context.Context, id string) (*model.Saint, error) {
	var saint model.Saint
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("saint_id = ?", id).
		First(&saint).Error
	if err != nil {
		return nil, err
	}
	return &saint, nil
}

func (r *saintRepo) List(ctx context.Context, f SaintFilter) ([]model.Saint, int64, error) {
	var saints []model.Saint
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Saint{})
	if !f.IncludeInactive {
		db = db.Where("is_active = ?", true)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		db = db.Where("LOWER(name) LIKE ? OR LOWER(title) LIKE ? OR LOWER(lineage) LIKE ?", p, p, p)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := f.Page.apply(db).Order("name ASC").Find(&saints).Error
	return saints, total, err
}

func (r *saintRepo) Update(ctx context.Context, saint *model.Saint) error {
	return r.db.WithContext(ctx).Save(saint).Error
}

func (r *saintRepo) Count(ctx context.Context, activeOnly bool) (int64, error) {
	var count int64
	db := r.db.WithContext(ctx).Model(&model.Saint{})
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	err := db.Count(&count).Error
	return count, err
}

package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Repository aggregates every repository over one *gorm.DB (or one
// transaction, see WithTx).
type Repository struct {
	db *gorm.DB

	Saint       SaintRepository
	Location    LocationRepository
	Schedule    ScheduleRepository
	AdminUser   AdminUserRepository
	ActivityLog ActivityLogRepository
}

// NewRepository creates the aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:          db,
		Saint:       NewSaintRepo(db),
		Location:    NewLocationRepo(db),
		Schedule:    NewScheduleRepo(db),
		AdminUser:   NewAdminUserRepo(db),
		ActivityLog: NewActivityLogRepo(db),
	}
}

// WithTx returns an aggregate whose repositories all run inside tx.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}

// Transaction runs fn in a database transaction, committing when fn returns
// nil. Without a database (hand-built aggregates in tests) fn runs against r.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// Ping checks the database connection.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ── shared helpers ──

// Page offset/limit pair; zero Limit means no limit.
type Page struct {
	Offset int
	Limit  int
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	if p.Offset > 0 {
		db = db.Offset(p.Offset)
	}
	if p.Limit > 0 {
		db = db.Limit(p.Limit)
	}
	return db
}

// likePattern lower-cased contains pattern for a LOWER(col) LIKE ? clause.
func likePattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
)

// AdminUserRepository admin account data access
type AdminUserRepository interface {
	Create(ctx context.Context, user *model.AdminUser) error
	GetByID(ctx context.Context, id string) (*model.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	Update(ctx context.Context, user *model.AdminUser) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	List(ctx context.Context, page Page) ([]model.AdminUser, int64, error)
	ListActive(ctx context.Context) ([]model.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}

type adminUserRepo struct {
	db *gorm.DB
}

// NewAdminUserRepo creates an AdminUserRepository.
func NewAdminUserRepo(db *gorm.DB) AdminUserRepository {
	return &adminUserRepo{db: db}
}

func (r *adminUserRepo) Create(ctx context.Context, user *model.AdminUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *adminUserRepo) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.db.WithContext(ctx).
		Where("admin_user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminUserRepo) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminUserRepo) Update(ctx context.Context, user *model.AdminUser) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *adminUserRepo) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.AdminUser{}).
		Where("admin_user_id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

func (r *adminUserRepo) List(ctx context.Context, page Page) ([]model.AdminUser, int64, error) {
	var users []model.AdminUser
	var total int64

	db := r.db.WithContext(ctx).Model(&model.AdminUser{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := page.apply(db).Order("created_at ASC").Find(&users).Error
	return users, total, err
}

func (r *adminUserRepo) ListActive(ctx context.Context) ([]model.AdminUser, error) {
	var users []model.AdminUser
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("username ASC").
		Find(&users).Error
	return users, err
}

func (r *adminUserRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.AdminUser{}).Count(&count).Error
	return count, err
}

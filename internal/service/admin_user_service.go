package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ai-tejas-firodiya/Jain-Munis/config"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/repository"
	pkgerrors "github.com/ai-tejas-firodiya/Jain-Munis/pkg/errors"
)

// AdminUserService account management for super admins
type AdminUserService interface {
	List(ctx context.Context, req *dto.AdminUserListRequest) ([]dto.AdminUserResponse, int64, error)
	Create(ctx context.Context, req *dto.CreateAdminUserRequest, actor Actor) (*dto.AdminUserResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateAdminUserRequest, actor Actor) (*dto.AdminUserResponse, error)
	ResetPassword(ctx context.Context, id string, req *dto.ResetPasswordRequest, actor Actor) error

	// EnsureSuperAdmin creates the configured super admin when no admin
	// account exists yet. It reports whether an account was created.
	EnsureSuperAdmin(ctx context.Context, cfg *config.BootstrapConfig) (bool, error)
}

type adminUserService struct {
	repo   *repository.Repository
	audit  Auditor
	logger *zap.Logger
}

// NewAdminUserService creates an AdminUserService.
func NewAdminUserService(repo *repository.Repository, audit Auditor, logger *zap.Logger) AdminUserService {
	return &adminUserService{repo: repo, audit: audit, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *adminUserService) List(ctx context.Context, req *dto.AdminUserListRequest) ([]dto.AdminUserResponse, int64, error) {
	users, total, err := s.repo.AdminUser.List(ctx, pageOf(req.PaginationRequest))
	if err != nil {
		s.logger.Error("failed to list admin users", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.AdminUserResponse, 0, len(users))
	for i := range users {
		result = append(result, dto.NewAdminUserResponse(&users[i]))
	}
	return result, total, nil
}

// ────────────────────── Create ──────────────────────

func (s *adminUserService) Create(ctx context.Context, req *dto.CreateAdminUserRequest, actor Actor) (*dto.AdminUserResponse, error) {
	if !model.ValidRole(req.Role) {
		return nil, validationError("unknown role %q", req.Role)
	}

	if _, err := s.repo.AdminUser.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("failed to get admin user", zap.Error(err))
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &model.AdminUser{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := s.repo.AdminUser.Create(ctx, user); err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("failed to create admin user", zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, AuditEntry{
		Actor:      actor,
		Action:     model.ActionCreateAdminUser,
		EntityType: model.EntityAdminUser,
		EntityID:   user.AdminUserID,
		After:      adminUserSnapshot(user).JSON(),
	})

	resp := dto.NewAdminUserResponse(user)
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *adminUserService) Update(ctx context.Context, id string, req *dto.UpdateAdminUserRequest, actor Actor) (*dto.AdminUserResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	self := actor.ID != nil && *actor.ID == id
	if self && req.IsActive != nil && !*req.IsActive {
		return nil, validationError("you cannot deactivate your own account")
	}
	if self && req.Role != nil && *req.Role != user.Role {
		return nil, validationError("you cannot change your own role")
	}
	if req.Role != nil && !model.ValidRole(*req.Role) {
		return nil, validationError("unknown role %q", *req.Role)
	}

	before := adminUserSnapshot(user)
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.AdminUser.Update(ctx, user); err != nil {
		s.logger.Error("failed to update admin user", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, AuditEntry{
		Actor:      actor,
		Action:     model.ActionUpdateAdminUser,
		EntityType: model.EntityAdminUser,
		EntityID:   id,
		Before:     before.JSON(),
		After:      adminUserSnapshot(user).JSON(),
	})

	resp := dto.NewAdminUserResponse(user)
	return &resp, nil
}

// ────────────────────── ResetPassword ──────────────────────

func (s *adminUserService) ResetPassword(ctx context.Context, id string, req *dto.ResetPasswordRequest, actor Actor) error {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return err
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return err
	}
	user.PasswordHash = hash

	if err := s.repo.AdminUser.Update(ctx, user); err != nil {
		s.logger.Error("failed to reset password", zap.String("id", id), zap.Error(err))
		return err
	}

	s.audit.Record(ctx, AuditEntry{
		Actor:      actor,
		Action:     model.ActionResetPassword,
		EntityType: model.EntityAdminUser,
		EntityID:   id,
	})
	return nil
}

// ────────────────────── Bootstrap ──────────────────────

func (s *adminUserService) EnsureSuperAdmin(ctx context.Context, cfg *config.BootstrapConfig) (bool, error) {
	if cfg == nil || cfg.AdminUsername == "" {
		return false, nil
	}

	count, err := s.repo.AdminUser.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count admin users", zap.Error(err))
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := hashPassword(cfg.AdminPassword)
	if err != nil {
		return false, err
	}
	user := &model.AdminUser{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		Role:         model.RoleSuperAdmin,
		IsActive:     true,
	}
	if user.Name == "" {
		user.Name = cfg.AdminUsername
	}

	if err := s.repo.AdminUser.Create(ctx, user); err != nil {
		// another instance bootstrapped first
		if pkgerrors.IsUniqueViolation(err) {
			return false, nil
		}
		s.logger.Error("failed to create super admin", zap.Error(err))
		return false, err
	}

	s.audit.Record(ctx, AuditEntry{
		Actor:      SystemActor(),
		Action:     model.ActionBootstrapAccount,
		EntityType: model.EntityAdminUser,
		EntityID:   user.AdminUserID,
		After:      adminUserSnapshot(user).JSON(),
	})
	s.logger.Info("super admin created", zap.String("username", user.Username))
	return true, nil
}

// ── helpers ──

func (s *adminUserService) getUser(ctx context.Context, id string) (*model.AdminUser, error) {
	user, err := s.repo.AdminUser.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminUserNotFound
		}
		s.logger.Error("failed to get admin user", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// adminUserSnapshot never includes the password hash.
func adminUserSnapshot(u *model.AdminUser) Snapshot {
	return Snapshot{
		"username": u.Username,
		"name":     u.Name,
		"email":    u.Email,
		"role":     u.Role,
		"isActive": u.IsActive,
	}
}

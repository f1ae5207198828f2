package dto

import (
	"time"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
)

// ── admin users ──

// CreateAdminUserRequest new admin account
type CreateAdminUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,alphanum"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Email    string `json:"email"    binding:"omitempty,email,max=255"`
	Role     string `json:"role"     binding:"required,oneof=admin super_admin"`
}

// UpdateAdminUserRequest partial update
type UpdateAdminUserRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email"    binding:"omitempty,email,max=255"`
	Role     *string `json:"role"     binding:"omitempty,oneof=admin super_admin"`
	IsActive *bool   `json:"isActive"`
}

// ResetPasswordRequest password set by a super admin
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72"`
}

// AdminUserListRequest list query
type AdminUserListRequest struct {
	PaginationRequest
}

// AdminUserResponse admin account without secrets
type AdminUserResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Name        string  `json:"name"`
	Email       string  `json:"email,omitempty"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"isActive"`
	LastLoginAt *string `json:"lastLoginAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// NewAdminUserResponse maps the model.
func NewAdminUserResponse(u *model.AdminUser) AdminUserResponse {
	resp := AdminUserResponse{
		ID:        u.AdminUserID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.UTC().Format(timeLayout),
	}
	if u.LastLoginAt != nil {
		s := u.LastLoginAt.UTC().Format(time.RFC3339)
		resp.LastLoginAt = &s
	}
	return resp
}

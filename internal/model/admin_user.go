package model

import (
	"time"

	"gorm.io/gorm"
)

// Admin roles. There is no finer-grained permission model.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// AdminUser a principal allowed to edit the directory
type AdminUser struct {
	AdminUserID  string     `gorm:"type:uuid;primaryKey"                   json:"id"`
	Username     string     `gorm:"type:varchar(50);not null;uniqueIndex"  json:"username"`
	PasswordHash string     `gorm:"type:varchar(255);not null"             json:"-"`
	Name         string     `gorm:"type:varchar(100);not null"             json:"name"`
	Email        string     `gorm:"type:varchar(255)"                      json:"email,omitempty"`
	Role         string     `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	IsActive     bool       `gorm:"not null;default:true"                  json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	Timestamps
}

// TableName table name
func (AdminUser) TableName() string { return "admin_users" }

func (u *AdminUser) BeforeCreate(*gorm.DB) error {
	ensureID(&u.AdminUserID)
	return nil
}

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

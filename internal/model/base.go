package model

import (
	"time"

	"github.com/google/uuid"
)

// Timestamps creation and modification times
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// BaseModel timestamps plus the acting admin of each write (nil = system)
type BaseModel struct {
	Timestamps
	CreatedBy *string `gorm:"type:uuid" json:"createdBy,omitempty"`
	UpdatedBy *string `gorm:"type:uuid" json:"updatedBy,omitempty"`
}

// ensureID fills an empty primary key. IDs are generated in Go rather than by
// gen_random_uuid() so the same models work on SQLite.
func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// All lists every model in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&AdminUser{},
		&Saint{},
		&Location{},
		&Schedule{},
		&ActivityLog{},
	}
}

package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Audit action codes
const (
	ActionCreateSchedule = "CREATE_SCHEDULE"
	ActionUpdateSchedule = "UPDATE_SCHEDULE"
	ActionDeleteSchedule = "DELETE_SCHEDULE"

	ActionCreateSaint     = "CREATE_SAINT"
	ActionUpdateSaint     = "UPDATE_SAINT"
	ActionDeactivateSaint = "DEACTIVATE_SAINT"

	ActionCreateLocation = "CREATE_LOCATION"
	ActionUpdateLocation = "UPDATE_LOCATION"
	ActionDeleteLocation = "DELETE_LOCATION"

	ActionCreateAdminUser  = "CREATE_ADMIN_USER"
	ActionUpdateAdminUser  = "UPDATE_ADMIN_USER"
	ActionResetPassword    = "RESET_ADMIN_PASSWORD"
	ActionChangePassword   = "CHANGE_PASSWORD"
	ActionBootstrapAccount = "BOOTSTRAP_SUPER_ADMIN"
)

// Audited entity types
const (
	EntitySchedule  = "schedule"
	EntitySaint     = "saint"
	EntityLocation  = "location"
	EntityAdminUser = "admin_user"
)

// ActivityLog append-only audit trail. Before/After are JSON snapshots.
type ActivityLog struct {
	LogID      string         `gorm:"type:uuid;primaryKey"                       json:"id"`
	ActorID    *string        `gorm:"type:uuid;index"                            json:"actorId,omitempty"`
	Action     string         `gorm:"type:varchar(50);not null;index"            json:"action"`
	EntityType string         `gorm:"type:varchar(30);not null;index:idx_activity_entity,priority:1" json:"entityType"`
	EntityID   string         `gorm:"type:uuid;index:idx_activity_entity,priority:2" json:"entityId"`
	Before     datatypes.JSON `json:"before,omitempty"`
	After      datatypes.JSON `json:"after,omitempty"`
	IPAddress  string         `gorm:"column:ip_address;type:varchar(45)"         json:"ipAddress,omitempty"`
	CreatedAt  time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;index"   json:"createdAt"`
}

// TableName table name
func (ActivityLog) TableName() string { return "activity_logs" }

func (l *ActivityLog) BeforeCreate(*gorm.DB) error {
	ensureID(&l.LogID)
	return nil
}

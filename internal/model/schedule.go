package model

import (
	"gorm.io/gorm"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/scheduling"
)

// Schedule a saint's stay at a location over a closed date range.
// No two schedules of one saint may overlap.
type Schedule struct {
	ScheduleID    string          `gorm:"type:uuid;primaryKey"                                       json:"id"`
	SaintID       string          `gorm:"type:uuid;not null;index:idx_schedules_saint_dates,priority:1" json:"saintId"`
	LocationID    string          `gorm:"type:uuid;not null;index"                                   json:"locationId"`
	StartDate     scheduling.Date `gorm:"not null;index:idx_schedules_saint_dates,priority:2;check:chk_schedules_dates,end_date >= start_date" json:"startDate"`
	EndDate       scheduling.Date `gorm:"not null;index:idx_schedules_saint_dates,priority:3"        json:"endDate"`
	Purpose       string          `gorm:"type:varchar(200)"                                          json:"purpose,omitempty"`
	Notes         string          `gorm:"type:text"                                                  json:"notes,omitempty"`
	ContactPerson string          `gorm:"type:varchar(150)"                                          json:"contactPerson,omitempty"`
	ContactPhone  string          `gorm:"type:varchar(30)"                                           json:"contactPhone,omitempty"`
	BaseModel

	Saint    *Saint    `gorm:"foreignKey:SaintID;references:SaintID;constraint:OnDelete:RESTRICT"       json:"saint,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID;references:LocationID;constraint:OnDelete:RESTRICT" json:"location,omitempty"`
}

// TableName table name
func (Schedule) TableName() string { return "schedules" }

func (s *Schedule) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ScheduleID)
	return nil
}

// Range the stay as an inclusive date range.
func (s *Schedule) Range() scheduling.Range {
	return scheduling.Range{Start: s.StartDate, End: s.EndDate}
}

package model

import "gorm.io/gorm"

// Saint a tracked monk or nun. Deactivated, never deleted.
type Saint struct {
	SaintID  string `gorm:"type:uuid;primaryKey"                    json:"id"`
	Name     string `gorm:"type:varchar(150);not null;index"        json:"name"`
	Title    string `gorm:"type:varchar(100)"                       json:"title,omitempty"`
	Lineage  string `gorm:"type:varchar(150)"                       json:"lineage,omitempty"`
	Bio      string `gorm:"type:text"                               json:"bio,omitempty"`
	PhotoURL string `gorm:"column:photo_url;type:varchar(500)"      json:"photoUrl,omitempty"`
	IsActive bool   `gorm:"not null;default:true;index"             json:"isActive"`
	BaseModel
}

// TableName table name
func (Saint) TableName() string { return "saints" }

func (s *Saint) BeforeCreate(*gorm.DB) error {
	ensureID(&s.SaintID)
	return nil
}

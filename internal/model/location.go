package model

import "gorm.io/gorm"

// DefaultCountry applied when a location is created without one.
const DefaultCountry = "India"

// Location a temple, upashray or centre where saints stay
type Location struct {
	LocationID   string   `gorm:"type:uuid;primaryKey"                        json:"id"`
	Name         string   `gorm:"type:varchar(200);not null"                  json:"name"`
	Address      string   `gorm:"type:varchar(500)"                           json:"address,omitempty"`
	City         string   `gorm:"type:varchar(100);index"                     json:"city,omitempty"`
	State        string   `gorm:"type:varchar(100)"                           json:"state,omitempty"`
	PostalCode   string   `gorm:"type:varchar(20)"                            json:"postalCode,omitempty"`
	Country      string   `gorm:"type:varchar(100);not null;default:'India'"  json:"country"`
	Latitude     *float64 `gorm:"type:decimal(10,8)"                          json:"latitude,omitempty"`
	Longitude    *float64 `gorm:"type:decimal(11,8)"                          json:"longitude,omitempty"`
	ContactPhone string   `gorm:"type:varchar(30)"                            json:"contactPhone,omitempty"`
	Timestamps
}

// TableName table name
func (Location) TableName() string { return "locations" }

func (l *Location) BeforeCreate(*gorm.DB) error {
	ensureID(&l.LocationID)
	if l.Country == "" {
		l.Country = DefaultCountry
	}
	return nil
}

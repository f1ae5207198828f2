package dto

import "github.com/ai-tejas-firodiya/Jain-Munis/internal/model"

// ── locations ──

// CreateLocationRequest new location
type CreateLocationRequest struct {
	Name         string   `json:"name"         binding:"required,min=2,max=200"`
	Address      string   `json:"address"      binding:"omitempty,max=500"`
	City         string   `json:"city"         binding:"omitempty,max=100"`
	State        string   `json:"state"        binding:"omitempty,max=100"`
	PostalCode   string   `json:"postalCode"   binding:"omitempty,max=20"`
	Country      string   `json:"country"      binding:"omitempty,max=100"`
	Latitude     *float64 `json:"latitude"     binding:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude"    binding:"omitempty,longitude"`
	ContactPhone string   `json:"contactPhone" binding:"omitempty,phone"`
}

// UpdateLocationRequest partial update
type UpdateLocationRequest struct {
	Name         *string  `json:"name"         binding:"omitempty,min=2,max=200"`
	Address      *string  `json:"address"      binding:"omitempty,max=500"`
	City         *string  `json:"city"         binding:"omitempty,max=100"`
	State        *string  `json:"state"        binding:"omitempty,max=100"`
	PostalCode   *string  `json:"postalCode"   binding:"omitempty,max=20"`
	Country      *string  `json:"country"      binding:"omitempty,max=100"`
	Latitude     *float64 `json:"latitude"     binding:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude"    binding:"omitempty,longitude"`
	ContactPhone *string  `json:"contactPhone" binding:"omitempty,phone"`
}

// LocationListRequest list query
type LocationListRequest struct {
	Search string `form:"search" binding:"omitempty,max=100"`
	City   string `form:"city"   binding:"omitempty,max=100"`
	PaginationRequest
}

// LocationResponse location details
type LocationResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
	Country      string   `json:"country"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	ContactPhone string   `json:"contactPhone,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// LocationBrief embedded in schedule responses
type LocationBrief struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// NewLocationResponse maps the model.
func NewLocationResponse(l *model.Location) LocationResponse {
	return LocationResponse{
		ID:           l.LocationID,
		Name:         l.Name,
		Address:      l.Address,
		City:         l.City,
		State:        l.State,
		PostalCode:   l.PostalCode,
		Country:      l.Country,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		ContactPhone: l.ContactPhone,
		CreatedAt:    l.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:    l.UpdatedAt.UTC().Format(timeLayout),
	}
}

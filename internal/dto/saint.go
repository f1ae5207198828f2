package dto

import "github.com/ai-tejas-firodiya/Jain-Munis/internal/model"

// ── saints ──

// CreateSaintRequest new saint
type CreateSaintRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=150"`
	Title    string `json:"title"    binding:"omitempty,max=100"`
	Lineage  string `json:"lineage"  binding:"omitempty,max=150"`
	Bio      string `json:"bio"      binding:"omitempty,max=5000"`
	PhotoURL string `json:"photoUrl" binding:"omitempty,url,max=500"`
}

// UpdateSaintRequest partial update
type UpdateSaintRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=2,max=150"`
	Title    *string `json:"title"    binding:"omitempty,max=100"`
	Lineage  *string `json:"lineage"  binding:"omitempty,max=150"`
	Bio      *string `json:"bio"      binding:"omitempty,max=5000"`
	PhotoURL *string `json:"photoUrl" binding:"omitempty,url,max=500"`
	IsActive *bool   `json:"isActive"`
}

// SaintListRequest list query
type SaintListRequest struct {
	Search          string `form:"search"          binding:"omitempty,max=100"`
	IncludeInactive bool   `form:"includeInactive"`
	PaginationRequest
}

// SaintResponse saint details
type SaintResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title,omitempty"`
	Lineage   string `json:"lineage,omitempty"`
	Bio       string `json:"bio,omitempty"`
	PhotoURL  string `json:"photoUrl,omitempty"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// SaintProfileResponse saint with where they are now and where they go next
type SaintProfileResponse struct {
	SaintResponse
	CurrentSchedule   *ScheduleResponse  `json:"currentSchedule"`
	UpcomingSchedules []ScheduleResponse `json:"upcomingSchedules"`
}

// SaintBrief embedded in schedule responses
type SaintBrief struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// NewSaintResponse maps the model.
func NewSaintResponse(s *model.Saint) SaintResponse {
	return SaintResponse{
		ID:        s.SaintID,
		Name:      s.Name,
		Title:     s.Title,
		Lineage:   s.Lineage,
		Bio:       s.Bio,
		PhotoURL:  s.PhotoURL,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt: s.UpdatedAt.UTC().Format(timeLayout),
	}
}

package dto

import (
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/scheduling"
)

// ── schedules ──

// CreateScheduleRequest new stay schedule
type CreateScheduleRequest struct {
	SaintID       string `json:"saintId"       binding:"required,uuid"`
	LocationID    string `json:"locationId"    binding:"required,uuid"`
	StartDate     string `json:"startDate"     binding:"required,calendardate"`
	EndDate       string `json:"endDate"       binding:"required,calendardate"`
	Purpose       string `json:"purpose"       binding:"omitempty,max=200"`
	Notes         string `json:"notes"         binding:"omitempty,max=2000"`
	ContactPerson string `json:"contactPerson" binding:"omitempty,max=150"`
	ContactPhone  string `json:"contactPhone"  binding:"omitempty,phone"`
}

// UpdateScheduleRequest partial update; nil fields keep their value
type UpdateScheduleRequest struct {
	SaintID       *string `json:"saintId"       binding:"omitempty,uuid"`
	LocationID    *string `json:"locationId"    binding:"omitempty,uuid"`
	StartDate     *string `json:"startDate"     binding:"omitempty,calendardate"`
	EndDate       *string `json:"endDate"       binding:"omitempty,calendardate"`
	Purpose       *string `json:"purpose"       binding:"omitempty,max=200"`
	Notes         *string `json:"notes"         binding:"omitempty,max=2000"`
	ContactPerson *string `json:"contactPerson" binding:"omitempty,max=150"`
	ContactPhone  *string `json:"contactPhone"  binding:"omitempty,phone"`
}

// OverlapCheckRequest conflict check query
type OverlapCheckRequest struct {
	SaintID           string `form:"saintId"           binding:"required,uuid"`
	StartDate         string `form:"startDate"         binding:"required,calendardate"`
	EndDate           string `form:"endDate"           binding:"required,calendardate"`
	ExcludeScheduleID string `form:"excludeScheduleId" binding:"omitempty,uuid"`
}

// ScheduleListRequest list query; from/to select schedules overlapping the window
type ScheduleListRequest struct {
	SaintID    string `form:"saintId"    binding:"omitempty,uuid"`
	LocationID string `form:"locationId" binding:"omitempty,uuid"`
	City       string `form:"city"       binding:"omitempty,max=100"`
	From       string `form:"from"       binding:"omitempty,calendardate"`
	To         string `form:"to"         binding:"omitempty,calendardate"`
	PaginationRequest
}

// CurrentSchedulesRequest current listing query
type CurrentSchedulesRequest struct {
	City    string `form:"city"    binding:"omitempty,max=100"`
	SaintID string `form:"saintId" binding:"omitempty,uuid"`
}

// UpcomingSchedulesRequest upcoming listing query; daysAhead is clamped, not rejected
type UpcomingSchedulesRequest struct {
	City      string `form:"city"      binding:"omitempty,max=100"`
	SaintID   string `form:"saintId"   binding:"omitempty,uuid"`
	DaysAhead int    `form:"daysAhead"`
}

// ExportSchedulesRequest export query
type ExportSchedulesRequest struct {
	From    string `form:"from"    binding:"omitempty,calendardate"`
	To      string `form:"to"      binding:"omitempty,calendardate"`
	SaintID string `form:"saintId" binding:"omitempty,uuid"`
}

// ScheduleResponse denormalised schedule
type ScheduleResponse struct {
	ID            string            `json:"id"`
	SaintID       string            `json:"saintId"`
	LocationID    string            `json:"locationId"`
	StartDate     scheduling.Date   `json:"startDate"`
	EndDate       scheduling.Date   `json:"endDate"`
	Purpose       string            `json:"purpose,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	ContactPerson string            `json:"contactPerson,omitempty"`
	ContactPhone  string            `json:"contactPhone,omitempty"`
	Status        scheduling.Status `json:"status"`
	Saint         *SaintBrief       `json:"saint,omitempty"`
	Location      *LocationBrief    `json:"location,omitempty"`
	CreatedBy     *string           `json:"createdBy,omitempty"`
	CreatedAt     string            `json:"createdAt"`
	UpdatedAt     string            `json:"updatedAt"`
}

// OverlapCheckResponse conflict check result
type OverlapCheckResponse struct {
	HasConflict bool               `json:"hasConflict"`
	Conflicts   []ScheduleResponse `json:"conflicts"`
}

// NewScheduleResponse maps the model; status is relative to today.
func NewScheduleResponse(s *model.Schedule, today scheduling.Date) ScheduleResponse {
	resp := ScheduleResponse{
		ID:            s.ScheduleID,
		SaintID:       s.SaintID,
		LocationID:    s.LocationID,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		Purpose:       s.Purpose,
		Notes:         s.Notes,
		ContactPerson: s.ContactPerson,
		ContactPhone:  s.ContactPhone,
		Status:        scheduling.Classify(s.Range(), today),
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:     s.UpdatedAt.UTC().Format(timeLayout),
	}
	if s.Saint != nil {
		resp.Saint = &SaintBrief{
			ID:       s.Saint.SaintID,
			Name:     s.Saint.Name,
			Title:    s.Saint.Title,
			PhotoURL: s.Saint.PhotoURL,
		}
	}
	if s.Location != nil {
		resp.Location = &LocationBrief{
			ID:      s.Location.LocationID,
			Name:    s.Location.Name,
			Address: s.Location.Address,
			City:    s.Location.City,
			State:   s.Location.State,
			Country: s.Location.Country,
		}
	}
	return resp
}

// NewScheduleResponses maps a slice, never returning nil.
func NewScheduleResponses(list []model.Schedule, today scheduling.Date) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(list))
	for i := range list {
		out = append(out, NewScheduleResponse(&list[i], today))
	}
	return out
}

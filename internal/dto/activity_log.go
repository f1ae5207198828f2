package dto

import (
	"encoding/json"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
)

// ActivityLogListRequest audit list query
type ActivityLogListRequest struct {
	EntityType string `form:"entityType" binding:"omitempty,oneof=schedule saint location admin_user"`
	EntityID   string `form:"entityId"   binding:"omitempty,uuid"`
	ActorID    string `form:"actorId"    binding:"omitempty,uuid"`
	Action     string `form:"action"     binding:"omitempty,max=50"`
	PaginationRequest
}

// ActivityLogResponse audit entry
type ActivityLogResponse struct {
	ID         string          `json:"id"`
	ActorID    *string         `json:"actorId"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	IPAddress  string          `json:"ipAddress,omitempty"`
	CreatedAt  string          `json:"createdAt"`
}

// NewActivityLogResponse maps the model.
func NewActivityLogResponse(l *model.ActivityLog) ActivityLogResponse {
	resp := ActivityLogResponse{
		ID:         l.LogID,
		ActorID:    l.ActorID,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		IPAddress:  l.IPAddress,
		CreatedAt:  l.CreatedAt.UTC().Format(timeLayout),
	}
	if len(l.Before) > 0 {
		resp.Before = json.RawMessage(l.Before)
	}
	if len(l.After) > 0 {
		resp.After = json.RawMessage(l.After)
	}
	return resp
}

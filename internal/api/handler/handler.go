package handler

import (
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/service"
)

// Handler aggregate of all HTTP handlers
type Handler struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	AdminUser   *AdminUserHandler
	Saint       *SaintHandler
	Location    *LocationHandler
	Schedule    *ScheduleHandler
	Export      *ExportHandler
	ActivityLog *ActivityLogHandler
	Dashboard   *DashboardHandler
}

// NewHandler wires every handler. checks are run by the health endpoint.
func NewHandler(svc *service.Service, checks map[string]HealthCheck) *Handler {
	return &Handler{
		Health:      NewHealthHandler(checks),
		Auth:        NewAuthHandler(svc.Auth),
		AdminUser:   NewAdminUserHandler(svc.AdminUser),
		Saint:       NewSaintHandler(svc.Saint, svc.Calendar),
		Location:    NewLocationHandler(svc.Location),
		Schedule:    NewScheduleHandler(svc.Schedule),
		Export:      NewExportHandler(svc.Export),
		ActivityLog: NewActivityLogHandler(svc.ActivityLog),
		Dashboard:   NewDashboardHandler(svc.Dashboard),
	}
}

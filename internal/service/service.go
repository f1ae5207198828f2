package service

import (
	"go.uber.org/zap"

	"github.com/ai-tejas-firodiya/Jain-Munis/config"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/repository"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/jwt"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/lock"
)

// Service aggregate of all services
type Service struct {
	Auth        AuthService
	AdminUser   AdminUserService
	Saint       SaintService
	Location    LocationService
	Schedule    ScheduleService
	ActivityLog ActivityLogService
	Dashboard   DashboardService
	Export      ExportService
	Calendar    CalendarService

	Clock Clock
}

// Deps collaborators shared by the services. Blacklist may be nil.
type Deps struct {
	Config    *config.Config
	Repo      *repository.Repository
	JWT       *jwt.Manager
	Locker    lock.Locker
	Blacklist TokenBlacklist
	Clock     Clock
	Logger    *zap.Logger
}

// NewService wires every service.
func NewService(d Deps) *Service {
	clock := d.Clock
	if clock == nil {
		clock = NewClock(d.Config.App.Location())
	}
	locker := d.Locker
	if locker == nil {
		locker = lock.NewLocalLocker()
	}

	activity := NewActivityLogService(d.Repo, d.Logger)

	return &Service{
		Auth:        NewAuthService(d.Repo, d.JWT, d.Blacklist, activity, d.Logger),
		AdminUser:   NewAdminUserService(d.Repo, activity, d.Logger),
		Saint:       NewSaintService(d.Repo, clock, activity, d.Logger),
		Location:    NewLocationService(d.Repo, activity, d.Logger),
		Schedule:    NewScheduleService(d.Repo, locker, clock, activity, d.Logger),
		ActivityLog: activity,
		Dashboard:   NewDashboardService(d.Repo, clock, d.Logger),
		Export:      NewExportService(d.Repo, clock, d.Logger),
		Calendar:    NewCalendarService(d.Repo, d.Config.Server.BaseURL, d.Logger),
		Clock:       clock,
	}
}

package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/repository"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/scheduling"
)

// DashboardService admin overview
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	repo   *repository.Repository
	clock  Clock
	logger *zap.Logger
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(repo *repository.Repository, clock Clock, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, clock: clock, logger: logger}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	today := s.clock.Today()
	after, through := scheduling.UpcomingWindow(today, scheduling.DefaultDaysAhead)

	stats := &dto.DashboardStats{
		UpcomingDays: scheduling.DefaultDaysAhead,
		Today:        today.String(),
	}

	var err error
	if stats.Saints, err = s.repo.Saint.Count(ctx, false); err != nil {
		return nil, s.fail("saints", err)
	}
	if stats.ActiveSaints, err = s.repo.Saint.Count(ctx, true); err != nil {
		return nil, s.fail("active saints", err)
	}
	if stats.Locations, err = s.repo.Location.Count(ctx); err != nil {
		return nil, s.fail("locations", err)
	}
	if stats.Schedules, err = s.repo.Schedule.Count(ctx); err != nil {
		return nil, s.fail("schedules", err)
	}
	if stats.CurrentSchedules, err = s.repo.Schedule.CountCurrent(ctx, today); err != nil {
		return nil, s.fail("current schedules", err)
	}
	if stats.UpcomingSchedules, err = s.repo.Schedule.CountUpcoming(ctx, after, through); err != nil {
		return nil, s.fail("upcoming schedules", err)
	}
	return stats, nil
}

func (s *dashboardService) fail(what string, err error) error {
	s.logger.Error("failed to count "+what, zap.Error(err))
	return err
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/scheduling"
)

func (f *scheduleFixture) saintService() SaintService {
	return NewSaintService(f.repo, FixedClock(testToday), f.audit, zap.NewNop())
}

// insert bypasses the overlap guard.
func (f *scheduleFixture) insert(t *testing.T, saint *model.Saint, start, end string) *model.Schedule {
	t.Helper()
	s := &model.Schedule{
		SaintID:    saint.SaintID,
		LocationID: f.locX.LocationID,
		StartDate:  scheduling.MustParseDate(start),
		EndDate:    scheduling.MustParseDate(end),
	}
	if err := f.repo.Schedule.Create(context.Background(), s); err != nil {
		t.Fatalf("insert schedule: %v", err)
	}
	return s
}

func TestSaintService_GetProfile(t *testing.T) {
	f := setupTestScheduleService(t)
	svc := f.saintService()

	f.insert(t, f.saintA, "2025-05-01", "2025-05-10")
	current := f.insert(t, f.saintA, "2025-06-01", "2025-06-20")
	starts := []string{"2025-09-01", "2025-07-01", "2025-08-01", "2025-07-15", "2025-10-01", "2025-11-01"}
	for _, s := range starts {
		f.insert(t, f.saintA, s, s)
	}
	f.insert(t, f.saintB, "2025-06-14", "2025-06-16")

	profile, err := svc.GetProfile(context.Background(), f.saintA.SaintID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Name != f.saintA.Name {
		t.Errorf("Name = %s", profile.Name)
	}
	if profile.CurrentSchedule == nil || profile.CurrentSchedule.ID != current.ScheduleID {
		t.Fatalf("current = %+v, want %s", profile.CurrentSchedule, current.ScheduleID)
	}

	want := []string{"2025-07-01", "2025-07-15", "2025-08-01", "2025-09-01", "2025-10-01"}
	if len(profile.UpcomingSchedules) != scheduling.ProfileUpcomingLimit {
		t.Fatalf("got %d upcoming, want %d", len(profile.UpcomingSchedules), scheduling.ProfileUpcomingLimit)
	}
	for i, up := range profile.UpcomingSchedules {
		if up.StartDate.String() != want[i] {
			t.Errorf("upcoming[%d] = %s, want %s", i, up.StartDate, want[i])
		}
		if up.Status != scheduling.StatusUpcoming {
			t.Errorf("upcoming[%d] status = %s", i, up.Status)
		}
	}
}

func TestSaintService_GetProfile_NothingScheduled(t *testing.T) {
	f := setupTestScheduleService(t)

	profile, err := f.saintService().GetProfile(context.Background(), f.saintB.SaintID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.CurrentSchedule != nil {
		t.Error("expected no current schedule")
	}
	if profile.UpcomingSchedules == nil || len(profile.UpcomingSchedules) != 0 {
		t.Errorf("expected empty upcoming list, got %v", profile.UpcomingSchedules)
	}

	if _, err := f.saintService().GetProfile(context.Background(), uuid.NewString()); !errors.Is(err, ErrSaintNotFound) {
		t.Errorf("got %v, want ErrSaintNotFound", err)
	}
}

func TestSaintService_GetProfile_TwoCurrentPicksLatestStart(t *testing.T) {
	f := setupTestScheduleService(t)
	f.insert(t, f.saintA, "2025-06-01", "2025-06-30")
	later := f.insert(t, f.saintA, "2025-06-10", "2025-06-16")

	profile, err := f.saintService().GetProfile(context.Background(), f.saintA.SaintID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.CurrentSchedule == nil || profile.CurrentSchedule.ID != later.ScheduleID {
		t.Errorf("current = %+v, want %s", profile.CurrentSchedule, later.ScheduleID)
	}
}

func TestSaintService_CreateUpdateDeactivate(t *testing.T) {
	f := setupTestScheduleService(t)
	svc := f.saintService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateSaintRequest{Name: "Sadhvi Shri Chandana", Title: "Sadhvi"}, SystemActor())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.IsActive {
		t.Error("new saints are active")
	}

	lineage := "Shwetambar"
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateSaintRequest{Lineage: &lineage}, SystemActor())
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Lineage != "Shwetambar" || updated.Title != "Sadhvi" {
		t.Errorf("unexpected update result %+v", updated)
	}

	if err := svc.Deactivate(ctx, created.ID, SystemActor()); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	// idempotent
	if err := svc.Deactivate(ctx, created.ID, SystemActor()); err != nil {
		t.Fatalf("Deactivate again: %v", err)
	}

	active, _, err := svc.List(ctx, &dto.SaintListRequest{Search: "chandana"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("deactivated saint listed: %+v", active)
	}
	all, total, err := svc.List(ctx, &dto.SaintListRequest{Search: "chandana", IncludeInactive: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(all) != 1 || all[0].IsActive {
		t.Errorf("total=%d all=%+v", total, all)
	}

	want := []string{model.ActionCreateSaint, model.ActionUpdateSaint, model.ActionDeactivateSaint}
	got := f.audit.actions()
	if len(got) != len(want) {
		t.Fatalf("audit actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("audit[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if err := svc.Deactivate(ctx, uuid.NewString(), SystemActor()); !errors.Is(err, ErrSaintNotFound) {
		t.Errorf("got %v, want ErrSaintNotFound", err)
	}
}

func TestDashboardService_Stats(t *testing.T) {
	f := setupTestScheduleService(t)
	f.insert(t, f.saintA, "2025-06-01", "2025-06-20") // current
	f.insert(t, f.saintA, "2025-07-01", "2025-07-02") // upcoming, within 30 days
	f.insert(t, f.saintB, "2025-09-01", "2025-09-02") // beyond the window
	f.insert(t, f.saintB, "2025-01-01", "2025-01-02") // past
	if err := f.saintService().Deactivate(context.Background(), f.saintB.SaintID, SystemActor()); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	stats, err := NewDashboardService(f.repo, FixedClock(testToday), zap.NewNop()).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	want := dto.DashboardStats{
		Saints:            2,
		ActiveSaints:      1,
		Locations:         2,
		Schedules:         4,
		CurrentSchedules:  1,
		UpcomingSchedules: 1,
		UpcomingDays:      scheduling.DefaultDaysAhead,
		Today:             "2025-06-15",
	}
	if *stats != want {
		t.Errorf("got %+v, want %+v", *stats, want)
	}
}

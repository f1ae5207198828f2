package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/repository"
)

// ── helpers ──

func setupTestLocationService() (LocationService, *mockLocationRepo, *mockScheduleRepo, *recordingAuditor) {
	locationRepo := newMockLocationRepo()
	scheduleRepo := &mockScheduleRepo{byLocation: make(map[string]int64)}
	audit := &recordingAuditor{}
	repo := &repository.Repository{
		Location: locationRepo,
		Schedule: scheduleRepo,
	}
	return NewLocationService(repo, audit, zap.NewNop()), locationRepo, scheduleRepo, audit
}

// ── Create ──

func TestLocationService_Create_DefaultsCountry(t *testing.T) {
	svc, _, _, audit := setupTestLocationService()

	result, err := svc.Create(context.Background(), &dto.CreateLocationRequest{
		Name: "Shantinath Jain Mandir",
		City: "Mumbai",
	}, AdminActor("admin-1", "127.0.0.1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if result.Country != model.DefaultCountry {
		t.Errorf("Country = %q, want %q", result.Country, model.DefaultCountry)
	}
	if got := audit.last(); got.Action != model.ActionCreateLocation || got.Actor.IP != "127.0.0.1" {
		t.Errorf("unexpected audit entry %+v", got)
	}
}

// ── GetByID ──

func TestLocationService_GetByID(t *testing.T) {
	svc, locRepo, _, _ := setupTestLocationService()
	locRepo.locations["loc-1"] = &model.Location{LocationID: "loc-1", Name: "Upashray", Country: "India"}

	result, err := svc.GetByID(context.Background(), "loc-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if result.Name != "Upashray" {
		t.Errorf("Name = %s", result.Name)
	}

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("got %v, want ErrLocationNotFound", err)
	}
}

// ── Update ──

func TestLocationService_Update_Partial(t *testing.T) {
	svc, locRepo, _, _ := setupTestLocationService()
	locRepo.locations["loc-1"] = &model.Location{LocationID: "loc-1", Name: "Old", City: "Pune", Country: "India"}

	name := "New"
	empty := ""
	result, err := svc.Update(context.Background(), "loc-1", &dto.UpdateLocationRequest{
		Name:    &name,
		Country: &empty,
	}, SystemActor())
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if result.Name != "New" || result.City != "Pune" {
		t.Errorf("unexpected result %+v", result)
	}
	if result.Country != model.DefaultCountry {
		t.Errorf("blank country should fall back to default, got %q", result.Country)
	}
}

// ── Delete ──

func TestLocationService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		schedules  int64
		deleteErr  error
		countErr   error
		want       error
		wantDelete bool
	}{
		{name: "unreferenced", id: "loc-1", wantDelete: true},
		{name: "missing", id: "nope", want: ErrLocationNotFound},
		{name: "referenced", id: "loc-1", schedules: 2, want: ErrLocationInUse},
		{name: "fk race", id: "loc-1", deleteErr: gorm.ErrForeignKeyViolated, want: ErrLocationInUse},
		{name: "count fails", id: "loc-1", countErr: errMockDB, want: errMockDB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, locRepo, schedRepo, audit := setupTestLocationService()
			locRepo.locations["loc-1"] = &model.Location{LocationID: "loc-1", Name: "Mandir"}
			locRepo.deleteErr = tt.deleteErr
			schedRepo.byLocation["loc-1"] = tt.schedules
			schedRepo.countErr = tt.countErr

			err := svc.Delete(context.Background(), tt.id, SystemActor())
			if tt.want == nil && err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}

			_, still := locRepo.locations["loc-1"]
			if tt.wantDelete == still {
				t.Errorf("deleted=%v, want %v", !still, tt.wantDelete)
			}
			if tt.wantDelete && audit.last().Action != model.ActionDeleteLocation {
				t.Errorf("expected DELETE_LOCATION audit, got %v", audit.actions())
			}
		})
	}
}

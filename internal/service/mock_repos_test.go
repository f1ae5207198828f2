package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/repository"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/scheduling"
)

var errMockDB = errors.New("mock: connection reset")

// ── Mock AdminUserRepository ──

type mockAdminUserRepo struct {
	users map[string]*model.AdminUser // key: id
}

func newMockAdminUserRepo() *mockAdminUserRepo {
	return &mockAdminUserRepo{users: make(map[string]*model.AdminUser)}
}

func (m *mockAdminUserRepo) Create(_ context.Context, user *model.AdminUser) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.AdminUserID == "" {
		user.AdminUserID = "user-" + user.Username
	}
	user.CreatedAt = time.Now()
	m.users[user.AdminUserID] = user
	return nil
}

func (m *mockAdminUserRepo) GetByID(_ context.Context, id string) (*model.AdminUser, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminUserRepo) GetByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminUserRepo) Update(_ context.Context, user *model.AdminUser) error {
	cp := *user
	m.users[user.AdminUserID] = &cp
	return nil
}

func (m *mockAdminUserRepo) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	if u, ok := m.users[id]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

func (m *mockAdminUserRepo) List(_ context.Context, _ repository.Page) ([]model.AdminUser, int64, error) {
	var result []model.AdminUser
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, int64(len(result)), nil
}

func (m *mockAdminUserRepo) ListActive(_ context.Context) ([]model.AdminUser, error) {
	var result []model.AdminUser
	for _, u := range m.users {
		if u.IsActive {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockAdminUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── Mock LocationRepository ──

type mockLocationRepo struct {
	locations map[string]*model.Location
	deleteErr error
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[string]*model.Location)}
}

func (m *mockLocationRepo) Create(_ context.Context, loc *model.Location) error {
	if loc.LocationID == "" {
		loc.LocationID = "loc-" + loc.Name
	}
	if loc.Country == "" {
		loc.Country = model.DefaultCountry
	}
	m.locations[loc.LocationID] = loc
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id string) (*model.Location, error) {
	if l, ok := m.locations[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) List(_ context.Context, _ repository.LocationFilter) ([]model.Location, int64, error) {
	var result []model.Location
	for _, l := range m.locations {
		result = append(result, *l)
	}
	return result, int64(len(result)), nil
}

func (m *mockLocationRepo) Update(_ context.Context, loc *model.Location) error {
	cp := *loc
	m.locations[loc.LocationID] = &cp
	return nil
}

func (m *mockLocationRepo) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.locations, id)
	return nil
}

func (m *mockLocationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.locations)), nil
}

// ── Mock ScheduleRepository ──

// mockScheduleRepo implements only what the location service and the
// write-error mapping need; any other call panics through the nil embedded
// interface.
type mockScheduleRepo struct {
	repository.ScheduleRepository
	byLocation  map[string]int64
	countErr    error
	overlapping []model.Schedule
	findErr     error
}

func (m *mockScheduleRepo) FindOverlapping(_ context.Context, _ string, _ scheduling.Range, _ string) ([]model.Schedule, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.overlapping, nil
}

func (m *mockScheduleRepo) CountByLocation(_ context.Context, locationID string) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.byLocation[locationID], nil
}

// ── recording Auditor ──

type recordingAuditor struct {
	mu      sync.Mutex
	entries []AuditEntry
}

func (a *recordingAuditor) Record(_ context.Context, e AuditEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, e)
}

func (a *recordingAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

func (a *recordingAuditor) last() AuditEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.entries) == 0 {
		return AuditEntry{}
	}
	return a.entries[len(a.entries)-1]
}

// ── fake TokenBlacklist ──

type fakeBlacklist struct {
	revoked map[string]time.Duration
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{revoked: make(map[string]time.Duration)}
}

func (b *fakeBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	b.revoked[jti] = ttl
	return nil
}

func (b *fakeBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	_, ok := b.revoked[jti]
	return ok, nil
}

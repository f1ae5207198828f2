package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/repository"
)

const calendarProductID = "-//Jain Munis//Saint Schedules//EN"

// CalendarService iCalendar feeds
type CalendarService interface {
	// SaintCalendar renders every schedule of the saint as an all-day event.
	SaintCalendar(ctx context.Context, saintID string) (string, error)
}

type calendarService struct {
	repo    *repository.Repository
	baseURL string
	logger  *zap.Logger
}

// NewCalendarService creates a CalendarService; baseURL prefixes event URLs.
func NewCalendarService(repo *repository.Repository, baseURL string, logger *zap.Logger) CalendarService {
	return &calendarService{
		repo:    repo,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

func (s *calendarService) SaintCalendar(ctx context.Context, saintID string) (string, error) {
	saint, err := s.repo.Saint.GetByID(ctx, saintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSaintNotFound
		}
		s.logger.Error("failed to get saint", zap.String("id", saintID), zap.Error(err))
		return "", err
	}

	schedules, err := s.repo.Schedule.ListBySaint(ctx, saintID)
	if err != nil {
		s.logger.Error("failed to list schedules of saint", zap.String("saint_id", saintID), zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetXWRCalName(displayName(saint))

	for i := range schedules {
		s.addEvent(cal, saint, &schedules[i])
	}

	return cal.Serialize(), nil
}

func (s *calendarService) addEvent(cal *ics.Calendar, saint *model.Saint, sch *model.Schedule) {
	event := cal.AddEvent(sch.ScheduleID + "@jain-munis")
	event.SetDtStampTime(sch.UpdatedAt.UTC())
	event.SetCreatedTime(sch.CreatedAt.UTC())
	event.SetModifiedAt(sch.UpdatedAt.UTC())

	// DTEND of an all-day event is exclusive
	event.SetAllDayStartAt(sch.StartDate.Time())
	event.SetAllDayEndAt(sch.EndDate.AddDays(1).Time())

	summary := displayName(saint)
	if sch.Location != nil {
		summary = fmt.Sprintf("%s at %s", summary, sch.Location.Name)
		event.SetLocation(locationLine(sch.Location))
	}
	event.SetSummary(summary)

	var desc []string
	if sch.Purpose != "" {
		desc = append(desc, sch.Purpose)
	}
	if sch.ContactPerson != "" || sch.ContactPhone != "" {
		desc = append(desc, strings.TrimSpace("Contact: "+sch.ContactPerson+" "+sch.ContactPhone))
	}
	if len(desc) > 0 {
		event.SetDescription(strings.Join(desc, "\n"))
	}
	if s.baseURL != "" {
		event.SetURL(s.baseURL + "/api/v1/schedules/" + sch.ScheduleID)
	}
}

func displayName(saint *model.Saint) string {
	if saint.Title == "" {
		return saint.Name
	}
	return saint.Title + " " + saint.Name
}

func locationLine(loc *model.Location) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{loc.Name, loc.Address, loc.City, loc.State, loc.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

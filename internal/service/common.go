package service

import (
	"time"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/repository"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/scheduling"
)

// Actor is the authenticated admin behind a write. A nil ID means the
// system itself (bootstrap, jobs) or an unknown caller.
type Actor struct {
	ID *string
	IP string
}

// SystemActor acting identity for writes not triggered by a request.
func SystemActor() Actor {
	return Actor{}
}

// AdminActor convenience constructor for handlers.
func AdminActor(id, ip string) Actor {
	if id == "" {
		return Actor{IP: ip}
	}
	return Actor{ID: &id, IP: ip}
}

// Clock yields "today" in the application time zone.
type Clock interface {
	Today() scheduling.Date
}

type zoneClock struct {
	loc *time.Location
}

// NewClock returns a wall clock that reads the date in loc.
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return zoneClock{loc: loc}
}

func (c zoneClock) Today() scheduling.Date {
	return scheduling.Today(time.Now(), c.loc)
}

// FixedClock always reports the same day.
type FixedClock scheduling.Date

func (c FixedClock) Today() scheduling.Date {
	return scheduling.Date(c)
}

func pageOf(p dto.PaginationRequest) repository.Page {
	return repository.Page{Offset: p.GetOffset(), Limit: p.GetPageSize()}
}

// parseOptionalDate parses s unless empty; field names the input in errors.
func parseOptionalDate(field, s string) (scheduling.Date, error) {
	if s == "" {
		return scheduling.Date{}, nil
	}
	d, err := scheduling.ParseDate(s)
	if err != nil {
		return scheduling.Date{}, validationError("%s: %v", field, err)
	}
	return d, nil
}

// parseRange parses both dates and enforces end >= start.
func parseRange(start, end string) (scheduling.Range, error) {
	s, err := scheduling.ParseDate(start)
	if err != nil {
		return scheduling.Range{}, validationError("startDate: %v", err)
	}
	e, err := scheduling.ParseDate(end)
	if err != nil {
		return scheduling.Range{}, validationError("endDate: %v", err)
	}
	r, err := scheduling.NewRange(s, e)
	if err != nil {
		return scheduling.Range{}, validationError("%v", err)
	}
	return r, nil
}

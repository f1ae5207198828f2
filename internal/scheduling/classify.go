package scheduling

// Status is the temporal state of a schedule relative to today.
type Status string

const (
	StatusCurrent  Status = "current"
	StatusUpcoming Status = "upcoming"
	StatusPast     Status = "past"
)

const (
	DefaultDaysAhead = 30
	MinDaysAhead     = 1
	MaxDaysAhead     = 365

	// ProfileUpcomingLimit caps the upcoming list shown on a saint profile.
	ProfileUpcomingLimit = 5
)

// IsCurrent reports whether today falls inside r.
func IsCurrent(r Range, today Date) bool {
	return r.Contains(today)
}

// IsUpcoming reports whether r starts strictly after today.
func IsUpcoming(r Range, today Date) bool {
	return r.Start.After(today)
}

// Classify never returns current and upcoming for the same range.
func Classify(r Range, today Date) Status {
	switch {
	case IsUpcoming(r, today):
		return StatusUpcoming
	case IsCurrent(r, today):
		return StatusCurrent
	default:
		return StatusPast
	}
}

// PickCurrent returns the index of the current range with the latest start,
// or -1 when none is current. Ties keep the earlier index.
func PickCurrent(ranges []Range, today Date) int {
	best := -1
	for i, r := range ranges {
		if !IsCurrent(r, today) {
			continue
		}
		if best == -1 || r.Start.After(ranges[best].Start) {
			best = i
		}
	}
	return best
}

// ClampDaysAhead bounds the upcoming window to [MinDaysAhead, MaxDaysAhead].
// Zero means "not given" and yields the default.
func ClampDaysAhead(n int) int {
	switch {
	case n == 0:
		return DefaultDaysAhead
	case n < MinDaysAhead:
		return MinDaysAhead
	case n > MaxDaysAhead:
		return MaxDaysAhead
	default:
		return n
	}
}

// UpcomingWindow returns the bounds of today < start <= today+daysAhead.
// The first value is exclusive, the second inclusive.
func UpcomingWindow(today Date, daysAhead int) (after Date, through Date) {
	return today, today.AddDays(ClampDaysAhead(daysAhead))
}

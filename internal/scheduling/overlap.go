package scheduling

import "errors"

var ErrInvalidRange = errors.New("end date must not be before start date")

// Range is a closed calendar range: both Start and End days are included.
type Range struct {
	Start Date
	End   Date
}

// NewRange validates that end is not before start.
func NewRange(start, end Date) (Range, error) {
	if start.IsZero() || end.IsZero() {
		return Range{}, ErrInvalidDate
	}
	if end.Before(start) {
		return Range{}, ErrInvalidRange
	}
	return Range{Start: start, End: end}, nil
}

// Overlaps reports whether the two ranges share at least one day.
// A range ending on day N and another starting on day N overlap.
func (r Range) Overlaps(o Range) bool {
	return !r.Start.After(o.End) && !o.Start.After(r.End)
}

// Contains reports whether day falls inside the range.
func (r Range) Contains(day Date) bool {
	return !day.Before(r.Start) && !day.After(r.End)
}

// Days is the number of calendar days covered, both ends included.
func (r Range) Days() int {
	return r.Start.DaysUntil(r.End) + 1
}

// FindConflicts returns the items of existing whose range overlaps candidate,
// in their original order. Items whose id equals excludeID are skipped so an
// update never conflicts with the record being updated.
func FindConflicts[T any](candidate Range, existing []T, rangeOf func(T) Range, idOf func(T) string, excludeID string) []T {
	var conflicts []T
	for _, item := range existing {
		if excludeID != "" && idOf(item) == excludeID {
			continue
		}
		if candidate.Overlaps(rangeOf(item)) {
			conflicts = append(conflicts, item)
		}
	}
	return conflicts
}

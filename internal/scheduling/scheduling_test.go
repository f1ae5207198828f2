package scheduling

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"
)

func rng(t *testing.T, start, end string) Range {
	t.Helper()
	r, err := NewRange(MustParseDate(start), MustParseDate(end))
	if err != nil {
		t.Fatalf("NewRange(%s, %s): %v", start, end, err)
	}
	return r
}

// ── Date ──

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-06-15", "2025-06-15", false},
		{" 2025-01-01 ", "2025-01-01", false},
		{"2024-02-29", "2024-02-29", false},
		{"2025-02-29", "", true},
		{"2025-6-15", "", true},
		{"2025-06-15T00:00:00Z", "", true},
		{"15/06/2025", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected error, got %s", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestToday_UsesLocation(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 20:00 UTC on June 14 is already June 15 in India.
	now := time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)
	if got := Today(now, ist).String(); got != "2025-06-15" {
		t.Errorf("Today in IST = %s, want 2025-06-15", got)
	}
	if got := Today(now, time.UTC).String(); got != "2025-06-14" {
		t.Errorf("Today in UTC = %s, want 2025-06-14", got)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	type payload struct {
		Start Date `json:"start"`
		End   Date `json:"end"`
	}
	var p payload
	if err := json.Unmarshal([]byte(`{"start":"2025-06-01","end":null}`), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.Start.String() != "2025-06-01" || !p.End.IsZero() {
		t.Fatalf("unexpected decode: %+v", p)
	}
	b, _ := json.Marshal(p)
	if string(b) != `{"start":"2025-06-01","end":null}` {
		t.Errorf("Marshal = %s", b)
	}
	if err := json.Unmarshal([]byte(`{"start":"2025-06-01T10:00:00Z"}`), &p); err == nil {
		t.Error("expected error for timestamp input")
	}
}

func TestDate_ScanValue(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)); err != nil || d.String() != "2025-06-01" {
		t.Errorf("Scan(time.Time) = %s, %v", d, err)
	}
	if err := d.Scan("2025-06-02 00:00:00+00:00"); err != nil || d.String() != "2025-06-02" {
		t.Errorf("Scan(string) = %s, %v", d, err)
	}
	if err := d.Scan([]byte("2025-06-03")); err != nil || d.String() != "2025-06-03" {
		t.Errorf("Scan([]byte) = %s, %v", d, err)
	}
	if err := d.Scan(nil); err != nil || !d.IsZero() {
		t.Errorf("Scan(nil) = %s, %v", d, err)
	}
	if err := d.Scan(42); err == nil {
		t.Error("Scan(int) expected error")
	}

	v, err := MustParseDate("2025-06-04").Value()
	if err != nil || v != "2025-06-04" {
		t.Errorf("Value = %v, %v", v, err)
	}
	v, _ = Date{}.Value()
	if v != nil {
		t.Errorf("zero Value = %v, want nil", v)
	}
}

// ── Range / overlap ──

func TestNewRange(t *testing.T) {
	if _, err := NewRange(MustParseDate("2025-06-20"), MustParseDate("2025-06-10")); err != ErrInvalidRange {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := NewRange(MustParseDate("2025-06-10"), MustParseDate("2025-06-10")); err != nil {
		t.Errorf("single-day range should be valid: %v", err)
	}
	if _, err := NewRange(Date{}, MustParseDate("2025-06-10")); err != ErrInvalidDate {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestRange_Overlaps(t *testing.T) {
	existing := rng(t, "2025-01-10", "2025-01-15")
	tests := []struct {
		name      string
		candidate Range
		want      bool
	}{
		{"shared end boundary", rng(t, "2025-01-15", "2025-01-20"), true},
		{"shared start boundary", rng(t, "2025-01-05", "2025-01-10"), true},
		{"day after", rng(t, "2025-01-16", "2025-01-20"), false},
		{"day before", rng(t, "2025-01-01", "2025-01-09"), false},
		{"starts inside", rng(t, "2025-01-12", "2025-01-30"), true},
		{"ends inside", rng(t, "2025-01-01", "2025-01-12"), true},
		{"contains existing", rng(t, "2025-01-01", "2025-01-31"), true},
		{"inside existing", rng(t, "2025-01-11", "2025-01-12"), true},
		{"identical", rng(t, "2025-01-10", "2025-01-15"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.candidate.Overlaps(existing); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := existing.Overlaps(tt.candidate); got != tt.want {
				t.Errorf("Overlaps is not symmetric")
			}
		})
	}
}

// The single inequality must agree with the three-case formulation
// (starts inside, ends inside, contains) on every pair.
func TestRange_Overlaps_MatchesThreeCaseForm(t *testing.T) {
	threeCase := func(c, e Range) bool {
		startsInside := !c.Start.Before(e.Start) && !c.Start.After(e.End)
		endsInside := !c.End.Before(e.Start) && !c.End.After(e.End)
		contains := !c.Start.After(e.Start) && !c.End.Before(e.End)
		return startsInside || endsInside || contains
	}

	base := NewDate(2025, 1, 1)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		s1 := base.AddDays(r.Intn(60))
		s2 := base.AddDays(r.Intn(60))
		c := Range{Start: s1, End: s1.AddDays(r.Intn(10))}
		e := Range{Start: s2, End: s2.AddDays(r.Intn(10))}
		if c.Overlaps(e) != threeCase(c, e) {
			t.Fatalf("mismatch for candidate %s..%s existing %s..%s", c.Start, c.End, e.Start, e.End)
		}
	}
}

func TestFindConflicts(t *testing.T) {
	type item struct {
		id string
		r  Range
	}
	items := []item{
		{"a", rng(t, "2025-06-01", "2025-06-10")},
		{"b", rng(t, "2025-06-11", "2025-06-20")},
		{"c", rng(t, "2025-07-01", "2025-07-05")},
	}
	rangeOf := func(i item) Range { return i.r }
	idOf := func(i item) string { return i.id }

	got := FindConflicts(rng(t, "2025-06-10", "2025-06-11"), items, rangeOf, idOf, "")
	if len(got) != 2 || got[0].id != "a" || got[1].id != "b" {
		t.Errorf("expected [a b], got %+v", got)
	}

	got = FindConflicts(rng(t, "2025-06-01", "2025-06-10"), items, rangeOf, idOf, "a")
	if len(got) != 0 {
		t.Errorf("self should be excluded, got %+v", got)
	}

	got = FindConflicts(rng(t, "2025-06-21", "2025-06-30"), items, rangeOf, idOf, "")
	if len(got) != 0 {
		t.Errorf("expected no conflicts, got %+v", got)
	}
}

// ── classification ──

func TestClassify(t *testing.T) {
	today := MustParseDate("2025-06-15")
	tests := []struct {
		name         string
		r            Range
		wantCurrent  bool
		wantUpcoming bool
		wantStatus   Status
	}{
		{"spanning today", rng(t, "2025-06-01", "2025-06-20"), true, false, StatusCurrent},
		{"future", rng(t, "2025-07-01", "2025-07-05"), false, true, StatusUpcoming},
		{"past", rng(t, "2025-05-01", "2025-05-10"), false, false, StatusPast},
		{"starts today", rng(t, "2025-06-15", "2025-06-18"), true, false, StatusCurrent},
		{"ends today", rng(t, "2025-06-10", "2025-06-15"), true, false, StatusCurrent},
		{"starts tomorrow", rng(t, "2025-06-16", "2025-06-16"), false, true, StatusUpcoming},
		{"ended yesterday", rng(t, "2025-06-01", "2025-06-14"), false, false, StatusPast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCurrent(tt.r, today); got != tt.wantCurrent {
				t.Errorf("IsCurrent = %v, want %v", got, tt.wantCurrent)
			}
			if got := IsUpcoming(tt.r, today); got != tt.wantUpcoming {
				t.Errorf("IsUpcoming = %v, want %v", got, tt.wantUpcoming)
			}
			if got := Classify(tt.r, today); got != tt.wantStatus {
				t.Errorf("Classify = %s, want %s", got, tt.wantStatus)
			}
		})
	}
}

func TestPickCurrent_LatestStartWins(t *testing.T) {
	today := MustParseDate("2025-06-15")
	ranges := []Range{
		rng(t, "2025-06-01", "2025-06-20"),
		rng(t, "2025-07-01", "2025-07-05"),
		rng(t, "2025-06-10", "2025-06-16"),
		rng(t, "2025-05-01", "2025-05-10"),
	}
	if got := PickCurrent(ranges, today); got != 2 {
		t.Errorf("PickCurrent = %d, want 2", got)
	}
	if got := PickCurrent(ranges[1:2], today); got != -1 {
		t.Errorf("PickCurrent with no current = %d, want -1", got)
	}
}

func TestClampDaysAhead(t *testing.T) {
	tests := map[int]int{0: DefaultDaysAhead, -5: 1, 1: 1, 30: 30, 365: 365, 1000: 365}
	for in, want := range tests {
		if got := ClampDaysAhead(in); got != want {
			t.Errorf("ClampDaysAhead(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestUpcomingWindow(t *testing.T) {
	today := MustParseDate("2025-06-15")
	after, through := UpcomingWindow(today, 7)
	if after.String() != "2025-06-15" || through.String() != "2025-06-22" {
		t.Errorf("window = (%s, %s]", after, through)
	}
}

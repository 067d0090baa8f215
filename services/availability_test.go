package services

import (
	"errors"
	"testing"
	"time"
)

type fakeSource struct {
	windows []StayWindow
	err     error
}

func (f *fakeSource) ActiveWindows(chambreID uint) ([]StayWindow, error) {
	return f.windows, f.err
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCheckRangeAgainstSingleReservation(t *testing.T) {
	// Room R1 has one active reservation [2024-06-10, 2024-06-15)
	source := &fakeSource{windows: []StayWindow{
		{CheckIn: day("2024-06-10"), CheckOut: day("2024-06-15")},
	}}
	checker := NewAvailabilityService(source)

	cases := []struct {
		name      string
		arrival   string
		departure string
		want      bool
	}{
		{"inside the stay", "2024-06-12", "2024-06-13", false},
		{"starts on checkout day", "2024-06-15", "2024-06-18", true},
		{"entirely before", "2024-06-01", "2024-06-05", true},
		{"ends on checkin day", "2024-06-05", "2024-06-10", true},
		{"straddles the whole stay", "2024-06-09", "2024-06-16", false},
		{"overlaps the tail", "2024-06-14", "2024-06-20", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := checker.CheckRange(1, day(tc.arrival), day(tc.departure))
			if err != nil {
				t.Fatalf("CheckRange: %v", err)
			}
			if got != tc.want {
				t.Errorf("CheckRange(%s, %s) = %v, want %v", tc.arrival, tc.departure, got, tc.want)
			}
		})
	}
}

func TestCheckRangeValidatesBeforeQuerying(t *testing.T) {
	source := &fakeSource{err: errors.New("store must not be reached")}
	checker := NewAvailabilityService(source)

	if _, err := checker.CheckRange(0, day("2024-06-01"), day("2024-06-05")); !errors.Is(err, ErrValidation) {
		t.Errorf("missing chambre id: got %v, want ErrValidation", err)
	}
	if _, err := checker.CheckRange(1, day("2024-06-05"), day("2024-06-05")); !errors.Is(err, ErrValidation) {
		t.Errorf("zero-length range: got %v, want ErrValidation", err)
	}
	if _, err := checker.CheckRange(1, day("2024-06-05"), day("2024-06-01")); !errors.Is(err, ErrValidation) {
		t.Errorf("inverted range: got %v, want ErrValidation", err)
	}
}

func TestCheckRangePropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	checker := NewAvailabilityService(&fakeSource{err: storeErr})

	_, err := checker.CheckRange(1, day("2024-06-01"), day("2024-06-05"))
	if !errors.Is(err, storeErr) {
		t.Errorf("got %v, want the store error", err)
	}
	if errors.Is(err, ErrValidation) {
		t.Error("store error must not look like a validation error")
	}
}

func TestUnavailableDatesHalfOpen(t *testing.T) {
	checker := NewAvailabilityService(&fakeSource{windows: []StayWindow{
		{CheckIn: day("2024-06-10"), CheckOut: day("2024-06-13")},
	}})

	dates, err := checker.UnavailableDates(1)
	if err != nil {
		t.Fatalf("UnavailableDates: %v", err)
	}

	want := []string{"2024-06-10", "2024-06-11", "2024-06-12"}
	if len(dates) != len(want) {
		t.Fatalf("got %d dates, want %d", len(dates), len(want))
	}
	for i, d := range dates {
		if d.Format("2006-01-02") != want[i] {
			t.Errorf("dates[%d] = %s, want %s", i, d.Format("2006-01-02"), want[i])
		}
	}
}

func TestUnavailableDatesMergesOverlappingWindows(t *testing.T) {
	checker := NewAvailabilityService(&fakeSource{windows: []StayWindow{
		{CheckIn: day("2024-06-10"), CheckOut: day("2024-06-12")},
		{CheckIn: day("2024-06-11"), CheckOut: day("2024-06-14")},
	}})

	dates, err := checker.UnavailableDates(1)
	if err != nil {
		t.Fatalf("UnavailableDates: %v", err)
	}

	want := []string{"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13"}
	if len(dates) != len(want) {
		t.Fatalf("got %d dates, want %d: duplicates must collapse", len(dates), len(want))
	}
	for i, d := range dates {
		if d.Format("2006-01-02") != want[i] {
			t.Errorf("dates[%d] = %s, want %s", i, d.Format("2006-01-02"), want[i])
		}
	}
}

// A date returned as unavailable must cause a range check straddling it
// to report "not available", and vice versa.
func TestRangeCheckAgreesWithDateListing(t *testing.T) {
	source := &fakeSource{windows: []StayWindow{
		{CheckIn: day("2024-06-10"), CheckOut: day("2024-06-15")},
		{CheckIn: day("2024-06-20"), CheckOut: day("2024-06-22")},
	}}
	checker := NewAvailabilityService(source)

	unavailable, err := checker.UnavailableDates(7)
	if err != nil {
		t.Fatalf("UnavailableDates: %v", err)
	}
	blocked := make(map[string]bool, len(unavailable))
	for _, d := range unavailable {
		blocked[d.Format("2006-01-02")] = true
	}

	for d := day("2024-06-01"); d.Before(day("2024-06-30")); d = d.AddDate(0, 0, 1) {
		free, err := checker.CheckRange(7, d, d.AddDate(0, 0, 1))
		if err != nil {
			t.Fatalf("CheckRange(%s): %v", d.Format("2006-01-02"), err)
		}
		if free == blocked[d.Format("2006-01-02")] {
			t.Errorf("date %s: range check says free=%v but listing says blocked=%v",
				d.Format("2006-01-02"), free, blocked[d.Format("2006-01-02")])
		}
	}
}

func TestOverlaps(t *testing.T) {
	a, b := day("2024-06-10"), day("2024-06-15")

	if Overlaps(a, b, day("2024-06-15"), day("2024-06-18")) {
		t.Error("touching at the boundary is not an overlap")
	}
	if Overlaps(a, b, day("2024-06-05"), day("2024-06-10")) {
		t.Error("ending at check-in is not an overlap")
	}
	if !Overlaps(a, b, day("2024-06-14"), day("2024-06-16")) {
		t.Error("partial intersection is an overlap")
	}
	if !Overlaps(a, b, day("2024-06-11"), day("2024-06-12")) {
		t.Error("containment is an overlap")
	}
}

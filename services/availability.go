package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"

	"gorm.io/gorm"
)

// ErrValidation marks caller-supplied parameter errors so handlers can
// answer 400 instead of 500. Store failures come back unwrapped.
var ErrValidation = errors.New("invalid availability query")

// StayWindow is one occupied half-open interval [CheckIn, CheckOut).
type StayWindow struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// ReservationSource yields the active (non-cancelled) stay windows of a
// chambre. Kept narrow so tests can fake the store.
type ReservationSource interface {
	ActiveWindows(chambreID uint) ([]StayWindow, error)
}

// AvailabilityService answers the two questions a booking calendar asks:
// is this range free, and which dates are already taken.
type AvailabilityService struct {
	source ReservationSource
}

func NewAvailabilityService(source ReservationSource) *AvailabilityService {
	return &AvailabilityService{source: source}
}

// CheckRange reports whether [arrival, departure) is free of conflicting
// active reservations. Malformed input fails before the store is touched.
func (s *AvailabilityService) CheckRange(chambreID uint, arrival, departure time.Time) (bool, error) {
	if chambreID == 0 {
		return false, fmt.Errorf("%w: chambre id is required", ErrValidation)
	}
	if !departure.After(arrival) {
		return false, fmt.Errorf("%w: departure must be after arrival", ErrValidation)
	}

	windows, err := s.source.ActiveWindows(chambreID)
	if err != nil {
		return false, err
	}

	for _, w := range windows {
		if Overlaps(w.CheckIn, w.CheckOut, arrival, departure) {
			return false, nil
		}
	}
	return true, nil
}

// UnavailableDates returns the sorted calendar dates covered by any
// active reservation of the chambre, suitable for disabling dates in a
// date picker. Checkout days stay free (same-day turnover).
func (s *AvailabilityService) UnavailableDates(chambreID uint) ([]time.Time, error) {
	if chambreID == 0 {
		return nil, fmt.Errorf("%w: chambre id is required", ErrValidation)
	}

	windows, err := s.source.ActiveWindows(chambreID)
	if err != nil {
		return nil, err
	}

	seen := make(map[time.Time]bool)
	for _, w := range windows {
		for d := TruncateToDay(w.CheckIn); d.Before(w.CheckOut); d = d.AddDate(0, 0, 1) {
			seen[d] = true
		}
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// Overlaps reports whether two half-open intervals intersect:
// aStart < bEnd AND bStart < aEnd.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// TruncateToDay drops the time-of-day component in UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GormReservationSource is the production source backed by the
// reservation table.
type GormReservationSource struct {
	db *gorm.DB
}

func NewGormReservationSource(db *gorm.DB) *GormReservationSource {
	return &GormReservationSource{db: db}
}

func (g *GormReservationSource) ActiveWindows(chambreID uint) ([]StayWindow, error) {
	var reservations []models.Reservation
	err := g.db.
		Select("check_in, check_out").
		Where("chambre_id = ? AND status <> ?", chambreID, models.ReservationCancelled).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}

	windows := make([]StayWindow, 0, len(reservations))
	for _, r := range reservations {
		windows = append(windows, StayWindow{CheckIn: r.CheckIn, CheckOut: r.CheckOut})
	}
	return windows, nil
}

package models

import (
	"testing"
	"time"
)

func TestReservationNights(t *testing.T) {
	checkIn := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	r := Reservation{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 5)}
	if got := r.Nights(); got != 5 {
		t.Errorf("Nights = %d, want 5", got)
	}

	same := Reservation{CheckIn: checkIn, CheckOut: checkIn}
	if got := same.Nights(); got != 0 {
		t.Errorf("zero-length stay: Nights = %d, want 0", got)
	}

	inverted := Reservation{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, -2)}
	if got := inverted.Nights(); got != 0 {
		t.Errorf("inverted stay: Nights = %d, want 0", got)
	}
}

func TestReservationIsActive(t *testing.T) {
	for _, status := range []string{ReservationPending, ReservationConfirmed, ReservationCompleted} {
		r := Reservation{Status: status}
		if !r.IsActive() {
			t.Errorf("status %q should count against availability", status)
		}
	}

	cancelled := Reservation{Status: ReservationCancelled}
	if cancelled.IsActive() {
		t.Error("cancelled reservations must not count against availability")
	}
}

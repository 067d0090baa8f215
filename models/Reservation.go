package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation statuses. Only non-cancelled reservations count against a
// chambre's availability.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

// Reservation books a chambre for the half-open interval
// [CheckIn, CheckOut): the checkout day itself is free for same-day turnover.
type Reservation struct {
	gorm.Model
	Code            string    `json:"code" gorm:"size:32;uniqueIndex"`
	ChambreID       uint      `json:"chambreId" gorm:"not null;index"`
	Chambre         Chambre   `json:"chambre" gorm:"foreignKey:ChambreID"`
	GuestID         uint      `json:"guestId" gorm:"not null;index"`
	Guest           User      `json:"guest" gorm:"foreignKey:GuestID"`
	CheckIn         time.Time `json:"checkIn" gorm:"not null;index"`
	CheckOut        time.Time `json:"checkOut" gorm:"not null;index"`
	GuestCount      int       `json:"guestCount" gorm:"default:1"`
	GuestPhone      string    `json:"guestPhone" gorm:"size:32"`
	TotalPrice      int64     `json:"totalPrice"`
	Currency        string    `json:"currency" gorm:"size:3;default:usd"`
	Status          string    `json:"status" gorm:"size:20;default:pending;index"`
	PaymentStatus   string    `json:"paymentStatus" gorm:"size:20;default:pending"` // pending, paid, refunded
	SpecialRequests string    `json:"specialRequests" gorm:"type:text"`
	Note            string    `json:"note" gorm:"type:text"`
}

// IsActive reports whether the reservation still occupies its dates.
func (r *Reservation) IsActive() bool {
	return r.Status != ReservationCancelled
}

// Nights returns the number of occupied nights in the half-open stay.
func (r *Reservation) Nights() int {
	n := int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

package models

import "gorm.io/gorm"

// Payment records a Stripe payment intent created for a reservation.
// The intent lifecycle itself lives at Stripe; this row is the back
// office's view of it.
type Payment struct {
	gorm.Model
	ReservationID   *uint        `json:"reservationID" gorm:"index"`
	Reservation     *Reservation `json:"reservation,omitempty" gorm:"foreignKey:ReservationID"`
	InvoiceID       *uint        `json:"invoiceID" gorm:"index"`
	Invoice         *Invoice     `json:"invoice,omitempty" gorm:"foreignKey:InvoiceID"`
	StripeIntentID  string       `json:"stripeIntentID" gorm:"size:64;index"`
	ReservationCode string       `json:"reservationCode" gorm:"size:32;index"`
	Amount          int64        `json:"amount" gorm:"not null"`
	Currency        string       `json:"currency" gorm:"size:3;default:usd"`
	Status          string       `json:"status" gorm:"size:32;default:created;index"` // created, succeeded, failed
}

package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	InvoiceDraft  = "draft"
	InvoiceIssued = "issued"
	InvoicePaid   = "paid"
	InvoiceVoid   = "void"
)

// InvoiceLine is one billed line; amounts are minor currency units.
type InvoiceLine struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitAmount  int64  `json:"unitAmount"`
}

func (l InvoiceLine) Total() int64 {
	return int64(l.Quantity) * l.UnitAmount
}

type Invoice struct {
	gorm.Model
	Number        string         `json:"number" gorm:"size:32;uniqueIndex"`
	ReservationID *uint          `json:"reservationID" gorm:"index"`
	Reservation   *Reservation   `json:"reservation,omitempty" gorm:"foreignKey:ReservationID"`
	Amount        int64          `json:"amount" gorm:"not null"`
	Currency      string         `json:"currency" gorm:"size:3;default:usd"`
	Status        string         `json:"status" gorm:"size:20;default:draft;index"`
	Lines         datatypes.JSON `json:"lines"`
	IssuedAt      *time.Time     `json:"issuedAt"`
	PaidAt        *time.Time     `json:"paidAt"`
	Note          string         `json:"note" gorm:"type:text"`
}

// LineItems decodes the stored lines column.
func (i *Invoice) LineItems() ([]InvoiceLine, error) {
	if i.Lines == nil {
		return nil, nil
	}
	var lines []InvoiceLine
	if err := json.Unmarshal(i.Lines, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// SumLines totals the line items in minor units.
func SumLines(lines []InvoiceLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Total()
	}
	return total
}

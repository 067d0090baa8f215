package models

import "gorm.io/gorm"

const (
	EmailSent   = "sent"
	EmailFailed = "failed"
)

// EmailLog records every outbound email attempt so the back office can
// audit what guests were actually sent.
type EmailLog struct {
	gorm.Model
	Recipient  string `json:"recipient" gorm:"size:256;index"`
	Subject    string `json:"subject" gorm:"size:256"`
	Template   string `json:"template" gorm:"size:64;index"` // reservation_confirmation, password_reset, ...
	Status     string `json:"status" gorm:"size:16;index"`
	ProviderID string `json:"providerID" gorm:"size:64"` // mailjet message id
	Error      string `json:"error" gorm:"type:text"`
}

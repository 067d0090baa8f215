package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID        uint         `json:"userID" gorm:"not null;index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ChambreID     uint         `json:"chambreID" gorm:"not null;index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ReservationID *uint        `json:"reservationID" gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Reservation   *Reservation `json:"reservation,omitempty" gorm:"foreignKey:ReservationID"`
	User          User         `json:"user" gorm:"foreignKey:UserID"`
	Chambre       Chambre      `json:"chambre" gorm:"foreignKey:ChambreID"`
	Title         string       `json:"title"`
	Body          string       `json:"body" gorm:"type:text"`
	Stars         int          `json:"stars" gorm:"not null;check:stars >= 1 AND stars <= 5"`
	IsVisible     bool         `json:"isVisible" gorm:"default:true;index"` // moderation flag
	IsVerified    bool         `json:"isVerified" gorm:"default:false"`     // verified stay
}

package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Chambre is a bookable motel room. Prices are stored in minor currency
// units (cents) to avoid float drift between quotes and invoices.
type Chambre struct {
	gorm.Model
	Number        string         `json:"number" gorm:"size:16;uniqueIndex"`
	Name          string         `json:"name" gorm:"size:128"`
	Description   string         `json:"description" gorm:"type:text"`
	Capacity      int            `json:"capacity" gorm:"not null;default:2"`
	BedCount      int            `json:"bedCount" gorm:"default:1"`
	PricePerNight int64          `json:"pricePerNight" gorm:"not null"`
	Currency      string         `json:"currency" gorm:"size:3;default:usd"`
	Photos        datatypes.JSON `json:"photos"`
	Amenities     datatypes.JSON `json:"amenities"`
	IsActive      bool           `json:"isActive" gorm:"default:true;index"`
	Reservations  []Reservation  `json:"reservations,omitempty" gorm:"foreignKey:ChambreID;references:ID"`
	Reviews       []Review       `json:"reviews,omitempty" gorm:"foreignKey:ChambreID;references:ID"`
}

func (c *Chambre) MarshalJSON() ([]byte, error) {
	type Alias Chambre
	aux := &struct {
		Photos    []string `json:"photos,omitempty"`
		Amenities []string `json:"amenities,omitempty"`
		*Alias
	}{
		Photos:    []string{},
		Amenities: []string{},
		Alias:     (*Alias)(c),
	}

	if c.Photos != nil {
		var photos []string
		if err := json.Unmarshal(c.Photos, &photos); err == nil {
			aux.Photos = photos
		}
	}
	if c.Amenities != nil {
		var amenities []string
		if err := json.Unmarshal(c.Amenities, &amenities); err == nil {
			aux.Amenities = amenities
		}
	}

	return json.Marshal(aux)
}

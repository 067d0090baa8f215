package models

import "gorm.io/gorm"

// Service is a motel amenity shown on the public services page
// (breakfast, laundry, airport shuttle, ...).
type Service struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:128;not null"`
	Description string `json:"description" gorm:"type:text"`
	Icon        string `json:"icon" gorm:"size:64"`
	Price       int64  `json:"price"` // minor units; 0 means included
	Currency    string `json:"currency" gorm:"size:3;default:usd"`
	IsActive    bool   `json:"isActive" gorm:"default:true;index"`
	SortOrder   int    `json:"sortOrder" gorm:"default:0"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	RoomNumber string  `gorm:"column:room_number;uniqueIndex;type:varchar(50)" json:"room_number"`
	Type       string  `gorm:"size:100;index" json:"type"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"` // nightly rate
	State      string  `gorm:"size:32;index" json:"state"`

	// Occupant. Only meaningful while State == RoomOccupied, 0 otherwise.
	CustomerID uint `gorm:"column:customer_id;default:0" json:"customer_id"`

	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

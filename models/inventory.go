package models

import "time"

type InventoryItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:255" json:"name"`
	Type      string  `gorm:"size:100;index" json:"type"`
	UnitPrice float64 `gorm:"column:unit_price" json:"unit_price"`
	Stock     int     `json:"stock"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (InventoryItem) TableName() string { return "inventory" }

// Value is the stock valued at unit price.
func (i InventoryItem) Value() float64 {
	return i.UnitPrice * float64(i.Stock)
}

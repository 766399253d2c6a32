package models

import "time"

type Booking struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"column:customer_id;index" json:"customer_id"`
	RoomID     uint      `gorm:"column:room_id;index" json:"room_id"`
	StartDate  time.Time `gorm:"column:start_date;index" json:"start_date"`
	EndDate    time.Time `gorm:"column:end_date;index" json:"end_date"`

	// TotalPrice is derived from the room rate when left empty, but an explicit value wins.
	TotalPrice float64 `gorm:"column:total_price" json:"total_price"`
	State      string  `gorm:"size:32;index" json:"state"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingWithRelations is the read model returned by booking listings. It is assembled by
// joining bookings with the customers and rooms tables and is never written back.
type BookingWithRelations struct {
	Booking

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email,omitempty"`
	RoomNumber    string `json:"room_number"`
	RoomType      string `json:"room_type,omitempty"`
}

// BookingInventory links inventory items (minibar, extra beds...) to a booking.
type BookingInventory struct {
	BookingID   uint `gorm:"primaryKey;column:booking_id;autoIncrement:false" json:"booking_id"`
	InventoryID uint `gorm:"primaryKey;column:inventory_id;autoIncrement:false" json:"inventory_id"`
	Quantity    int  `gorm:"column:quantity;default:1" json:"quantity"`
}

func (BookingInventory) TableName() string { return "booking_inventory" }

// models/customer.go
package models

import "time"

type Customer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255" json:"name"`
	ContactName string `gorm:"column:contact_name;size:255" json:"contact_name"`
	Phone       string `gorm:"size:50" json:"phone"`
	Email       string `gorm:"size:150" json:"email"`
	Address     string `gorm:"type:text" json:"address"`

	// State is one of CustomerActive/Inactive/Pending, but stored rows may carry other values.
	State string `gorm:"size:32;index" json:"state"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

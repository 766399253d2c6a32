package config

import (
	"log"

	"hotel-admin/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedDatabase fills empty tables with a small demo data set. Tables that already hold rows
// are left alone.
func SeedDatabase(db *gorm.DB) {
	// ---------------- Customers ----------------
	var customerCount int64
	db.Model(&models.Customer{}).Count(&customerCount)
	if customerCount == 0 {
		customers := []models.Customer{
			{Name: "Viajes Andinos S.A.", ContactName: "Lucía Romero", Phone: "+51 1 555 0101", Email: "reservas@andinos.example", Address: "Av. Arequipa 1200, Lima", State: models.CustomerActive},
			{Name: "Carlos Méndez", ContactName: "Carlos Méndez", Phone: "+51 987 654 321", Email: "carlos.mendez@example.com", State: models.CustomerPending},
		}
		if err := db.Create(&customers).Error; err != nil {
			log.Printf("warning: failed to seed customers: %v", err)
		} else {
			log.Println("Customers seeded")
		}
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Type: "individual", Capacity: 1, Price: 60, State: models.RoomAvailable, Amenities: datatypes.JSON(`["wifi"]`)},
			{RoomNumber: "102", Type: "doble", Capacity: 2, Price: 100, State: models.RoomAvailable, Amenities: datatypes.JSON(`["wifi","tv"]`)},
			{RoomNumber: "201", Type: "suite", Capacity: 4, Price: 220, State: models.RoomMaintenance, Amenities: datatypes.JSON(`["wifi","tv","minibar","jacuzzi"]`)},
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	// ---------------- Inventory ----------------
	var itemCount int64
	db.Model(&models.InventoryItem{}).Count(&itemCount)
	if itemCount == 0 {
		items := []models.InventoryItem{
			{Name: "Toalla grande", Type: "lencería", UnitPrice: 8.5, Stock: 120},
			{Name: "Agua mineral 500ml", Type: "minibar", UnitPrice: 1.2, Stock: 24},
			{Name: "Cama supletoria", Type: "mobiliario", UnitPrice: 90, Stock: 4},
		}
		if err := db.Create(&items).Error; err != nil {
			log.Printf("warning: failed to seed inventory: %v", err)
		} else {
			log.Println("Inventory seeded")
		}
	}
}

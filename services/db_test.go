package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-admin/models"
)

// newTestDB opens a private in-memory sqlite database with the full schema. A single
// connection keeps every query (including concurrent loads) on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Room{},
		&models.InventoryItem{},
		&models.Booking{},
		&models.BookingInventory{},
	))
	return db
}

func day(t *testing.T, raw string) time.Time {
	t.Helper()
	d, err := ParseDate(raw)
	require.NoError(t, err)
	return d
}

func seedRoom(t *testing.T, db *gorm.DB, number string, price float64) models.Room {
	t.Helper()
	room := models.Room{RoomNumber: number, Type: "doble", Capacity: 2, Price: price, State: models.RoomAvailable}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name, Email: name + "@example.com", State: models.CustomerActive}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedBooking(t *testing.T, db *gorm.DB, customerID, roomID uint, start, end, state string) models.Booking {
	t.Helper()
	booking := models.Booking{
		CustomerID: customerID,
		RoomID:     roomID,
		StartDate:  day(t, start),
		EndDate:    day(t, end),
		TotalPrice: 100,
		State:      state,
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}

package services

import (
	"context"

	"gorm.io/gorm"

	"hotel-admin/models"
)

type BookingInventoryService struct {
	DB *gorm.DB
}

func NewBookingInventoryService(db *gorm.DB) *BookingInventoryService {
	return &BookingInventoryService{DB: db}
}

func (s *BookingInventoryService) ListByBooking(ctx context.Context, bookingID uint) ([]models.BookingInventory, error) {
	out := make([]models.BookingInventory, 0)
	if err := s.DB.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("inventory_id ASC").
		Find(&out).Error; err != nil {
		return nil, remote("booking_inventory.list", err)
	}
	return out, nil
}

func (s *BookingInventoryService) Create(ctx context.Context, link *models.BookingInventory) error {
	if link.Quantity <= 0 {
		link.Quantity = 1
	}
	return createRecord(ctx, s.DB, "booking_inventory.create", link)
}

func (s *BookingInventoryService) UpdateQuantity(ctx context.Context, bookingID, inventoryID uint, quantity int) (*models.BookingInventory, error) {
	result := s.DB.WithContext(ctx).
		Model(&models.BookingInventory{}).
		Where("booking_id = ? AND inventory_id = ?", bookingID, inventoryID).
		Update("quantity", quantity)
	if result.Error != nil {
		return nil, remote("booking_inventory.update", result.Error)
	}

	var link models.BookingInventory
	if err := s.DB.WithContext(ctx).
		Where("booking_id = ? AND inventory_id = ?", bookingID, inventoryID).
		First(&link).Error; err != nil {
		return nil, remote("booking_inventory.update", err)
	}
	return &link, nil
}

func (s *BookingInventoryService) Delete(ctx context.Context, bookingID, inventoryID uint) error {
	result := s.DB.WithContext(ctx).
		Where("booking_id = ? AND inventory_id = ?", bookingID, inventoryID).
		Delete(&models.BookingInventory{})
	if result.Error != nil {
		return remote("booking_inventory.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return remote("booking_inventory.delete", ErrNotFound)
	}
	return nil
}

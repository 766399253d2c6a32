package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"hotel-admin/models"
)

type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

type InventoryPatch struct {
	Name      *string
	Type      *string
	UnitPrice *float64
	Stock     *int
}

func (p InventoryPatch) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Type != nil {
		fields["type"] = strings.TrimSpace(*p.Type)
	}
	if p.UnitPrice != nil {
		fields["unit_price"] = *p.UnitPrice
	}
	if p.Stock != nil {
		fields["stock"] = *p.Stock
	}
	return fields
}

func (s *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	return listAll[models.InventoryItem](ctx, s.DB, "inventory.list", "id ASC")
}

func (s *InventoryService) GetByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	return getByID[models.InventoryItem](ctx, s.DB, "inventory.get", id)
}

func (s *InventoryService) Create(ctx context.Context, item *models.InventoryItem) error {
	item.ID = 0
	return createRecord(ctx, s.DB, "inventory.create", item)
}

func (s *InventoryService) Update(ctx context.Context, id uint, patch InventoryPatch) (*models.InventoryItem, error) {
	return updateByID[models.InventoryItem](ctx, s.DB, "inventory.update", id, patch.fields())
}

func (s *InventoryService) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.InventoryItem](ctx, s.DB, "inventory.delete", id)
}

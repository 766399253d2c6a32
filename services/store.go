package services

import (
	"context"

	"gorm.io/gorm"
)

// Generic table helpers shared by the entity services. Each one issues exactly one query
// (updateByID re-reads the row afterwards).

func listAll[T any](ctx context.Context, db *gorm.DB, op, order string) ([]T, error) {
	out := make([]T, 0)
	if err := db.WithContext(ctx).Order(order).Find(&out).Error; err != nil {
		return nil, remote(op, err)
	}
	return out, nil
}

func getByID[T any](ctx context.Context, db *gorm.DB, op string, id uint) (*T, error) {
	var out T
	if err := db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, remote(op, err)
	}
	return &out, nil
}

func createRecord[T any](ctx context.Context, db *gorm.DB, op string, record *T) error {
	if err := db.WithContext(ctx).Create(record).Error; err != nil {
		return remote(op, err)
	}
	return nil
}

func updateByID[T any](ctx context.Context, db *gorm.DB, op string, id uint, fields map[string]interface{}) (*T, error) {
	if len(fields) > 0 {
		if err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, remote(op, err)
		}
	}
	return getByID[T](ctx, db, op, id)
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, op string, id uint) error {
	result := db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return remote(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return remote(op, ErrNotFound)
	}
	return nil
}

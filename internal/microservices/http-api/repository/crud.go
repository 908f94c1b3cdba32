package repository

import (
	"context"

	"gorm.io/gorm"
)

// updateByID applies a partial update and returns the fresh row.
// gorm.ErrRecordNotFound is returned when the row does not exist.
func updateByID[T any](ctx context.Context, db *gorm.DB, id int64, fields map[string]any) (*T, error) {
	return updateChecked[T](ctx, db, id, fields, nil)
}

// updateChecked is updateByID with a check on the merged row. A check error
// rolls the update back and is returned unchanged.
func updateChecked[T any](ctx context.Context, db *gorm.DB, id int64, fields map[string]any, check func(*T) error) (*T, error) {
	var row T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, id).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&row).Updates(fields).Error; err != nil {
			return err
		}
		if err := tx.First(&row, id).Error; err != nil {
			return err
		}
		if check != nil {
			return check(&row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// deleteByID removes one row by primary key
func deleteByID[T any](ctx context.Context, db *gorm.DB, id int64) error {
	var row T
	result := db.WithContext(ctx).Delete(&row, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// getByID loads one row by primary key
func getByID[T any](ctx context.Context, db *gorm.DB, id int64) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

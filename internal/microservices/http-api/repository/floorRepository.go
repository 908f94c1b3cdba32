package repository

import (
	"context"

	"dormhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type FloorRepository interface {
	Create(ctx context.Context, floor *models.Floor) error
	Update(ctx context.Context, floorID int64, fields map[string]any) (*models.Floor, error)
	Delete(ctx context.Context, floorID int64) error
	GetByID(ctx context.Context, floorID int64) (*models.Floor, error)
	List(ctx context.Context) ([]models.Floor, error)
}

type floorRepository struct {
	db *gorm.DB
}

func NewFloorRepository(db *gorm.DB) FloorRepository {
	return &floorRepository{db: db}
}

func (r *floorRepository) Create(ctx context.Context, floor *models.Floor) error {
	return r.db.WithContext(ctx).Create(floor).Error
}

func (r *floorRepository) Update(ctx context.Context, floorID int64, fields map[string]any) (*models.Floor, error) {
	return updateByID[models.Floor](ctx, r.db, floorID, fields)
}

func (r *floorRepository) Delete(ctx context.Context, floorID int64) error {
	return deleteByID[models.Floor](ctx, r.db, floorID)
}

func (r *floorRepository) GetByID(ctx context.Context, floorID int64) (*models.Floor, error) {
	return getByID[models.Floor](ctx, r.db, floorID)
}

// List returns floors ordered by floor number
func (r *floorRepository) List(ctx context.Context) ([]models.Floor, error) {
	var floors []models.Floor
	if err := r.db.WithContext(ctx).Order("floor_number").Find(&floors).Error; err != nil {
		return nil, err
	}
	return floors, nil
}

package repository

import (
	"context"

	"dormhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type BlockRepository interface {
	Create(ctx context.Context, block *models.Block) error
	Update(ctx context.Context, blockID int64, fields map[string]any) (*models.Block, error)
	Delete(ctx context.Context, blockID int64) error
	GetByID(ctx context.Context, blockID int64) (*models.Block, error)
	List(ctx context.Context) ([]models.Block, error)
	ListByFloor(ctx context.Context, floorID int64) ([]models.Block, error)
}

type blockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) Create(ctx context.Context, block *models.Block) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *blockRepository) Update(ctx context.Context, blockID int64, fields map[string]any) (*models.Block, error) {
	return updateByID[models.Block](ctx, r.db, blockID, fields)
}

func (r *blockRepository) Delete(ctx context.Context, blockID int64) error {
	return deleteByID[models.Block](ctx, r.db, blockID)
}

func (r *blockRepository) GetByID(ctx context.Context, blockID int64) (*models.Block, error) {
	return getByID[models.Block](ctx, r.db, blockID)
}

// List returns blocks ordered by name
func (r *blockRepository) List(ctx context.Context) ([]models.Block, error) {
	var blocks []models.Block
	if err := r.db.WithContext(ctx).Order("block_name").Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *blockRepository) ListByFloor(ctx context.Context, floorID int64) ([]models.Block, error) {
	var blocks []models.Block
	if err := r.db.WithContext(ctx).Where("floor_id = ?", floorID).Order("block_name").Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

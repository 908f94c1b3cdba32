package service

import (
	"context"

	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/microservices/http-api/repository"
)

type BlockService interface {
	ListBlocks(ctx context.Context) ([]models.Block, error)
	GetBlock(ctx context.Context, blockID int64) (*models.Block, error)
	CreateBlock(ctx context.Context, block *models.Block) (*models.Block, error)
	UpdateBlock(ctx context.Context, blockID int64, fields map[string]any) (*models.Block, error)
	DeleteBlock(ctx context.Context, blockID int64) error
	ListBlockRooms(ctx context.Context, blockID int64) ([]models.Room, error)
}

type blockService struct {
	blockRepo repository.BlockRepository
	roomRepo  repository.RoomRepository
}

func NewBlockService(blockRepo repository.BlockRepository, roomRepo repository.RoomRepository) BlockService {
	return &blockService{blockRepo: blockRepo, roomRepo: roomRepo}
}

func (s *blockService) ListBlocks(ctx context.Context) ([]models.Block, error) {
	return s.blockRepo.List(ctx)
}

func (s *blockService) GetBlock(ctx context.Context, blockID int64) (*models.Block, error) {
	block, err := s.blockRepo.GetByID(ctx, blockID)
	if err != nil {
		return nil, translate(err, "block")
	}
	return block, nil
}

func (s *blockService) CreateBlock(ctx context.Context, block *models.Block) (*models.Block, error) {
	if err := s.blockRepo.Create(ctx, block); err != nil {
		return nil, err
	}
	return block, nil
}

func (s *blockService) UpdateBlock(ctx context.Context, blockID int64, fields map[string]any) (*models.Block, error) {
	block, err := s.blockRepo.Update(ctx, blockID, fields)
	if err != nil {
		return nil, translate(err, "block")
	}
	return block, nil
}

func (s *blockService) DeleteBlock(ctx context.Context, blockID int64) error {
	return translate(s.blockRepo.Delete(ctx, blockID), "block")
}

func (s *blockService) ListBlockRooms(ctx context.Context, blockID int64) ([]models.Room, error) {
	if _, err := s.GetBlock(ctx, blockID); err != nil {
		return nil, err
	}
	return s.roomRepo.ListByBlock(ctx, blockID)
}

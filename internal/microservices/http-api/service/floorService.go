package service

import (
	"context"

	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/microservices/http-api/repository"
)

type FloorService interface {
	ListFloors(ctx context.Context) ([]models.Floor, error)
	GetFloor(ctx context.Context, floorID int64) (*models.Floor, error)
	CreateFloor(ctx context.Context, floor *models.Floor) (*models.Floor, error)
	UpdateFloor(ctx context.Context, floorID int64, fields map[string]any) (*models.Floor, error)
	DeleteFloor(ctx context.Context, floorID int64) error
	ListFloorBlocks(ctx context.Context, floorID int64) ([]models.Block, error)
}

type floorService struct {
	floorRepo repository.FloorRepository
	blockRepo repository.BlockRepository
}

func NewFloorService(floorRepo repository.FloorRepository, blockRepo repository.BlockRepository) FloorService {
	return &floorService{floorRepo: floorRepo, blockRepo: blockRepo}
}

func (s *floorService) ListFloors(ctx context.Context) ([]models.Floor, error) {
	return s.floorRepo.List(ctx)
}

func (s *floorService) GetFloor(ctx context.Context, floorID int64) (*models.Floor, error) {
	floor, err := s.floorRepo.GetByID(ctx, floorID)
	if err != nil {
		return nil, translate(err, "floor")
	}
	return floor, nil
}

func (s *floorService) CreateFloor(ctx context.Context, floor *models.Floor) (*models.Floor, error) {
	if err := s.floorRepo.Create(ctx, floor); err != nil {
		return nil, err
	}
	return floor, nil
}

func (s *floorService) UpdateFloor(ctx context.Context, floorID int64, fields map[string]any) (*models.Floor, error) {
	floor, err := s.floorRepo.Update(ctx, floorID, fields)
	if err != nil {
		return nil, translate(err, "floor")
	}
	return floor, nil
}

func (s *floorService) DeleteFloor(ctx context.Context, floorID int64) error {
	return translate(s.floorRepo.Delete(ctx, floorID), "floor")
}

// ListFloorBlocks lists the blocks of an existing floor
func (s *floorService) ListFloorBlocks(ctx context.Context, floorID int64) ([]models.Block, error) {
	if _, err := s.GetFloor(ctx, floorID); err != nil {
		return nil, err
	}
	return s.blockRepo.ListByFloor(ctx, floorID)
}

package service

import (
	"context"

	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/microservices/http-api/repository"
)

type PublicRoomService interface {
	ListPublicRooms(ctx context.Context) ([]models.PublicRoomView, error)
	GetPublicRoom(ctx context.Context, roomID int64) (*models.PublicRoomView, error)
	CreatePublicRoom(ctx context.Context, room *models.PublicRoom) (*models.PublicRoomView, error)
	UpdatePublicRoom(ctx context.Context, roomID int64, fields map[string]any) (*models.PublicRoomView, error)
	DeletePublicRoom(ctx context.Context, roomID int64) error
	ListRoomTypes(ctx context.Context) ([]models.RoomType, error)
}

type publicRoomService struct {
	publicRoomRepo repository.PublicRoomRepository
}

func NewPublicRoomService(publicRoomRepo repository.PublicRoomRepository) PublicRoomService {
	return &publicRoomService{publicRoomRepo: publicRoomRepo}
}

func (s *publicRoomService) ListPublicRooms(ctx context.Context) ([]models.PublicRoomView, error) {
	return s.publicRoomRepo.ListViews(ctx)
}

func (s *publicRoomService) GetPublicRoom(ctx context.Context, roomID int64) (*models.PublicRoomView, error) {
	room, err := s.publicRoomRepo.GetView(ctx, roomID)
	if err != nil {
		return nil, translate(err, "public room")
	}
	return room, nil
}

// CreatePublicRoom stores the room and returns it with type/floor/block names
func (s *publicRoomService) CreatePublicRoom(ctx context.Context, room *models.PublicRoom) (*models.PublicRoomView, error) {
	if err := s.publicRoomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return s.GetPublicRoom(ctx, room.ID)
}

func (s *publicRoomService) UpdatePublicRoom(ctx context.Context, roomID int64, fields map[string]any) (*models.PublicRoomView, error) {
	if _, err := s.publicRoomRepo.Update(ctx, roomID, fields); err != nil {
		return nil, translate(err, "public room")
	}
	return s.GetPublicRoom(ctx, roomID)
}

func (s *publicRoomService) DeletePublicRoom(ctx context.Context, roomID int64) error {
	return translate(s.publicRoomRepo.Delete(ctx, roomID), "public room")
}

func (s *publicRoomService) ListRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	return s.publicRoomRepo.ListTypes(ctx)
}

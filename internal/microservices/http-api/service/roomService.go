package service

import (
	"context"

	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/microservices/http-api/repository"
)

type RoomService interface {
	ListRooms(ctx context.Context) ([]models.RoomView, error)
	GetRoom(ctx context.Context, roomID int64) (*models.RoomView, error)
	CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error)
	UpdateRoom(ctx context.Context, roomID int64, fields map[string]any) (*models.Room, error)
	DeleteRoom(ctx context.Context, roomID int64) error
	ListAvailableRooms(ctx context.Context) ([]models.RoomView, error)
	OccupancySummary(ctx context.Context) (*models.OccupancySummary, error)
}

type roomService struct {
	roomRepo repository.RoomRepository
}

func NewRoomService(roomRepo repository.RoomRepository) RoomService {
	return &roomService{roomRepo: roomRepo}
}

func (s *roomService) ListRooms(ctx context.Context) ([]models.RoomView, error) {
	return s.roomRepo.ListViews(ctx)
}

func (s *roomService) GetRoom(ctx context.Context, roomID int64) (*models.RoomView, error) {
	room, err := s.roomRepo.GetView(ctx, roomID)
	if err != nil {
		return nil, translate(err, "room")
	}
	return room, nil
}

// checkCapacity rejects rooms holding more residents than places
func checkCapacity(room *models.Room) error {
	if room.CurrentOccupancy > room.MaxCapacity {
		return invalidInput("current_occupancy exceeds max_capacity")
	}
	return nil
}

func (s *roomService) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if err := checkCapacity(room); err != nil {
		return nil, err
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID int64, fields map[string]any) (*models.Room, error) {
	room, err := s.roomRepo.Update(ctx, roomID, fields, checkCapacity)
	if err != nil {
		return nil, translate(err, "room")
	}
	return room, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID int64) error {
	return translate(s.roomRepo.Delete(ctx, roomID), "room")
}

// ListAvailableRooms lists rooms with at least one free place
func (s *roomService) ListAvailableRooms(ctx context.Context) ([]models.RoomView, error) {
	return s.roomRepo.ListAvailable(ctx)
}

// OccupancySummary totals occupancy and capacity over all rooms
func (s *roomService) OccupancySummary(ctx context.Context) (*models.OccupancySummary, error) {
	return s.roomRepo.Summary(ctx)
}

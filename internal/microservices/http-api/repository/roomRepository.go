package repository

import (
	"context"

	"dormhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, roomID int64, fields map[string]any, check func(*models.Room) error) (*models.Room, error)
	Delete(ctx context.Context, roomID int64) error
	GetView(ctx context.Context, roomID int64) (*models.RoomView, error)
	ListViews(ctx context.Context) ([]models.RoomView, error)
	ListAvailable(ctx context.Context) ([]models.RoomView, error)
	ListByBlock(ctx context.Context, blockID int64) ([]models.Room, error)
	Summary(ctx context.Context) (*models.OccupancySummary, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// Update merges fields into the room; check sees the merged row before commit
func (r *roomRepository) Update(ctx context.Context, roomID int64, fields map[string]any, check func(*models.Room) error) (*models.Room, error) {
	return updateChecked(ctx, r.db, roomID, fields, check)
}

func (r *roomRepository) Delete(ctx context.Context, roomID int64) error {
	return deleteByID[models.Room](ctx, r.db, roomID)
}

// views joins rooms with their block and floor
func (r *roomRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("rooms").
		Select(`rooms.id, rooms.block_id, rooms.room_number, rooms.max_capacity, rooms.current_occupancy,
			blocks.block_name, floors.floor_number`).
		Joins("JOIN blocks ON blocks.id = rooms.block_id").
		Joins("JOIN floors ON floors.id = blocks.floor_id")
}

func (r *roomRepository) GetView(ctx context.Context, roomID int64) (*models.RoomView, error) {
	var list []models.RoomView
	if err := r.views(ctx).Where("rooms.id = ?", roomID).Limit(1).Scan(&list).Error; err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &list[0], nil
}

// ListViews returns every room ordered by room number
func (r *roomRepository) ListViews(ctx context.Context) ([]models.RoomView, error) {
	var list []models.RoomView
	if err := r.views(ctx).Order("rooms.room_number").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListAvailable returns rooms that still have a free place
func (r *roomRepository) ListAvailable(ctx context.Context) ([]models.RoomView, error) {
	var list []models.RoomView
	err := r.views(ctx).
		Where("rooms.max_capacity > rooms.current_occupancy").
		Order("rooms.room_number").
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *roomRepository) ListByBlock(ctx context.Context, blockID int64) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).Where("block_id = ?", blockID).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// Summary sums occupancy and capacity over rooms that belong to a block and floor
func (r *roomRepository) Summary(ctx context.Context) (*models.OccupancySummary, error) {
	var summary models.OccupancySummary
	err := r.db.WithContext(ctx).
		Table("rooms").
		Select("COALESCE(SUM(rooms.current_occupancy), 0) AS total_occupancy, COALESCE(SUM(rooms.max_capacity), 0) AS total_capacity").
		Joins("JOIN blocks ON rooms.block_id = blocks.id").
		Joins("JOIN floors ON blocks.floor_id = floors.id").
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

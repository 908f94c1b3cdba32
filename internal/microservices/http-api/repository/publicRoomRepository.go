package repository

import (
	"context"

	"dormhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type PublicRoomRepository interface {
	Create(ctx context.Context, room *models.PublicRoom) error
	Update(ctx context.Context, roomID int64, fields map[string]any) (*models.PublicRoom, error)
	Delete(ctx context.Context, roomID int64) error
	GetView(ctx context.Context, roomID int64) (*models.PublicRoomView, error)
	ListViews(ctx context.Context) ([]models.PublicRoomView, error)
	ListTypes(ctx context.Context) ([]models.RoomType, error)
}

type publicRoomRepository struct {
	db *gorm.DB
}

func NewPublicRoomRepository(db *gorm.DB) PublicRoomRepository {
	return &publicRoomRepository{db: db}
}

func (r *publicRoomRepository) Create(ctx context.Context, room *models.PublicRoom) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *publicRoomRepository) Update(ctx context.Context, roomID int64, fields map[string]any) (*models.PublicRoom, error) {
	return updateByID[models.PublicRoom](ctx, r.db, roomID, fields)
}

func (r *publicRoomRepository) Delete(ctx context.Context, roomID int64) error {
	return deleteByID[models.PublicRoom](ctx, r.db, roomID)
}

// views joins public rooms with type, and outer-joins floor and block
func (r *publicRoomRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("public_rooms").
		Select(`public_rooms.id, public_rooms.room_name, public_rooms.type_id, room_types.type_name,
			public_rooms.floor_id, floors.floor_number, public_rooms.block_id, blocks.block_name,
			public_rooms.capacity, public_rooms.description`).
		Joins("JOIN room_types ON room_types.id = public_rooms.type_id").
		Joins("LEFT JOIN blocks ON blocks.id = public_rooms.block_id").
		Joins("LEFT JOIN floors ON floors.id = public_rooms.floor_id")
}

func (r *publicRoomRepository) GetView(ctx context.Context, roomID int64) (*models.PublicRoomView, error) {
	var list []models.PublicRoomView
	if err := r.views(ctx).Where("public_rooms.id = ?", roomID).Limit(1).Scan(&list).Error; err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &list[0], nil
}

// ListViews returns public rooms ordered by name
func (r *publicRoomRepository) ListViews(ctx context.Context) ([]models.PublicRoomView, error) {
	var list []models.PublicRoomView
	if err := r.views(ctx).Order("public_rooms.room_name").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *publicRoomRepository) ListTypes(ctx context.Context) ([]models.RoomType, error) {
	var types []models.RoomType
	if err := r.db.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

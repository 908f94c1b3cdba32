package repository

import (
	"context"

	"dormhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.RoomBooking) error
	Update(ctx context.Context, bookingID int64, fields map[string]any) (*models.RoomBooking, error)
	Delete(ctx context.Context, bookingID int64) error
	GetByID(ctx context.Context, bookingID int64) (*models.RoomBooking, error)
	List(ctx context.Context) ([]models.RoomBooking, error)
	ListByRoom(ctx context.Context, roomID int64) ([]models.RoomBooking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.RoomBooking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) Update(ctx context.Context, bookingID int64, fields map[string]any) (*models.RoomBooking, error) {
	return updateByID[models.RoomBooking](ctx, r.db, bookingID, fields)
}

func (r *bookingRepository) Delete(ctx context.Context, bookingID int64) error {
	return deleteByID[models.RoomBooking](ctx, r.db, bookingID)
}

func (r *bookingRepository) GetByID(ctx context.Context, bookingID int64) (*models.RoomBooking, error) {
	return getByID[models.RoomBooking](ctx, r.db, bookingID)
}

func (r *bookingRepository) List(ctx context.Context) ([]models.RoomBooking, error) {
	var bookings []models.RoomBooking
	if err := r.db.WithContext(ctx).Order("start_time").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListByRoom retrieves the bookings of one public room
func (r *bookingRepository) ListByRoom(ctx context.Context, roomID int64) ([]models.RoomBooking, error) {
	var bookings []models.RoomBooking
	if err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("start_time").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

package service

import (
	"context"
	"time"

	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/microservices/http-api/repository"
)

// BookingChanges holds the optional fields of a booking update
type BookingChanges struct {
	StartTime *time.Time
	EndTime   *time.Time
	IsActive  *bool
}

type BookingService interface {
	ListBookings(ctx context.Context) ([]models.RoomBooking, error)
	ListRoomBookings(ctx context.Context, roomID int64) ([]models.RoomBooking, error)
	GetBooking(ctx context.Context, bookingID int64) (*models.RoomBooking, error)
	CreateBooking(ctx context.Context, booking *models.RoomBooking) (*models.RoomBooking, error)
	UpdateBooking(ctx context.Context, bookingID int64, changes BookingChanges) (*models.RoomBooking, error)
	DeleteBooking(ctx context.Context, bookingID int64) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
}

func NewBookingService(bookingRepo repository.BookingRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo}
}

func (s *bookingService) ListBookings(ctx context.Context) ([]models.RoomBooking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *bookingService) ListRoomBookings(ctx context.Context, roomID int64) ([]models.RoomBooking, error) {
	return s.bookingRepo.ListByRoom(ctx, roomID)
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID int64) (*models.RoomBooking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, translate(err, "booking")
	}
	return booking, nil
}

// CreateBooking stores an active booking for a valid time window
func (s *bookingService) CreateBooking(ctx context.Context, booking *models.RoomBooking) (*models.RoomBooking, error) {
	if err := validateWindow(booking.StartTime, booking.EndTime); err != nil {
		return nil, err
	}
	booking.StartTime = booking.StartTime.UTC()
	booking.EndTime = booking.EndTime.UTC()
	booking.IsActive = true
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// UpdateBooking applies the supplied changes; the resulting window must stay valid
func (s *bookingService) UpdateBooking(ctx context.Context, bookingID int64, changes BookingChanges) (*models.RoomBooking, error) {
	current, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	start, end := current.StartTime, current.EndTime
	if changes.StartTime != nil {
		start = changes.StartTime.UTC()
		fields["start_time"] = start
	}
	if changes.EndTime != nil {
		end = changes.EndTime.UTC()
		fields["end_time"] = end
	}
	if changes.IsActive != nil {
		fields["is_active"] = *changes.IsActive
	}
	if err := validateWindow(start, end); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.Update(ctx, bookingID, fields)
	if err != nil {
		return nil, translate(err, "booking")
	}
	return booking, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID int64) error {
	return translate(s.bookingRepo.Delete(ctx, bookingID), "booking")
}

func validateWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return invalidInput("start_time and end_time are required")
	}
	if !end.After(start) {
		return invalidInput("end_time must be after start_time")
	}
	return nil
}

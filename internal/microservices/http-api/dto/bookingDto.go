package dto

import "time"

// CreateBookingDTO books a public room; user_id defaults to the caller
type CreateBookingDTO struct {
	RoomID    int64     `json:"room_id" binding:"required,min=1"`
	UserID    *int64    `json:"user_id" binding:"omitempty,min=1"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type UpdateBookingDTO struct {
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	IsActive  *bool      `json:"is_active"`
}

package models

import "time"

type RoomBooking struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	RoomID    int64     `json:"room_id" gorm:"not null;index"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	StartTime time.Time `json:"start_time" gorm:"not null"`
	EndTime   time.Time `json:"end_time" gorm:"not null"`
	IsActive  bool      `json:"is_active" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Room *PublicRoom `json:"-" gorm:"foreignKey:RoomID"`
	User *User       `json:"-" gorm:"foreignKey:UserID"`
}

func (RoomBooking) TableName() string {
	return "room_bookings"
}

package models

import (
	"time"
)

type User struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Password    string    `gorm:"column:hashed_password;not null" json:"-"` // Not show in JSON
	IsActive    bool      `gorm:"not null" json:"is_active"`
	IsSuperuser bool      `gorm:"not null" json:"is_superuser"`
	IsVerified  bool      `gorm:"not null" json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "user"
}

// All returns every model in migration order
func All() []any {
	return []any{
		&User{},
		&Floor{},
		&Block{},
		&Room{},
		&Resident{},
		&ResidentRating{},
		&RoomType{},
		&PublicRoom{},
		&RoomBooking{},
		&Comment{},
	}
}

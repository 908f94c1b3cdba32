package models

import "time"

type Resident struct {
	ID             int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID         *int64     `json:"user_id" gorm:"index"`
	FullName       string     `json:"full_name" gorm:"size:255;not null"`
	Gender         string     `json:"gender" gorm:"size:50;not null"`
	Citizenship    string     `json:"citizenship" gorm:"size:100;not null"`
	Role           string     `json:"role" gorm:"size:100;not null"`
	Faculty        *string    `json:"faculty" gorm:"size:100"`
	GroupNumber    *string    `json:"group_number" gorm:"size:50"` // empty for staff
	DateOfCheckIn  time.Time  `json:"date_of_check_in" gorm:"type:date;not null"`
	DateOfCheckOut *time.Time `json:"date_of_check_out" gorm:"type:date"`
	RoomID         *int64     `json:"room_id" gorm:"index"`
	Email          string     `json:"email" gorm:"size:255;not null"`
	Status         string     `json:"status" gorm:"size:100;not null"`

	// Associations
	User *User `json:"-" gorm:"foreignKey:UserID"`
	Room *Room `json:"-" gorm:"foreignKey:RoomID"`
}

func (Resident) TableName() string {
	return "residents"
}

// RoomResidentView is a resident listed together with the room it lives in
type RoomResidentView struct {
	ID               int64      `json:"id"`
	FullName         string     `json:"full_name"`
	Gender           string     `json:"gender"`
	Role             string     `json:"role"`
	Citizenship      string     `json:"citizenship"`
	Faculty          *string    `json:"faculty"`
	GroupNumber      *string    `json:"group_number"`
	DateOfCheckIn    time.Time  `json:"date_of_check_in"`
	DateOfCheckOut   *time.Time `json:"date_of_check_out"`
	Email            string     `json:"email"`
	Status           string     `json:"status"`
	RoomNumber       int        `json:"room_number"`
	MaxCapacity      int        `json:"max_capacity"`
	CurrentOccupancy int        `json:"current_occupancy"`
	BlockName        string     `json:"block_name"`
	FloorNumber      int        `json:"floor_number"`
}

// CheckInRow is the data a check-in notice is rendered from
type CheckInRow struct {
	FullName       string
	DateOfCheckIn  time.Time
	DateOfCheckOut *time.Time
	RoomNumber     int
	BlockName      string
	FloorNumber    int
}

// RelocationRow is the data a relocation notice is rendered from.
// The old room is outer-joined, so its columns may be missing.
type RelocationRow struct {
	FullName           string
	CurrentRoomNumber  int
	CurrentBlockName   string
	CurrentFloorNumber int
	OldRoomNumber      *int
	OldBlockName       *string
	OldFloorNumber     *int
}

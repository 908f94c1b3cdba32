package models

type Room struct {
	ID               int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	BlockID          int64 `json:"block_id" gorm:"not null;index"`
	RoomNumber       int   `json:"room_number" gorm:"not null"`
	MaxCapacity      int   `json:"max_capacity" gorm:"not null"`
	CurrentOccupancy int   `json:"current_occupancy" gorm:"not null"`

	// Associations
	Block *Block `json:"-" gorm:"foreignKey:BlockID"`
}

func (Room) TableName() string {
	return "rooms"
}

// RoomView is a room joined with its block and floor
type RoomView struct {
	ID               int64  `json:"id"`
	BlockID          int64  `json:"block_id"`
	RoomNumber       int    `json:"room_number"`
	MaxCapacity      int    `json:"max_capacity"`
	CurrentOccupancy int    `json:"current_occupancy"`
	BlockName        string `json:"block_name"`
	FloorNumber      int    `json:"floor_number"`
}

// OccupancySummary totals occupancy and capacity across every room
type OccupancySummary struct {
	TotalOccupancy int64 `json:"total_occupancy"`
	TotalCapacity  int64 `json:"total_capacity"`
}

package models

// PublicRoom is a shared amenity room (gym, study, laundry...) that can be booked
type PublicRoom struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	TypeID      int64   `json:"type_id" gorm:"not null;index"`
	RoomName    string  `json:"room_name" gorm:"not null"`
	FloorID     int64   `json:"floor_id" gorm:"not null;index"`
	BlockID     *int64  `json:"block_id" gorm:"index"`
	Description *string `json:"description"`
	Capacity    int     `json:"capacity"`

	// Associations
	Type  *RoomType `json:"-" gorm:"foreignKey:TypeID"`
	Floor *Floor    `json:"-" gorm:"foreignKey:FloorID"`
	Block *Block    `json:"-" gorm:"foreignKey:BlockID"`
}

func (PublicRoom) TableName() string {
	return "public_rooms"
}

// PublicRoomView is a public room joined with its type, floor and optional block
type PublicRoomView struct {
	ID          int64   `json:"id"`
	RoomName    string  `json:"room_name"`
	TypeID      int64   `json:"type_id"`
	TypeName    string  `json:"type_name"`
	FloorID     int64   `json:"floor_id"`
	FloorNumber *int    `json:"floor_number"`
	BlockID     *int64  `json:"block_id"`
	BlockName   *string `json:"block_name"`
	Capacity    int     `json:"capacity"`
	Description *string `json:"description"`
}

package models

type RoomType struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	TypeName    string  `json:"type_name" gorm:"not null"`
	Description *string `json:"description"`
}

func (RoomType) TableName() string {
	return "room_types"
}

package models

type Floor struct {
	ID          int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	FloorNumber int   `json:"floor_number" gorm:"not null;index"`
}

func (Floor) TableName() string {
	return "floors"
}

package models

type Block struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	FloorID   int64  `json:"floor_id" gorm:"not null;index"`
	BlockName string `json:"block_name" gorm:"not null"`

	// Associations
	Floor *Floor `json:"-" gorm:"foreignKey:FloorID"`
}

func (Block) TableName() string {
	return "blocks"
}

package models

// ResidentRating holds the achievement/infraction counters and the bounded
// overall score of one resident.
type ResidentRating struct {
	ID               int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	ResidentID       int64   `json:"resident_id" gorm:"not null;uniqueIndex"`
	AchievementScore float64 `json:"achievement_score" gorm:"not null"`
	InfractionScore  float64 `json:"infraction_score" gorm:"not null"`
	OverallScore     float64 `json:"overall_score" gorm:"not null"`

	// Associations
	Resident *Resident `json:"-" gorm:"foreignKey:ResidentID"`
}

func (ResidentRating) TableName() string {
	return "residents_ratings"
}

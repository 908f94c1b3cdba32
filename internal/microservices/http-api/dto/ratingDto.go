package dto

// CreateRatingDTO creates a rating for a resident that has none yet
type CreateRatingDTO struct {
	ResidentID       int64   `json:"resident_id" binding:"required,min=1"`
	AchievementScore float64 `json:"achievement_score" binding:"min=0"`
	InfractionScore  float64 `json:"infraction_score" binding:"min=0"`
}

package service

import "dormhub/internal/microservices/http-api/models"

// Overall score bounds. A new resident starts in the middle.
const (
	MinOverallScore     = 1.0
	MaxOverallScore     = 5.0
	InitialOverallScore = 3.0
)

var achievementIncrements = map[string]float64{
	"small":  0.1,
	"medium": 0.5,
	"large":  1.0,
}

var infractionAmounts = map[string]float64{
	"minor":    0.1,
	"moderate": 0.5,
	"major":    1.0,
}

// AchievementIncrement looks up the amount for an achievement change type
func AchievementIncrement(changeType string) (float64, bool) {
	v, ok := achievementIncrements[changeType]
	return v, ok
}

// InfractionAmount looks up the amount for an infraction change type
func InfractionAmount(changeType string) (float64, bool) {
	v, ok := infractionAmounts[changeType]
	return v, ok
}

// ClampOverall bounds an overall score to [MinOverallScore, MaxOverallScore]
func ClampOverall(v float64) float64 {
	return min(max(v, MinOverallScore), MaxOverallScore)
}

// ApplyAchievement raises the achievement counter and the overall score.
// The achievement counter itself has no upper bound.
func ApplyAchievement(r *models.ResidentRating, inc float64) {
	r.AchievementScore += inc
	r.OverallScore = ClampOverall(r.OverallScore + inc)
}

// ApplyInfraction records an infraction: the infraction counter goes up
// (never below zero) and the overall score goes down.
func ApplyInfraction(r *models.ResidentRating, amount float64) {
	r.InfractionScore = max(0, r.InfractionScore+amount)
	r.OverallScore = ClampOverall(r.OverallScore - amount)
}

// NewInitialRating is the rating every newly registered resident gets
func NewInitialRating(residentID int64) *models.ResidentRating {
	return &models.ResidentRating{
		ResidentID:       residentID,
		AchievementScore: 0,
		InfractionScore:  0,
		OverallScore:     InitialOverallScore,
	}
}

// InitialOverall derives the overall score of an explicitly created rating
func InitialOverall(achievement, infraction float64) float64 {
	return ClampOverall(achievement - infraction)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

type RatingService interface {
	ListRatings(ctx context.Context) ([]models.ResidentRating, error)
	GetRatingByResident(ctx context.Context, residentID int64) (*models.ResidentRating, error)
	CreateRating(ctx context.Context, residentID int64, achievement, infraction float64) (*models.ResidentRating, error)
	IncreaseAchievement(ctx context.Context, ratingID int64, changeType string) (*models.ResidentRating, error)
	DecreaseInfraction(ctx context.Context, ratingID int64, changeType string) (*models.ResidentRating, error)
	DeleteRating(ctx context.Context, ratingID int64) error
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	log        *slog.Logger
	notifier   RatingNotifier
}

// NewRatingService builds the rating engine. notifier may be nil.
func NewRatingService(ratingRepo repository.RatingRepository, log *slog.Logger, notifier RatingNotifier) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		log:        log,
		notifier:   orNoop(notifier),
	}
}

func (s *ratingService) ListRatings(ctx context.Context) ([]models.ResidentRating, error) {
	return s.ratingRepo.List(ctx)
}

func (s *ratingService) GetRatingByResident(ctx context.Context, residentID int64) (*models.ResidentRating, error) {
	rating, err := s.ratingRepo.GetByResident(ctx, residentID)
	if err != nil {
		return nil, translate(err, "rating")
	}
	return rating, nil
}

// CreateRating stores an explicit rating for a resident that has none yet
func (s *ratingService) CreateRating(ctx context.Context, residentID int64, achievement, infraction float64) (*models.ResidentRating, error) {
	if achievement < 0 || infraction < 0 {
		return nil, invalidInput("scores must not be negative")
	}

	// One rating per resident
	if _, err := s.ratingRepo.GetByResident(ctx, residentID); err == nil {
		return nil, fmt.Errorf("%w: resident %d already has a rating", ErrConflict, residentID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rating := &models.ResidentRating{
		ResidentID:       residentID,
		AchievementScore: achievement,
		InfractionScore:  infraction,
		OverallScore:     InitialOverall(achievement, infraction),
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: resident %d already has a rating", ErrConflict, residentID)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "rating created",
		"rating_id", rating.ID,
		"resident_id", residentID,
		"overall", rating.OverallScore,
	)
	publishRating(s.notifier, RatingCreated, "", *rating)
	return rating, nil
}

// IncreaseAchievement applies an achievement of the given size
func (s *ratingService) IncreaseAchievement(ctx context.Context, ratingID int64, changeType string) (*models.ResidentRating, error) {
	inc, ok := AchievementIncrement(changeType)
	if !ok {
		return nil, invalidInput("invalid change type specified")
	}
	return s.adjust(ctx, ratingID, changeType, func(r *models.ResidentRating) {
		ApplyAchievement(r, inc)
	})
}

// DecreaseInfraction records an infraction of the given severity
func (s *ratingService) DecreaseInfraction(ctx context.Context, ratingID int64, changeType string) (*models.ResidentRating, error) {
	amount, ok := InfractionAmount(changeType)
	if !ok {
		return nil, invalidInput("invalid change type specified")
	}
	return s.adjust(ctx, ratingID, changeType, func(r *models.ResidentRating) {
		ApplyInfraction(r, amount)
	})
}

func (s *ratingService) adjust(ctx context.Context, ratingID int64, changeType string, apply func(*models.ResidentRating)) (*models.ResidentRating, error) {
	rating, err := s.ratingRepo.Adjust(ctx, ratingID, apply)
	if err != nil {
		return nil, translate(err, "rating")
	}

	s.log.InfoContext(ctx, "rating adjusted",
		"rating_id", rating.ID,
		"change_type", changeType,
		"achievement", rating.AchievementScore,
		"infraction", rating.InfractionScore,
		"overall", rating.OverallScore,
	)
	publishRating(s.notifier, RatingAdjusted, changeType, *rating)
	return rating, nil
}

// DeleteRating removes a rating by its own id. The deletion event carries the
// rating as it was last stored.
func (s *ratingService) DeleteRating(ctx context.Context, ratingID int64) error {
	rating, err := s.ratingRepo.GetByID(ctx, ratingID)
	if err != nil {
		return translate(err, "rating")
	}
	if err := s.ratingRepo.Delete(ctx, ratingID); err != nil {
		return translate(err, "rating")
	}

	s.log.InfoContext(ctx, "rating deleted",
		"rating_id", ratingID,
		"resident_id", rating.ResidentID,
	)
	publishRating(s.notifier, RatingDeleted, "", *rating)
	return nil
}

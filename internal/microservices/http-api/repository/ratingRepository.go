package repository

import (
	"context"
	"errors"

	"dormhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.ResidentRating) error
	Delete(ctx context.Context, ratingID int64) error
	GetByID(ctx context.Context, ratingID int64) (*models.ResidentRating, error)
	GetByResident(ctx context.Context, residentID int64) (*models.ResidentRating, error)
	List(ctx context.Context) ([]models.ResidentRating, error)
	Adjust(ctx context.Context, ratingID int64, apply func(rating *models.ResidentRating)) (*models.ResidentRating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating
func (r *ratingRepository) Create(ctx context.Context, rating *models.ResidentRating) error {
	err := r.db.WithContext(ctx).Create(rating).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// Delete a rating by its own id
func (r *ratingRepository) Delete(ctx context.Context, ratingID int64) error {
	return deleteByID[models.ResidentRating](ctx, r.db, ratingID)
}

func (r *ratingRepository) GetByID(ctx context.Context, ratingID int64) (*models.ResidentRating, error) {
	return getByID[models.ResidentRating](ctx, r.db, ratingID)
}

// GetByResident retrieves the rating owned by a resident
func (r *ratingRepository) GetByResident(ctx context.Context, residentID int64) (*models.ResidentRating, error) {
	var rating models.ResidentRating
	if err := r.db.WithContext(ctx).Where("resident_id = ?", residentID).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) List(ctx context.Context) ([]models.ResidentRating, error) {
	var ratings []models.ResidentRating
	if err := r.db.WithContext(ctx).Order("id").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// Adjust runs a read-modify-write on one rating inside a transaction.
// The row is read with SELECT ... FOR UPDATE so concurrent adjustments of the
// same rating serialize; SQLite ignores the lock and serializes writers itself.
func (r *ratingRepository) Adjust(ctx context.Context, ratingID int64, apply func(rating *models.ResidentRating)) (*models.ResidentRating, error) {
	var rating models.ResidentRating
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRating(tx, ratingID, &rating).Error; err != nil {
			return err
		}

		apply(&rating)

		return tx.Model(&rating).
			Select("achievement_score", "infraction_score", "overall_score").
			Updates(&rating).Error
	})
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// lockRating reads one rating with SELECT ... FOR UPDATE
func lockRating(tx *gorm.DB, ratingID int64, rating *models.ResidentRating) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(rating, ratingID)
}

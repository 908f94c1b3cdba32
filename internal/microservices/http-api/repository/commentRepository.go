package repository

import (
	"context"

	"dormhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID int64) error
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	List(ctx context.Context) ([]models.Comment, error)
	ListByRoom(ctx context.Context, roomID int64) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// Update an existing comment
func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// Delete a comment by id; authorship is checked by the caller
func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	return deleteByID[models.Comment](ctx, r.db, commentID)
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	return getByID[models.Comment](ctx, r.db, commentID)
}

func (r *commentRepository) List(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ListByRoom retrieves all comments left on a room
func (r *commentRepository) ListByRoom(ctx context.Context, roomID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

package service

import (
	"context"

	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/microservices/http-api/repository"
)

type CommentService interface {
	ListComments(ctx context.Context) ([]models.Comment, error)
	ListRoomComments(ctx context.Context, roomID int64) ([]models.Comment, error)
	GetComment(ctx context.Context, commentID int64) (*models.Comment, error)
	CreateComment(ctx context.Context, userID, roomID int64, text string) (*models.Comment, error)
	UpdateComment(ctx context.Context, userID, commentID int64, text *string) (*models.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) ListComments(ctx context.Context) ([]models.Comment, error) {
	return s.commentRepo.List(ctx)
}

func (s *commentService) ListRoomComments(ctx context.Context, roomID int64) ([]models.Comment, error) {
	return s.commentRepo.ListByRoom(ctx, roomID)
}

func (s *commentService) GetComment(ctx context.Context, commentID int64) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, translate(err, "comment")
	}
	return comment, nil
}

// CreateComment creates a comment authored by the caller
func (s *commentService) CreateComment(ctx context.Context, userID, roomID int64, text string) (*models.Comment, error) {
	comment := &models.Comment{
		RoomID: roomID,
		UserID: userID,
		Text:   text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment changes the text of the caller's own comment.
// A nil text leaves the comment as it is.
func (s *commentService) UpdateComment(ctx context.Context, userID, commentID int64, text *string) (*models.Comment, error) {
	comment, err := s.authored(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}
	if text == nil {
		return comment, nil
	}

	comment.Text = *text
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes the caller's own comment
func (s *commentService) DeleteComment(ctx context.Context, userID, commentID int64) error {
	if _, err := s.authored(ctx, userID, commentID); err != nil {
		return err
	}
	return translate(s.commentRepo.Delete(ctx, commentID), "comment")
}

func (s *commentService) authored(ctx context.Context, userID, commentID int64) (*models.Comment, error) {
	comment, err := s.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, ErrForbidden
	}
	return comment, nil
}

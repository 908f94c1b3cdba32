package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentService mocks the CommentService interface
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListComments(ctx context.Context) ([]models.Comment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentService) ListRoomComments(ctx context.Context, roomID int64) ([]models.Comment, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentService) GetComment(ctx context.Context, commentID int64) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) CreateComment(ctx context.Context, userID, roomID int64, text string) (*models.Comment, error) {
	args := m.Called(ctx, userID, roomID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, userID, commentID int64, text *string) (*models.Comment, error) {
	args := m.Called(ctx, userID, commentID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, userID, commentID int64) error {
	return m.Called(ctx, userID, commentID).Error(0)
}

func commentRouter(svc service.CommentService, userID int64) *gin.Engine {
	router := setupRouter()
	NewCommentHandler(svc).RegisterRoutes(router.Group("/comments", asUser(userID)))
	return router
}

func TestCommentHandler_Create(t *testing.T) {
	svc := new(MockCommentService)
	svc.On("CreateComment", mock.Anything, int64(7), int64(3), "Heating is broken").
		Return(&models.Comment{ID: 1, UserID: 7, RoomID: 3, Text: "Heating is broken"}, nil)
	router := commentRouter(svc, 7)

	w := doJSON(router, http.MethodPost, "/comments/", `{"room_id":3,"text":"Heating is broken"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestCommentHandler_CreateFailureIsGeneric(t *testing.T) {
	svc := new(MockCommentService)
	svc.On("CreateComment", mock.Anything, int64(7), int64(3), "hello").
		Return(nil, errors.New("FOREIGN KEY constraint failed"))
	router := commentRouter(svc, 7)

	w := doJSON(router, http.MethodPost, "/comments/", `{"room_id":3,"text":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to create comment", decode(t, w).Error)
}

func TestCommentHandler_CreateValidation(t *testing.T) {
	svc := new(MockCommentService)
	router := commentRouter(svc, 7)

	w := doJSON(router, http.MethodPost, "/comments/", `{"room_id":3,"text":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentHandler_UpdateNotAuthor(t *testing.T) {
	svc := new(MockCommentService)
	svc.On("UpdateComment", mock.Anything, int64(8), int64(5), mock.AnythingOfType("*string")).
		Return(nil, service.ErrForbidden)
	router := commentRouter(svc, 8)

	w := doJSON(router, http.MethodPatch, "/comments/5", `{"text":"mine now"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCommentHandler_Delete(t *testing.T) {
	svc := new(MockCommentService)
	svc.On("DeleteComment", mock.Anything, int64(7), int64(5)).Return(nil)
	svc.On("DeleteComment", mock.Anything, int64(7), int64(6)).Return(fmt.Errorf("comment %w", service.ErrNotFound))
	svc.On("DeleteComment", mock.Anything, int64(7), int64(8)).Return(service.ErrForbidden)
	router := commentRouter(svc, 7)

	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodDelete, "/comments/5", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodDelete, "/comments/6", nil).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(router, http.MethodDelete, "/comments/8", nil).Code)
}

func TestCommentHandler_Unauthenticated(t *testing.T) {
	svc := new(MockCommentService)
	router := setupRouter()
	NewCommentHandler(svc).RegisterRoutes(router.Group("/comments"))

	w := doJSON(router, http.MethodPost, "/comments/", `{"room_id":3,"text":"hi"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCommentHandler_ListByRoom(t *testing.T) {
	svc := new(MockCommentService)
	svc.On("ListRoomComments", mock.Anything, int64(3)).Return([]models.Comment{{ID: 1}}, nil)
	router := commentRouter(svc, 7)

	w := doJSON(router, http.MethodGet, "/comments/room/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

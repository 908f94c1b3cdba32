package handler

import (
	"net/http"

	"dormhub/internal/microservices/http-api/dto"
	"dormhub/internal/microservices/http-api/middleware"
	"dormhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes registers comment routes (mounted at /comments)
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", h.List)
	router.GET("/room/:id", h.ListByRoom)
	router.GET("/:id", h.GetByID)

	// Write routes, author is the authenticated caller
	router.POST("/", h.Create)
	router.PATCH("/:id", h.Update)   // author only
	router.DELETE("/:id", h.Delete) // author only
}

func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.commentService.ListComments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, comments, "")
}

// ListByRoom retrieves the comments left on a room
// GET /comments/room/:room_id
func (h *CommentHandler) ListByRoom(c *gin.Context) {
	roomID, ok := parseID(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListRoomComments(c.Request.Context(), roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, comments, "")
}

// GetByID retrieves a comment by ID
// GET /comments/:id
func (h *CommentHandler) GetByID(c *gin.Context) {
	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), commentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, comment, "")
}

// Create creates a new comment authored by the caller
// POST /comments/
func (h *CommentHandler) Create(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateCommentDTO
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), userID, req.RoomID, req.Text)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}
	respondSuccess(c, http.StatusCreated, comment, "Comment created")
}

// Update updates the caller's own comment
// PATCH /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.UpdateCommentDTO
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), userID, commentID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, comment, "Comment updated")
}

// Delete deletes the caller's own comment
// DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil, "Comment deleted")
}

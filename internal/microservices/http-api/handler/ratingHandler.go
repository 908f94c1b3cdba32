package handler

import (
	"net/http"

	"dormhub/internal/microservices/http-api/dto"
	"dormhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers rating routes (mounted at /management/ratings)
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/ratings")
	{
		ratings.GET("/", h.List)
		ratings.GET("/:id", h.GetByResident) // id is the resident id here
		ratings.POST("/", h.Create)
		ratings.PATCH("/:id/increase_achievement/:change_type", h.IncreaseAchievement)
		ratings.PATCH("/:id/decrease_infraction/:change_type", h.DecreaseInfraction)
		ratings.DELETE("/:id", h.Delete)
	}
}

// List returns every rating
// GET /management/ratings/ratings/
func (h *RatingHandler) List(c *gin.Context) {
	ratings, err := h.ratingService.ListRatings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, ratings, "")
}

// GetByResident returns the rating of one resident
// GET /management/ratings/ratings/:resident_id
func (h *RatingHandler) GetByResident(c *gin.Context) {
	residentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	rating, err := h.ratingService.GetRatingByResident(c.Request.Context(), residentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, rating, "")
}

// Create stores an explicit rating for a resident
// POST /management/ratings/ratings/
func (h *RatingHandler) Create(c *gin.Context) {
	var req dto.CreateRatingDTO
	if !bindJSON(c, &req) {
		return
	}

	rating, err := h.ratingService.CreateRating(c.Request.Context(), req.ResidentID, req.AchievementScore, req.InfractionScore)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, rating, "Rating created")
}

// IncreaseAchievement applies a small/medium/large achievement
// PATCH /management/ratings/ratings/:rating_id/increase_achievement/:change_type
func (h *RatingHandler) IncreaseAchievement(c *gin.Context) {
	ratingID, ok := parseID(c, "id")
	if !ok {
		return
	}

	rating, err := h.ratingService.IncreaseAchievement(c.Request.Context(), ratingID, c.Param("change_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, rating, "Achievement score increased")
}

// DecreaseInfraction records a minor/moderate/major infraction
// PATCH /management/ratings/ratings/:rating_id/decrease_infraction/:change_type
func (h *RatingHandler) DecreaseInfraction(c *gin.Context) {
	ratingID, ok := parseID(c, "id")
	if !ok {
		return
	}

	rating, err := h.ratingService.DecreaseInfraction(c.Request.Context(), ratingID, c.Param("change_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, rating, "Infraction recorded")
}

// Delete removes a rating
// DELETE /management/ratings/ratings/:rating_id
func (h *RatingHandler) Delete(c *gin.Context) {
	ratingID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.ratingService.DeleteRating(c.Request.Context(), ratingID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil, "Rating deleted")
}

package handler

import (
	"net/http"

	"dormhub/internal/microservices/http-api/dto"
	"dormhub/internal/microservices/http-api/middleware"
	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// RegisterRoutes registers booking routes (mounted at /bookings)
func (h *BookingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", h.List)
	router.GET("/room/:id", h.ListByRoom)
	router.GET("/:id", h.GetByID)
	router.POST("/", h.Create)
	router.PATCH("/:id", h.Update)
	router.DELETE("/:id", h.Delete)
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, bookings, "")
}

// ListByRoom returns the bookings of one public room
// GET /bookings/room/:room_id
func (h *BookingHandler) ListByRoom(c *gin.Context) {
	roomID, ok := parseID(c, "id")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListRoomBookings(c.Request.Context(), roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, bookings, "")
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, booking, "")
}

// Create books a public room, for the caller unless user_id is given
func (h *BookingHandler) Create(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateBookingDTO
	if !bindJSON(c, &req) {
		return
	}
	if req.UserID != nil {
		userID = *req.UserID
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), &models.RoomBooking{
		RoomID:    req.RoomID,
		UserID:    userID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, booking, "Booking created")
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookingDTO
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), id, service.BookingChanges{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, booking, "Booking updated")
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.bookingService.DeleteBooking(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil, "Booking deleted")
}

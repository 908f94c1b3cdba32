package handler

import (
	"net/http"

	"dormhub/internal/microservices/http-api/dto"
	"dormhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService service.RoomService
}

func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// RegisterRoutes registers room routes (mounted at /management/rooms)
func (h *RoomHandler) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms")
	{
		rooms.GET("/", h.List)
		rooms.GET("/:id", h.GetByID)
		rooms.POST("/", h.Create)
		rooms.PATCH("/:id", h.Update)
		rooms.DELETE("/:id", h.Delete)
	}
}

// List returns rooms with their block name and floor number
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.roomService.ListRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, rooms, "")
}

func (h *RoomHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	room, err := h.roomService.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, room, "")
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req dto.CreateRoomDTO
	if !bindJSON(c, &req) {
		return
	}

	room := req.ToModel()
	created, err := h.roomService.CreateRoom(c.Request.Context(), &room)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, created, "Room created")
}

func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoomDTO
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), id, req.ToUpdates())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, room, "Room updated")
}

func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil, "Room deleted")
}

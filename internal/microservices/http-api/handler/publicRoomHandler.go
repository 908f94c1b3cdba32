package handler

import (
	"net/http"

	"dormhub/internal/microservices/http-api/dto"
	"dormhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type PublicRoomHandler struct {
	publicRoomService service.PublicRoomService
}

func NewPublicRoomHandler(publicRoomService service.PublicRoomService) *PublicRoomHandler {
	return &PublicRoomHandler{publicRoomService: publicRoomService}
}

// RegisterRoutes registers public room routes (mounted at /management/public-rooms)
func (h *PublicRoomHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/room_types/", h.ListTypes)
	router.GET("/", h.List)
	router.GET("/:id", h.GetByID)
	router.POST("/", h.Create)
	router.PATCH("/:id", h.Update)
	router.DELETE("/:id", h.Delete)
}

func (h *PublicRoomHandler) ListTypes(c *gin.Context) {
	types, err := h.publicRoomService.ListRoomTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, types, "")
}

func (h *PublicRoomHandler) List(c *gin.Context) {
	rooms, err := h.publicRoomService.ListPublicRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, rooms, "")
}

func (h *PublicRoomHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	room, err := h.publicRoomService.GetPublicRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, room, "")
}

func (h *PublicRoomHandler) Create(c *gin.Context) {
	var req dto.CreatePublicRoomDTO
	if !bindJSON(c, &req) {
		return
	}

	room := req.ToModel()
	created, err := h.publicRoomService.CreatePublicRoom(c.Request.Context(), &room)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, created, "Public room created")
}

func (h *PublicRoomHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePublicRoomDTO
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.publicRoomService.UpdatePublicRoom(c.Request.Context(), id, req.ToUpdates())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, room, "Public room updated")
}

func (h *PublicRoomHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.publicRoomService.DeletePublicRoom(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil, "Public room deleted")
}

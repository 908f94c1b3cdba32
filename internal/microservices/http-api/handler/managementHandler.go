package handler

import (
	"net/http"
	"path/filepath"
	"strconv"

	"dormhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// ManagementHandler serves the cross-entity views of the management area
type ManagementHandler struct {
	roomService     service.RoomService
	residentService service.ResidentService
	documentService service.DocumentService
}

func NewManagementHandler(
	roomService service.RoomService,
	residentService service.ResidentService,
	documentService service.DocumentService,
) *ManagementHandler {
	return &ManagementHandler{
		roomService:     roomService,
		residentService: residentService,
		documentService: documentService,
	}
}

// RegisterRoutes registers the views (mounted at /management)
func (h *ManagementHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/summary/all/", h.Summary)
	router.GET("/available_rooms/", h.AvailableRooms)
	router.GET("/rooms/:id/residents", h.RoomResidents)
	router.GET("/residents/:id/check-in-document", h.CheckInDocument)
	router.GET("/residents/:id/relocation-document", h.RelocationDocument)
}

// Summary totals occupancy and capacity
// GET /management/summary/all/
func (h *ManagementHandler) Summary(c *gin.Context) {
	summary, err := h.roomService.OccupancySummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, summary, "")
}

// AvailableRooms lists rooms with free places
// GET /management/available_rooms/
func (h *ManagementHandler) AvailableRooms(c *gin.Context) {
	rooms, err := h.roomService.ListAvailableRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, rooms, "")
}

// RoomResidents lists the residents living in a room
// GET /management/rooms/:room_id/residents
func (h *ManagementHandler) RoomResidents(c *gin.Context) {
	roomID, ok := parseID(c, "id")
	if !ok {
		return
	}

	residents, err := h.residentService.ListRoomResidents(c.Request.Context(), roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, residents, "")
}

// CheckInDocument renders and downloads the check-in notice
// GET /management/residents/:id/check-in-document
func (h *ManagementHandler) CheckInDocument(c *gin.Context) {
	residentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	path, err := h.documentService.CheckInNotice(c.Request.Context(), residentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// RelocationDocument renders and downloads the relocation notice
// GET /management/residents/:id/relocation-document?old_room_id=N
func (h *ManagementHandler) RelocationDocument(c *gin.Context) {
	residentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	oldRoomID, err := strconv.ParseInt(c.Query("old_room_id"), 10, 64)
	if err != nil || oldRoomID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid old_room_id"})
		return
	}

	path, err := h.documentService.RelocationNotice(c.Request.Context(), residentID, oldRoomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

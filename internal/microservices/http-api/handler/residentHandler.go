package handler

import (
	"net/http"
	"time"

	"dormhub/internal/microservices/http-api/dto"
	"dormhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ResidentHandler struct {
	residentService service.ResidentService
}

func NewResidentHandler(residentService service.ResidentService) *ResidentHandler {
	return &ResidentHandler{residentService: residentService}
}

// RegisterRoutes registers resident routes (mounted at /management/residents)
func (h *ResidentHandler) RegisterRoutes(router *gin.RouterGroup) {
	residents := router.Group("/residents")
	{
		residents.GET("/", h.List)
		residents.GET("/no-room", h.ListWithoutRoom)
		residents.GET("/:id", h.GetByID)
		residents.POST("/", h.Create)
		residents.PATCH("/:id", h.Update)
		residents.DELETE("/:id", h.Delete)
	}
}

func (h *ResidentHandler) List(c *gin.Context) {
	residents, err := h.residentService.ListResidents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, residents, "")
}

// ListWithoutRoom returns residents not assigned to any room
func (h *ResidentHandler) ListWithoutRoom(c *gin.Context) {
	residents, err := h.residentService.ListResidentsWithoutRoom(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, residents, "")
}

func (h *ResidentHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resident, err := h.residentService.GetResident(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, resident, "")
}

// Create registers a resident; the default rating is created with it
func (h *ResidentHandler) Create(c *gin.Context) {
	var req dto.CreateResidentDTO
	if !bindJSON(c, &req) {
		return
	}

	resident, err := req.ToModel(time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.residentService.CreateResident(c.Request.Context(), &resident)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, created, "Resident created")
}

func (h *ResidentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateResidentDTO
	if !bindJSON(c, &req) {
		return
	}
	fields, err := req.ToUpdates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resident, err := h.residentService.UpdateResident(c.Request.Context(), id, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, resident, "Resident updated")
}

// Delete removes the resident along with its rating
func (h *ResidentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.residentService.DeleteResident(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil, "Resident deleted")
}

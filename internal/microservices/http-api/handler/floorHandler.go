package handler

import (
	"net/http"

	"dormhub/internal/microservices/http-api/dto"
	"dormhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FloorHandler struct {
	floorService service.FloorService
}

func NewFloorHandler(floorService service.FloorService) *FloorHandler {
	return &FloorHandler{floorService: floorService}
}

// RegisterRoutes registers floor routes (mounted at /management/floors)
func (h *FloorHandler) RegisterRoutes(router *gin.RouterGroup) {
	floors := router.Group("/floors")
	{
		floors.GET("/", h.List)
		floors.GET("/:id", h.GetByID)
		floors.GET("/:id/blocks/", h.ListBlocks)
		floors.POST("/", h.Create)
		floors.PATCH("/:id", h.Update)
		floors.DELETE("/:id", h.Delete)
	}
}

func (h *FloorHandler) List(c *gin.Context) {
	floors, err := h.floorService.ListFloors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, floors, "")
}

func (h *FloorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	floor, err := h.floorService.GetFloor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, floor, "")
}

// ListBlocks returns the blocks on a floor
func (h *FloorHandler) ListBlocks(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	blocks, err := h.floorService.ListFloorBlocks(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, blocks, "")
}

func (h *FloorHandler) Create(c *gin.Context) {
	var req dto.CreateFloorDTO
	if !bindJSON(c, &req) {
		return
	}

	floor := req.ToModel()
	created, err := h.floorService.CreateFloor(c.Request.Context(), &floor)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, created, "Floor created")
}

func (h *FloorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateFloorDTO
	if !bindJSON(c, &req) {
		return
	}

	floor, err := h.floorService.UpdateFloor(c.Request.Context(), id, req.ToUpdates())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, floor, "Floor updated")
}

func (h *FloorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.floorService.DeleteFloor(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil, "Floor deleted")
}

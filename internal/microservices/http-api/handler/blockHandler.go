package handler

import (
	"net/http"

	"dormhub/internal/microservices/http-api/dto"
	"dormhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type BlockHandler struct {
	blockService service.BlockService
}

func NewBlockHandler(blockService service.BlockService) *BlockHandler {
	return &BlockHandler{blockService: blockService}
}

// RegisterRoutes registers block routes (mounted at /management/blocks)
func (h *BlockHandler) RegisterRoutes(router *gin.RouterGroup) {
	blocks := router.Group("/blocks")
	{
		blocks.GET("/", h.List)
		blocks.GET("/:id", h.GetByID)
		blocks.GET("/:id/rooms/", h.ListRooms)
		blocks.POST("/", h.Create)
		blocks.PATCH("/:id", h.Update)
		blocks.DELETE("/:id", h.Delete)
	}
}

func (h *BlockHandler) List(c *gin.Context) {
	blocks, err := h.blockService.ListBlocks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, blocks, "")
}

func (h *BlockHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	block, err := h.blockService.GetBlock(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, block, "")
}

func (h *BlockHandler) ListRooms(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	rooms, err := h.blockService.ListBlockRooms(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, rooms, "")
}

func (h *BlockHandler) Create(c *gin.Context) {
	var req dto.CreateBlockDTO
	if !bindJSON(c, &req) {
		return
	}

	block := req.ToModel()
	created, err := h.blockService.CreateBlock(c.Request.Context(), &block)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, created, "Block created")
}

func (h *BlockHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBlockDTO
	if !bindJSON(c, &req) {
		return
	}

	block, err := h.blockService.UpdateBlock(c.Request.Context(), id, req.ToUpdates())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, block, "Block updated")
}

func (h *BlockHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.blockService.DeleteBlock(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil, "Block deleted")
}

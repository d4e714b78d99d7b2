package handlers

import (
	"net/http"

	"taskhub-api/internal/services"
	"taskhub-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ItemColorHandler serves the item color catalogue.
type ItemColorHandler struct {
	svc    services.ItemColorService
	logger *zap.Logger
}

// NewItemColorHandler creates a new ItemColorHandler with the given service
func NewItemColorHandler(svc services.ItemColorService, logger *zap.Logger) *ItemColorHandler {
	return &ItemColorHandler{svc: svc, logger: logger}
}

// GetItemColors godoc
// @Summary      List all item colors
// @Tags         item-colors
// @Produce      json
// @Success      200  {array}   dto.ItemColorDTO
// @Router       /item-colors [get]
func (h *ItemColorHandler) GetItemColors(c *gin.Context) {
	colors, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, colors)
}

// GetItemColorByID godoc
// @Summary      Get an item color by ID
// @Tags         item-colors
// @Produce      json
// @Param        id   path      int  true  "Item color ID"
// @Success      200  {object}  dto.ItemColorDTO
// @Failure      404  {object}  dto.CustomErrorDTO
// @Router       /item-colors/{id} [get]
func (h *ItemColorHandler) GetItemColorByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	color, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, color)
}

// CreateItemColor godoc
// @Summary      Create a new item color
// @Description  Name is trimmed and lowercased, hex code lowercased. Both must be unique.
// @Tags         item-colors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        color body      dto.ItemColorCreateDTO true  "Color to create"
// @Success      201  {object}  dto.ItemColorDTO
// @Failure      400  {object}  dto.CustomErrorDTO
// @Failure      409  {object}  dto.CustomErrorDTO
// @Router       /item-colors [post]
func (h *ItemColorHandler) CreateItemColor(c *gin.Context) {
	var req dto.ItemColorCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadJSON(c, err)
		return
	}

	color, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, color)
}

// UpdateItemColor godoc
// @Summary      Replace an item color
// @Tags         item-colors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Item color ID"
// @Param        color body      dto.ItemColorCreateDTO true  "New values"
// @Success      200  {object}  dto.ItemColorDTO
// @Failure      400  {object}  dto.CustomErrorDTO
// @Failure      404  {object}  dto.CustomErrorDTO
// @Failure      409  {object}  dto.CustomErrorDTO
// @Router       /item-colors/{id} [put]
func (h *ItemColorHandler) UpdateItemColor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ItemColorCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadJSON(c, err)
		return
	}

	color, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, color)
}

// DeleteItemColor godoc
// @Summary      Delete an item color
// @Tags         item-colors
// @Security     BearerAuth
// @Param        id   path      int  true  "Item color ID"
// @Success      204
// @Failure      404  {object}  dto.CustomErrorDTO
// @Router       /item-colors/{id} [delete]
func (h *ItemColorHandler) DeleteItemColor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

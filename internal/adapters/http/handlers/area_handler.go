package handlers

import (
	"permitdesk/internal/core/services"
	"permitdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AreaHandler handles area endpoints
type AreaHandler struct {
	areaService *services.AreaService
}

// NewAreaHandler creates a new area handler
func NewAreaHandler(areaService *services.AreaService) *AreaHandler {
	return &AreaHandler{areaService: areaService}
}

// List handles GET /areas
func (h *AreaHandler) List(c *fiber.Ctx) error {
	areas, err := h.areaService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list areas")
	}

	return response.Success(c, "Areas retrieved", areas)
}

package handlers

import (
	"permitdesk/internal/core/domain"
	"permitdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OptionsHandler serves fixed catalogs consumed by request forms
type OptionsHandler struct{}

// NewOptionsHandler creates a new options handler
func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{}
}

// Reasons handles GET /options/reasons: the administrative reason
// catalog grouped by category
func (h *OptionsHandler) Reasons(c *fiber.Ctx) error {
	return response.Success(c, "Reasons retrieved", domain.AdministrativeReasons)
}

package handlers

import (
	"errors"

	"permitdesk/internal/core/domain"
	"permitdesk/internal/core/services"
	"permitdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Login(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid credentials")
		}
		return response.InternalServerError(c, "Login failed")
	}

	return response.Success(c, "Login successful", result)
}

// RefreshRequest represents the refresh token request body
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return response.BadRequest(c, "Refresh token required")
	}

	result, err := h.authService.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTokenExpired):
			return response.Unauthorized(c, "Refresh token expired")
		case errors.Is(err, services.ErrTokenRevoked):
			return response.Unauthorized(c, "Refresh token revoked")
		case errors.Is(err, services.ErrInvalidToken):
			return response.Unauthorized(c, "Invalid refresh token")
		default:
			return response.InternalServerError(c, "Token refresh failed")
		}
	}

	return response.Success(c, "Token refreshed", result)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return response.BadRequest(c, "Refresh token required")
	}

	if err := h.authService.Logout(c.Context(), req.RefreshToken); err != nil {
		return response.InternalServerError(c, "Logout failed")
	}

	return response.Success(c, "Logged out", nil)
}

// LogoutAll handles POST /auth/logout-all
func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	workerID, _ := c.Locals("workerID").(uint)

	if err := h.authService.LogoutAll(c.Context(), workerID); err != nil {
		return response.InternalServerError(c, "Logout failed")
	}

	return response.Success(c, "All sessions revoked", nil)
}

// Profile handles GET /auth/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	workerID, _ := c.Locals("workerID").(uint)

	profile, err := h.authService.GetProfile(c.Context(), workerID)
	if err != nil {
		if errors.Is(err, domain.ErrWorkerNotFound) {
			return response.NotFound(c, "Worker not found")
		}
		return response.InternalServerError(c, "Failed to load profile")
	}

	return response.Success(c, "Profile retrieved", profile)
}

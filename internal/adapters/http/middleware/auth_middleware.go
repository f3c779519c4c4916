package middleware

import (
	"strings"

	"permitdesk/internal/config"
	"permitdesk/internal/core/domain"
	"permitdesk/internal/pkg/jwt"
	"permitdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the access token and attaches the verified
// worker identity to the request context. Every protected operation
// downstream trusts this identity without re-validating credentials.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("workerID", claims.WorkerID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)
		c.Locals("areaID", claims.AreaID)

		return c.Next()
	}
}

// RoleMiddleware is the single capability gate: it admits the request
// only when the authenticated identity holds one of the allowed roles.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly allows only the ADMIN role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// CoordinatorOrAdmin allows COORDINADOR or ADMIN roles
func CoordinatorOrAdmin() fiber.Handler {
	return RoleMiddleware(domain.RoleCoordinator, domain.RoleAdmin)
}

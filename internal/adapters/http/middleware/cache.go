package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CatalogCache returns cache middleware for fixed catalog data such as
// the reason list (1 hour cache)
func CatalogCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() == "GET" && c.Response().StatusCode() == 200 {
			c.Set("Cache-Control", "public, max-age=3600")
		}

		return err
	}
}

// PrivateCacheHeaders sets private cache headers for user-specific data
func PrivateCacheHeaders(maxAge time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() == "GET" && c.Response().StatusCode() == 200 {
			seconds := int(maxAge.Seconds())
			c.Set("Cache-Control", "private, max-age="+strconv.Itoa(seconds))
		}

		return err
	}
}

// NoCacheHeaders disables caching, used on the receipt download
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}

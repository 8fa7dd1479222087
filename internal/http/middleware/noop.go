package middleware

import "github.com/gofiber/fiber/v2"

// Noop passes the request straight through. Useful as a placeholder
// when a middleware slot is conditionally disabled.
func Noop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}

package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDLocalKey is where the request id is stashed in fiber locals.
const RequestIDLocalKey = "request_id"

// HeaderRequestID is the response header carrying the request id.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns every request a unique id, honoring one supplied by
// the client, and echoes it back in the response headers.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(HeaderRequestID, id)

		return c.Next()
	}
}

// RequestIDFromCtx returns the request id set by RequestID, or "" when
// the middleware did not run.
func RequestIDFromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDLocalKey).(string)
	return id
}

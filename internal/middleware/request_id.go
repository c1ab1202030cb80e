package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// RequestID reuses the caller's X-Request-Id or generates one, and echoes it back.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)
		c.Locals("request_id", rid)
		return c.Next()
	}
}

// GetRequestID returns the id stored by RequestID, or "".
func GetRequestID(c *fiber.Ctx) string {
	if rid, ok := c.Locals("request_id").(string); ok {
		return rid
	}
	return ""
}

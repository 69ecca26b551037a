package middleware

import (
	"quizhub/internal/util"

	"github.com/gofiber/fiber/v2"
)

// RequestIDKey is the context key under which the request id is stored.
const RequestIDKey = "request_id"

// RequestIDHeader is the response header carrying the request id.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns a ULID to every request so log lines and responses can
// be correlated. An id supplied by the caller is kept.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = util.NewULID()
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDHeader, requestID)
		return c.Next()
	}
}

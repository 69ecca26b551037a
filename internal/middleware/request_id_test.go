package middleware_test

import (
	"net/http/httptest"
	"testing"

	"quizhub/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestID())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals(middleware.RequestIDKey).(string)
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("generates an id when none is supplied", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		id := resp.Header.Get(middleware.RequestIDHeader)
		assert.Len(t, id, 26)
		assert.Equal(t, id, seen)
	})

	t.Run("keeps a caller-supplied id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "upstream-id")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "upstream-id", resp.Header.Get(middleware.RequestIDHeader))
		assert.Equal(t, "upstream-id", seen)
	})
}

package rayid_test

import (
	"net/http/httptest"
	"testing"

	"pseudo-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("ray_id").(string))
	})
	return app
}

func TestGeneratesRayID(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	rid := resp.Header.Get(rayid.HeaderName)
	assert.NotEmpty(t, rid)
}

func TestHonoursIncomingRayID(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, "upstream-trace-id")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "upstream-trace-id", resp.Header.Get(rayid.HeaderName))
}

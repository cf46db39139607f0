package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's RayID.
const HeaderName = "X-Ray-ID"

// New returns a middleware that assigns every request a unique RayID.
//
// An incoming X-Ray-ID header is honoured so upstream proxies can propagate
// their own trace IDs; otherwise a fresh UUID is generated. The ID is stored
// in c.Locals("ray_id") for logger correlation and echoed in the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}

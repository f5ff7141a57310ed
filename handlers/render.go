package handlers

import (
	"staffdesk/internal/session"

	"github.com/gofiber/fiber/v2"
)

// render wraps c.Render, attaching the pending flash message and the
// logged-in username so every template can show them.
func render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if f := session.PopFlash(c); f != nil {
		data["Flash"] = f
	}
	if username := c.Locals("username"); username != nil {
		data["Username"] = username
	}
	return c.Render(name, data)
}

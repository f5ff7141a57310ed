package session

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Flash is a one-time notice shown on the next rendered page.
type Flash struct {
	Level   string // success, danger, info
	Message string
}

// SetFlash queues a flash message for the next render.
func SetFlash(c *fiber.Ctx, level, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(level + "|" + message),
		Expires:  time.Now().Add(time.Minute),
		HTTPOnly: true,
	})
}

// PopFlash returns the pending flash message, if any, and clears it so it
// is shown only once.
func PopFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(flashCookieName)
	if raw == "" {
		return nil
	}

	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	level, message, found := strings.Cut(decoded, "|")
	if !found {
		return nil
	}
	return &Flash{Level: level, Message: message}
}

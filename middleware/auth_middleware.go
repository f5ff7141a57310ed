package middleware

import (
	"staffdesk/internal/session"

	"github.com/gofiber/fiber/v2"
)

// RequireLogin guards browser routes. Requests without a valid session
// cookie are redirected to the login page instead of getting a 401.
func RequireLogin(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		userID, username, err := session.ParseToken(token, secret)
		if err != nil {
			return c.Redirect("/login", fiber.StatusFound)
		}

		// Make the authenticated identity available to handlers.
		c.Locals("userID", userID)
		c.Locals("username", username)

		return c.Next()
	}
}

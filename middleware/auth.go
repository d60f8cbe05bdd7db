// middleware/auth.go - Session-cookie authentication
package middleware

import (
	"github.com/wallasazevedo60-ux/canta-liga/models"
	"github.com/wallasazevedo60-ux/canta-liga/services"

	"github.com/gofiber/fiber/v2"
)

const userLocalKey = "currentUser"

// SessionAuth resolves the session cookie to a user and rejects the request
// with 401 when there is no valid session. The session service is injected;
// the middleware holds no state of its own.
func SessionAuth(sessions *services.SessionService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := sessions.Resolve(c.Cookies(cookieName))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized"})
		}
		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// OptionalSessionAuth resolves the session when present but lets
// unauthenticated requests through. Used on public reads.
func OptionalSessionAuth(sessions *services.SessionService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user, err := sessions.Resolve(c.Cookies(cookieName)); err == nil {
			c.Locals(userLocalKey, user)
		}
		return c.Next()
	}
}

// RequireRole allows the request only when the authenticated user holds one
// of the given roles. Must run after SessionAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized"})
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Insufficient role"})
	}
}

// CurrentUser returns the authenticated user stored by SessionAuth, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}

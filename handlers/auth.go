// handlers/auth.go - Registration, login, logout, current identity
package handlers

import (
	"errors"
	"time"

	"github.com/wallasazevedo60-ux/canta-liga/middleware"
	"github.com/wallasazevedo60-ux/canta-liga/schema"
	"github.com/wallasazevedo60-ux/canta-liga/services"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	auth         *services.AuthService
	sessions     *services.SessionService
	cookieName   string
	secureCookie bool
	sessionTTL   time.Duration
}

func NewAuthHandler(auth *services.AuthService, sessions *services.SessionService, cookieName string, secureCookie bool, ttl time.Duration) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		sessions:     sessions,
		cookieName:   cookieName,
		secureCookie: secureCookie,
		sessionTTL:   ttl,
	}
}

// Register creates an account and immediately establishes a session for it.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req schema.InsertUser
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if len(req.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Password must be at least 6 characters"})
	}

	user, err := h.auth.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Username already taken"})
		}
		return fiber.ErrInternalServerError
	}

	if err := h.establishSession(c, user.ID); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login authenticates and establishes a session. Unknown user and wrong
// password collapse into the same generic message.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Username and password required"})
	}

	user, err := h.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	if err := h.establishSession(c, user.ID); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(user)
}

// Logout destroys the session and clears the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if id := c.Cookies(h.cookieName); id != "" {
		_ = h.sessions.Destroy(id)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: "Lax",
	})
	return c.SendStatus(fiber.StatusOK)
}

// Me returns the session's user. SessionAuth has already rejected
// unauthenticated requests with 401.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

func (h *AuthHandler) establishSession(c *fiber.Ctx, userID uint) error {
	session, err := h.sessions.Create(userID)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    session.ID,
		Expires:  time.Now().Add(h.sessionTTL),
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: "Lax",
	})
	return nil
}

package auth

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for authentication operations
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new auth handlers instance
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Login authenticates a staff member and opens a session
// POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var creds Credentials
	if err := c.BodyParser(&creds); err != nil {
		return ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	result, err := h.service.Login(c.Context(), creds)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// Logout closes the current session
// POST /api/auth/logout
func (h *Handlers) Logout(c *fiber.Ctx) error {
	token := extractBearerToken(c)
	if token == "" {
		return ErrMissingToken()
	}

	if err := h.service.Logout(c.Context(), token); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// Me returns the session attached to the request
// GET /api/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return ErrSessionNotFound()
	}

	return c.JSON(session)
}

// RegisterRoutes registers all auth routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, middleware *TokenMiddleware) {
	api := app.Group("/api/auth")

	api.Post("/login", handlers.Login)
	api.Post("/logout", handlers.Logout)

	api.Get("/me",
		middleware.Authenticate(),
		handlers.Me,
	)
}

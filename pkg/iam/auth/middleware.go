package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const sessionLocalsKey = "auth_session"

// TokenMiddleware authenticates requests with a bearer token and attaches
// the resolved session to the request locals.
type TokenMiddleware struct {
	service *AuthService
}

// NewTokenMiddleware creates the token authentication middleware.
func NewTokenMiddleware(service *AuthService) *TokenMiddleware {
	return &TokenMiddleware{service: service}
}

// Authenticate rejects requests without a valid session token.
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return ErrMissingToken()
		}

		session, err := m.service.CurrentSession(c.Context(), token)
		if err != nil {
			return err
		}

		c.Locals(sessionLocalsKey, session)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetSession returns the session attached by Authenticate, if any.
func GetSession(c *fiber.Ctx) (*Session, bool) {
	session, ok := c.Locals(sessionLocalsKey).(*Session)
	return session, ok
}

// ActorName returns the display name of the authenticated staff member,
// falling back to "Admin" when no session is attached.
func ActorName(c *fiber.Ctx) string {
	if session, ok := GetSession(c); ok && session.Name != "" {
		return session.Name
	}
	return "Admin"
}

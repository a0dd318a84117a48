package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/zero-todos/handlers"
	"github.com/jalexanderII/zero-todos/models"
	"github.com/sirupsen/logrus"
)

// TokenParser turns a bearer token into the user it was issued for.
type TokenParser interface {
	Parse(token string) (*models.User, error)
}

// RequireUser rejects requests without a valid bearer token and attaches the
// caller to the context under handlers.UserKey.
func RequireUser(tokens TokenParser, l *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return handlers.FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "missing bearer token", nil)
		}

		user, err := tokens.Parse(token)
		if err != nil {
			l.WithError(err).Warn("[Auth] rejected bearer token")
			return handlers.FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "invalid bearer token", nil)
		}

		c.Locals(handlers.UserKey, user)
		return c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

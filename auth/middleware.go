package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Middleware extracts the bearer token from the Authorization header and, if
// it verifies, attaches the caller identity to the request context. It never
// rejects a request: a missing header, a malformed scheme or a failing token
// all leave the request anonymous, and resolvers decide whether that is
// acceptable for the operation.
func Middleware(tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				if id, ok := tokens.Verify(parts[1]); ok {
					c.SetUserContext(WithIdentity(c.UserContext(), id))
				}
			}
		}
		return c.Next()
	}
}

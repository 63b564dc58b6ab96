package middleware

import (
	"employee-admin/internal/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequireSession returns a middleware that gates employee-management
// routes behind a valid session cookie. Requests without one are
// redirected to the login page before any store operation runs.
func RequireSession(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logger := GetRequestLogger(c)

		tokenString := c.Cookies(session.CookieName)
		if tokenString == "" {
			logger.Debug("No session cookie present, redirecting to login", zap.String("path", c.Path()))
			return c.Redirect("/login")
		}

		claims, err := session.Parse(tokenString, secret)
		if err != nil {
			logger.Warn("Rejecting invalid session cookie", zap.String("path", c.Path()), zap.Error(err))
			return c.Redirect("/login")
		}

		// Identity travels with the request from here on.
		c.Locals(SessionKey, claims)
		logger.Debug("Session validated", zap.Int64("userID", claims.UserID))

		return c.Next()
	}
}

// CurrentUser retrieves the authenticated session claims from
// fiber.Ctx.Locals. Returns nil outside guarded routes.
func CurrentUser(c *fiber.Ctx) *session.Claims {
	if claims, ok := c.Locals(SessionKey).(*session.Claims); ok {
		return claims
	}
	return nil
}

package middleware

import (
	"strings"

	"psle-tutor-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionProtected verifies the student session token. The token is accepted
// from the session_token cookie or an Authorization bearer header, and the
// verified payload is stored in Locals under "session".
func SessionProtected(ctx *AppContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies("session_token")
		if tokenStr == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				tokenStr = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Session token required",
			})
		}

		payload, err := ctx.PasetoMaker.VerifyToken(tokenStr)
		if err != nil {
			config.Logger.Debug("Invalid session token encountered", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Session expired or invalid. Please start a new session.",
			})
		}

		c.Locals("session", payload)
		return c.Next()
	}
}

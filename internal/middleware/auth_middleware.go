package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"web3jobs/internal/config"
	"web3jobs/internal/model"
	"web3jobs/internal/token"
)

const viewerKey = "viewer"

// ResolveViewer turns a Bearer token into a model.Viewer in c.Locals. An
// absent or invalid token degrades to the anonymous viewer; routes that
// need authentication enforce it with RequireAuth.
func ResolveViewer() fiber.Handler {
	authCfg := config.LoadAuthConfig()
	return func(c *fiber.Ctx) error {
		c.Locals(viewerKey, model.Anonymous)

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		tokenStr := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = strings.TrimSpace(parts[1])
		}
		viewer, err := token.Parse(tokenStr, authCfg.JWTSecret, authCfg.Issuer)
		if err != nil {
			return c.Next()
		}
		c.Locals(viewerKey, viewer)
		return c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !Viewer(c).Authenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "sign in required",
			})
		}
		return c.Next()
	}
}

// Viewer reads the resolved viewer for the request.
func Viewer(c *fiber.Ctx) model.Viewer {
	if v, ok := c.Locals(viewerKey).(model.Viewer); ok {
		return v
	}
	return model.Anonymous
}

// Package webapi provides the HTTP API. Handlers live in sub-packages:
// - auth: session endpoint
// - user: registration and profile
// - statement: deposits, withdrawals, balance and statement lookup
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/ledger/pkg/app"
	authweb "github.com/amirasaad/ledger/webapi/auth"
	"github.com/amirasaad/ledger/webapi/common"
	stmtweb "github.com/amirasaad/ledger/webapi/statement"
	userweb "github.com/amirasaad/ledger/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupApp builds the fiber app with middleware and all routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Request failed", err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	fiberApp.Use(recover.New())
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		Storage:    a.Deps.LimiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Behind a proxy the first X-Forwarded-For hop is the client.
			if forwardedFor := c.Get(fiber.HeaderXForwardedFor); forwardedFor != "" {
				if first, _, found := strings.Cut(forwardedFor, ","); found {
					return strings.TrimSpace(first)
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	if a.Config.Env != "test" {
		fiberApp.Use(logger.New())
	}

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Ledger API is running!")
	})

	v1 := fiberApp.Group("/api/v1")
	userweb.Routes(v1, a.UserService, a.AuthService, a.Config)
	authweb.Routes(v1, a.AuthService)
	stmtweb.Routes(v1, a.StatementService, a.AuthService, a.Config)
	return fiberApp
}

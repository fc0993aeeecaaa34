// Package webapi provides HTTP handlers and API endpoints for the deferral
// calculator. It is organized into sub-packages for different domains:
// - deferral: Trade assessment endpoints
// - currency: Currency listing and normalization endpoints
package webapi

import (
	"errors"
	"strings"
	"time"

	_ "github.com/amirasaad/transparency/cmd/server/swagger"
	"github.com/amirasaad/transparency/pkg/app"
	"github.com/amirasaad/transparency/webapi/common"
	currencyweb "github.com/amirasaad/transparency/webapi/currency"
	deferralweb "github.com/amirasaad/transparency/webapi/deferral"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	maxRequests, window := 100, time.Minute
	if app.Config != nil && app.Config.RateLimit != nil {
		maxRequests, window = app.Config.RateLimit.MaxRequests, app.Config.RateLimit.Window
	}

	fiberApp := fiber.New(fiber.Config{
		AppName: "ICMA deferral calculator",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	// Configure rate limiting middleware
	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				// Take the first IP in the chain
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
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
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("Deferral calculator API is running! 🚀")
		},
	)

	deferralweb.Routes(fiberApp, app.DeferralService)
	currencyweb.Routes(fiberApp, app.CurrencyService)
	return fiberApp
}

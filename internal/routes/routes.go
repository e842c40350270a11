package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rosterhq/roster-backend/internal/config"
	"github.com/rosterhq/roster-backend/internal/handlers"
	"github.com/rosterhq/roster-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	attributeHandler *handlers.AttributeHandler,
	userHandler *handlers.UserHandler,
	logHandler *handlers.LogHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Auth — public, stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Everything below is the admin console surface
	admin := api.Group("", middleware.AdminRequired(cfg))

	admin.Post("/auth/logout", authHandler.Logout)

	admin.Get("/attributes", attributeHandler.List)
	admin.Post("/attributes", attributeHandler.Create)
	admin.Put("/attributes/:id", attributeHandler.Update)
	admin.Delete("/attributes/:id", attributeHandler.Delete)

	admin.Get("/users", userHandler.List)
	admin.Post("/users", userHandler.Create)
	// The target user id travels in the payload (first attribute element),
	// so update has no path parameter.
	admin.Put("/users", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)
	admin.Get("/users/:id/values", userHandler.GetValues)

	admin.Get("/stats", userHandler.Stats)
	admin.Get("/logs", logHandler.List)
}

package routes

import (
	"time"

	"github.com/aldawsari/legalfirm-backend/internal/config"
	"github.com/aldawsari/legalfirm-backend/internal/handlers"
	"github.com/aldawsari/legalfirm-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	statsHandler *handlers.StatsHandler,
	webhookHandler *handlers.WebhookHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Dashboard overview for signed-in staff
	api.Get("/stats", middleware.JWTProtected(cfg), statsHandler.Overview)

	// User provisioning: JWT only here — the service checks the caller's
	// admin role itself so the rejection order matches the call contract.
	api.Post("/admin/users", middleware.JWTProtected(cfg), userHandler.Create)

	// Operational admin endpoints
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Post("/stats/refresh", statsHandler.Refresh)
	admin.Get("/stats/status", statsHandler.Status)

	// Storage notifications — token auth, no JWT
	webhooks := api.Group("/webhooks")
	webhooks.Post("/storage/files", webhookHandler.HandleFileUploaded)
	webhooks.Post("/storage/documents", webhookHandler.HandleDocumentUploaded)
}

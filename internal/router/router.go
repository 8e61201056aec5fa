package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/maracujarp/rulebook-api/internal/config"
	"github.com/maracujarp/rulebook-api/internal/handler"
	"github.com/maracujarp/rulebook-api/internal/middleware"
	"github.com/maracujarp/rulebook-api/internal/models"
	"github.com/maracujarp/rulebook-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	RulebookHandler *handler.RulebookHandler
	AuthHandler     *handler.AuthHandler
	SectionHandler  *handler.AdminSectionHandler
	RuleHandler     *handler.AdminRuleHandler
	ActivityHandler *handler.AdminActivityHandler
	StatsHandler    *handler.AdminStatsHandler
	BackupHandler   *handler.AdminBackupHandler
	JWTMiddleware   fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.RulebookHandler != nil {
		deps.RulebookHandler.Register(api.Group("/rulebook"))
	}

	if deps.AuthHandler != nil {
		auth := api.Group("/auth", middleware.RateLimit("login", cfg.LoginRateMax, time.Minute))
		deps.AuthHandler.RegisterPublic(auth)
	}

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	admin := app.Group("/api/admin", jwtMiddleware,
		middleware.RequireRole(models.RoleModerator, models.RoleAdmin, models.RoleSuperAdmin))

	if deps.SectionHandler != nil {
		deps.SectionHandler.Register(admin.Group("/sections"))
	}
	if deps.RuleHandler != nil {
		deps.RuleHandler.Register(admin.Group("/rules"))
	}
	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(admin.Group("/activity"))
	}
	if deps.StatsHandler != nil {
		deps.StatsHandler.Register(admin.Group("/stats"))
	}
	if deps.BackupHandler != nil {
		deps.BackupHandler.Register(admin.Group("/backup"))
	}
	if deps.AuthHandler != nil {
		deps.AuthHandler.RegisterAdmin(admin)
	}
}

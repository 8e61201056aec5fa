package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/maracujarp/rulebook-api/internal/config"
	"github.com/maracujarp/rulebook-api/internal/utils"
)

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	DemoMode    bool      `json:"demoMode"`
}

// HealthCheck reports liveness plus whether the service runs against a real
// store or the placeholder dataset.
func HealthCheck(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "service healthy", HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			DemoMode:    cfg.DemoMode(),
		})
	}
}

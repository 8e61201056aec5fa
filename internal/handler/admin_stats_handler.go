package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/maracujarp/rulebook-api/internal/service"
	"github.com/maracujarp/rulebook-api/internal/utils"
)

// AdminStatsHandler serves the dashboard counters.
type AdminStatsHandler struct {
	service service.StatsService
	logger  zerolog.Logger
}

// NewAdminStatsHandler constructs the handler.
func NewAdminStatsHandler(service service.StatsService, logger zerolog.Logger) *AdminStatsHandler {
	return &AdminStatsHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_stats_handler").Logger(),
	}
}

// Register wires the stats route.
func (h *AdminStatsHandler) Register(router fiber.Router) {
	router.Get("", h.stats)
}

func (h *AdminStatsHandler) stats(c *fiber.Ctx) error {
	result, err := h.service.Stats(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to compute stats")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute stats")
	}

	return utils.SendSuccess(c, "stats retrieved", result)
}

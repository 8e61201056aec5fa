package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/maracujarp/rulebook-api/internal/service"
	"github.com/maracujarp/rulebook-api/internal/utils"
)

// RulebookHandler serves the public read surface: the full section tree and
// its search projection.
type RulebookHandler struct {
	service service.RulebookService
	logger  zerolog.Logger
}

// NewRulebookHandler constructs the handler.
func NewRulebookHandler(service service.RulebookService, logger zerolog.Logger) *RulebookHandler {
	return &RulebookHandler{
		service: service,
		logger:  logger.With().Str("component", "rulebook_handler").Logger(),
	}
}

// Register wires the public rulebook routes.
func (h *RulebookHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/search", h.search)
}

func (h *RulebookHandler) list(c *fiber.Ctx) error {
	result, err := h.service.Sections(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load rulebook")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load rulebook")
	}

	if result.CacheHit {
		c.Set("X-Cache-Hit", "true")
	} else {
		c.Set("X-Cache-Hit", "false")
	}

	return utils.SendSuccess(c, "rulebook retrieved", result)
}

func (h *RulebookHandler) search(c *fiber.Ctx) error {
	query := c.Query("q")

	result, err := h.service.Search(c.Context(), query)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Str("query", query).Msg("rulebook search failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "search failed")
	}

	return utils.SendSuccess(c, "search completed", result)
}

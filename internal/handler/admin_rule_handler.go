package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/maracujarp/rulebook-api/internal/dto"
	"github.com/maracujarp/rulebook-api/internal/service"
	"github.com/maracujarp/rulebook-api/internal/utils"
)

// AdminRuleHandler exposes rule-scoped admin flows: update, delete and
// ownership transfer between sections.
type AdminRuleHandler struct {
	service service.RuleService
	logger  zerolog.Logger
}

// NewAdminRuleHandler constructs the handler.
func NewAdminRuleHandler(service service.RuleService, logger zerolog.Logger) *AdminRuleHandler {
	return &AdminRuleHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_rule_handler").Logger(),
	}
}

// Register wires the rule management routes.
func (h *AdminRuleHandler) Register(router fiber.Router) {
	router.Put("/:id/move", h.move)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *AdminRuleHandler) update(c *fiber.Ctx) error {
	var req dto.UpdateRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Update(c.Context(), actorIDFromContext(c), c.Params("id"), req)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Str("rule_id", c.Params("id")).Msg("failed to update rule")
		return sendServiceError(c, err, "failed to update rule")
	}

	return utils.SendSuccess(c, "rule updated", result)
}

func (h *AdminRuleHandler) delete(c *fiber.Ctx) error {
	result, err := h.service.Delete(c.Context(), actorIDFromContext(c), c.Params("id"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Str("rule_id", c.Params("id")).Msg("failed to delete rule")
		return sendServiceError(c, err, "failed to delete rule")
	}

	return utils.SendSuccess(c, "rule deleted", result)
}

func (h *AdminRuleHandler) move(c *fiber.Ctx) error {
	var req dto.MoveRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Move(c.Context(), actorIDFromContext(c), c.Params("id"), req)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Str("rule_id", c.Params("id")).Msg("failed to move rule")
		return sendServiceError(c, err, "failed to move rule")
	}

	return utils.SendSuccess(c, "rule moved", result)
}

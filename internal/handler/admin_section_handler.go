package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/maracujarp/rulebook-api/internal/dto"
	"github.com/maracujarp/rulebook-api/internal/service"
	"github.com/maracujarp/rulebook-api/internal/utils"
)

// AdminSectionHandler exposes the section CRUD and reorder flows of the
// admin console.
type AdminSectionHandler struct {
	sections service.SectionService
	rules    service.RuleService
	logger   zerolog.Logger
}

// NewAdminSectionHandler constructs the handler.
func NewAdminSectionHandler(sections service.SectionService, rules service.RuleService, logger zerolog.Logger) *AdminSectionHandler {
	return &AdminSectionHandler{
		sections: sections,
		rules:    rules,
		logger:   logger.With().Str("component", "admin_section_handler").Logger(),
	}
}

// Register wires the section management routes. Rule creation and rule
// reordering are section-scoped, so they live here too.
func (h *AdminSectionHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Put("/order", h.reorder)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
	router.Post("/:id/rules", h.createRule)
	router.Put("/:id/rules/order", h.reorderRules)
}

func (h *AdminSectionHandler) create(c *fiber.Ctx) error {
	var req dto.CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.sections.Create(c.Context(), actorIDFromContext(c), req)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create section")
		return sendServiceError(c, err, "failed to create section")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "section created", result)
}

func (h *AdminSectionHandler) update(c *fiber.Ctx) error {
	var req dto.UpdateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.sections.Update(c.Context(), actorIDFromContext(c), c.Params("id"), req)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Str("section_id", c.Params("id")).Msg("failed to update section")
		return sendServiceError(c, err, "failed to update section")
	}

	return utils.SendSuccess(c, "section updated", result)
}

func (h *AdminSectionHandler) delete(c *fiber.Ctx) error {
	result, err := h.sections.Delete(c.Context(), actorIDFromContext(c), c.Params("id"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Str("section_id", c.Params("id")).Msg("failed to delete section")
		return sendServiceError(c, err, "failed to delete section")
	}

	return utils.SendSuccess(c, "section deleted", result)
}

func (h *AdminSectionHandler) reorder(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.sections.Reorder(c.Context(), actorIDFromContext(c), req)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to reorder sections")
		return sendServiceError(c, err, "failed to reorder sections")
	}

	return utils.SendSuccess(c, "sections reordered", result)
}

func (h *AdminSectionHandler) createRule(c *fiber.Ctx) error {
	var req dto.CreateRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.rules.Create(c.Context(), actorIDFromContext(c), c.Params("id"), req)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Str("section_id", c.Params("id")).Msg("failed to create rule")
		return sendServiceError(c, err, "failed to create rule")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "rule created", result)
}

func (h *AdminSectionHandler) reorderRules(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.rules.Reorder(c.Context(), actorIDFromContext(c), c.Params("id"), req)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Str("section_id", c.Params("id")).Msg("failed to reorder rules")
		return sendServiceError(c, err, "failed to reorder rules")
	}

	return utils.SendSuccess(c, "rules reordered", result)
}

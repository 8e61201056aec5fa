package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/maracujarp/rulebook-api/internal/service"
	"github.com/maracujarp/rulebook-api/internal/utils"
)

// AdminBackupHandler exports and restores the full section tree.
type AdminBackupHandler struct {
	service service.BackupService
	logger  zerolog.Logger
}

// NewAdminBackupHandler constructs the handler.
func NewAdminBackupHandler(service service.BackupService, logger zerolog.Logger) *AdminBackupHandler {
	return &AdminBackupHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_backup_handler").Logger(),
	}
}

// Register wires the backup routes.
func (h *AdminBackupHandler) Register(router fiber.Router) {
	router.Get("/export", h.export)
	router.Post("/import", h.imp)
}

func (h *AdminBackupHandler) export(c *fiber.Ctx) error {
	result, err := h.service.Export(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to export backup")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to export backup")
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="rulebook-backup.json"`)
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AdminBackupHandler) imp(c *fiber.Ctx) error {
	payload := c.Body()
	if len(payload) == 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "empty request body")
	}

	result, err := h.service.Import(c.Context(), actorIDFromContext(c), payload)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to import backup")
		return sendServiceError(c, err, "failed to import backup")
	}

	return utils.SendSuccess(c, "backup imported", result)
}

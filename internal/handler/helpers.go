package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/maracujarp/rulebook-api/internal/middleware"
	"github.com/maracujarp/rulebook-api/internal/service"
	"github.com/maracujarp/rulebook-api/internal/utils"
)

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

func actorIDFromContext(c *fiber.Ctx) string {
	if v := c.Locals("user_id"); v != nil {
		if id, ok := v.(string); ok {
			return strings.TrimSpace(id)
		}
	}
	return ""
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// sendServiceError maps service failures onto the response envelope. Nothing
// a service returns ever escapes as an uncaught error.
func sendServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, "validation failed: "+err.Error())
	case errors.Is(err, service.ErrStoreNotConfigured):
		return utils.SendError(c, fiber.StatusServiceUnavailable, "backing store not configured")
	case errors.Is(err, service.ErrNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, service.ErrSectionNotEmpty):
		return utils.SendError(c, fiber.StatusConflict, "section still contains rules")
	case errors.Is(err, service.ErrInvalidIcon):
		return utils.SendError(c, fiber.StatusBadRequest, "unknown section icon")
	case errors.Is(err, service.ErrInvalidCredentials):
		return utils.SendError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrInvalidBackup):
		return utils.SendError(c, fiber.StatusBadRequest, "invalid backup document")
	default:
		return utils.SendError(c, fiber.StatusInternalServerError, fallback)
	}
}

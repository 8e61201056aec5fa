package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/maracujarp/rulebook-api/internal/dto"
	"github.com/maracujarp/rulebook-api/internal/service"
	"github.com/maracujarp/rulebook-api/internal/utils"
)

// AuthHandler handles the admin login and account-management endpoints.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// RegisterPublic wires the unauthenticated login route.
func (h *AuthHandler) RegisterPublic(router fiber.Router) {
	router.Post("/login", h.login)
}

// RegisterAdmin wires the authenticated account-management routes.
func (h *AuthHandler) RegisterAdmin(router fiber.Router) {
	router.Post("/account/password", h.changePassword)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Login(req)
	if err != nil {
		requestLogger(h.logger, c).Warn().Err(err).Str("username", req.Username).Msg("login rejected")
		return sendServiceError(c, err, "login failed")
	}

	return utils.SendSuccess(c, "login successful", result)
}

func (h *AuthHandler) changePassword(c *fiber.Ctx) error {
	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.ChangePassword(req); err != nil {
		return sendServiceError(c, err, "password change failed")
	}

	return utils.SendSuccess(c, "password updated", nil)
}

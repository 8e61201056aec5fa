package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/maracujarp/rulebook-api/internal/dto"
	"github.com/maracujarp/rulebook-api/internal/models"
)

// AuthService checks the configured admin credential pair and issues bearer
// tokens for the admin surface. There is no credential store; the single
// configured pair is a deliberate placeholder carried over from the
// original.
type AuthService interface {
	Login(req dto.LoginRequest) (dto.LoginResponse, error)
	ChangePassword(req dto.PasswordChangeRequest) error
}

type authService struct {
	username  string
	password  string
	secret    []byte
	tokenTTL  time.Duration
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAuthService constructs the credential-check service.
func NewAuthService(username, password, jwtSecret string, validate *validator.Validate, logger zerolog.Logger) AuthService {
	return &authService{
		username:  username,
		password:  password,
		secret:    []byte(jwtSecret),
		tokenTTL:  12 * time.Hour,
		validator: validate,
		logger:    logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *authService) Login(req dto.LoginRequest) (dto.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.LoginResponse{}, err
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	admin := models.AdminUser{
		ID:        "1",
		Username:  s.username,
		Role:      models.RoleSuperAdmin,
		LastLogin: time.Now().UTC(),
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      admin.ID,
		"username": admin.Username,
		"role":     admin.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return dto.LoginResponse{Token: signed, Admin: admin}, nil
}

// ChangePassword validates the account password-change form. The confirm
// field must match and the new password must be at least eight characters.
// With no credential store behind the configured pair there is nothing to
// persist into; a valid request is acknowledged, as in the original.
func (s *authService) ChangePassword(req dto.PasswordChangeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(req.CurrentPassword), []byte(s.password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sirisha-padi/EagleBank/internal/apperrors"
	portsrepo "github.com/sirisha-padi/EagleBank/internal/core/ports/repositories"
	portssvc "github.com/sirisha-padi/EagleBank/internal/core/ports/services"
	"github.com/sirisha-padi/EagleBank/internal/utils"
)

// ErrInvalidCredentials covers both unknown emails and wrong passwords so the
// login response never discloses which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthConfig carries the token issuance parameters.
type AuthConfig struct {
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
}

// authService verifies credentials and issues bearer tokens.
type authService struct {
	BaseService
	userRepo portsrepo.UserReader
	cfg      AuthConfig
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo portsrepo.UserReader, cfg AuthConfig) portssvc.AuthSvc {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Ensure authService implements the AuthSvc interface
var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, email string, password string) (string, string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return "", "", err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return "", "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.String("user_id", user.UserID))
		return "", "", apperrors.NewAppError(500, "failed to sign token", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return token, user.UserID, nil
}

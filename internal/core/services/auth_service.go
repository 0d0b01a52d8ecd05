package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/platform/config"
	"github.com/SscSPs/personal_finance_app/internal/utils"
)

// authService checks the single configured credential pair and issues JWTs.
// Only the bcrypt hash of the password is kept after construction.
type authService struct {
	BaseService
	username     string
	passwordHash string
	jwtSecret    string
	jwtExpiry    time.Duration
	jwtIssuer    string
}

// NewAuthService creates the login gate from the application config.
func NewAuthService(cfg *config.Config) (portssvc.AuthSvc, error) {
	hash, err := utils.HashPassword(cfg.AuthPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash login password: %w", err)
	}
	return &authService{
		username:     cfg.AuthUsername,
		passwordHash: hash,
		jwtSecret:    cfg.JWTSecret,
		jwtExpiry:    cfg.JWTExpiryDuration,
		jwtIssuer:    cfg.JWTIssuer,
	}, nil
}

// Ensure authService implements the AuthSvc interface
var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	// bcrypt runs whether or not the username matched.
	passwordOK := utils.CheckPasswordHash(password, s.passwordHash)
	if !usernameOK || !passwordOK {
		s.LogWarn(ctx, apperrors.ErrUnauthorized, "Login rejected", slog.String("username", username))
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	token, expiresAt, err := utils.GenerateJWT(s.username, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token")
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.LogInfo(ctx, "Login succeeded", slog.String("username", username))
	return token, expiresAt, nil
}

package services

import (
	"context"
	"time"
)

// AuthSvc defines the login gate.
type AuthSvc interface {
	// Login checks the credential pair and returns a signed session token
	// with its expiry. Rejected credentials yield apperrors.ErrUnauthorized.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

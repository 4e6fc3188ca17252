package ports

import (
	"context"
	"time"

	"github.com/wiz002-ucsd/lumaa-spring-2025-swe/internal/core/domain"
)

// AuthService defines the credential and session-token use cases.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and mints a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
	// Logout revokes the token identified by tokenID until expiresAt.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

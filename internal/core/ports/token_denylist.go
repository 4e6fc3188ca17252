package ports

import (
	"context"
	"time"
)

// TokenDenylist tracks revoked session tokens by their jti claim. Entries
// expire together with the token itself, so the set stays small.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestDenylist(t *testing.T) (*TokenDenylist, *miniredis.Miniredis) {
	t.Helper()

	m, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(m.Close)

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() {
		if cerr := client.Close(); cerr != nil {
			t.Logf("redis close: %v", cerr)
		}
	})

	return NewTokenDenylist(client), m
}

func TestTokenDenylist_RevokeAndCheck(t *testing.T) {
	d, _ := newTestDenylist(t)
	ctx := context.Background()

	revoked, err := d.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if revoked {
		t.Fatalf("token revoked before Revoke was called")
	}

	if err := d.Revoke(ctx, "jti-1", time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	revoked, err = d.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !revoked {
		t.Fatalf("expected token to be revoked")
	}

	// other token ids are unaffected
	revoked, err = d.IsRevoked(ctx, "jti-2")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if revoked {
		t.Fatalf("unrelated token reported revoked")
	}
}

func TestTokenDenylist_EntryExpires(t *testing.T) {
	d, m := newTestDenylist(t)
	ctx := context.Background()

	if err := d.Revoke(ctx, "jti-3", time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	m.FastForward(2 * time.Minute)

	revoked, err := d.IsRevoked(ctx, "jti-3")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if revoked {
		t.Fatalf("denylist entry should expire with the token")
	}
}

func TestTokenDenylist_NonPositiveTTL(t *testing.T) {
	d, _ := newTestDenylist(t)
	ctx := context.Background()

	if err := d.Revoke(ctx, "jti-4", 0); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	revoked, err := d.IsRevoked(ctx, "jti-4")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if revoked {
		t.Fatalf("expired token must not create a denylist entry")
	}
}

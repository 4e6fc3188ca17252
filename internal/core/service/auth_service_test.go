package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wiz002-ucsd/lumaa-spring-2025-swe/internal/core/domain"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.users[user.Username] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

type stubDenylist struct {
	revoked map[string]time.Duration
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]time.Duration)}
}

func (d *stubDenylist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	d.revoked[tokenID] = ttl
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := d.revoked[tokenID]
	return ok, nil
}

func newAuthService(repo *stubAuthRepo, denylist *stubDenylist) *AuthService {
	return NewAuthService(repo, denylist, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo, newStubDenylist())

	user, err := svc.Register(context.Background(), "alice", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubAuthRepo(), newStubDenylist())

	if _, err := svc.Register(context.Background(), "", "pass"); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", ""); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo, newStubDenylist())

	first, err := svc.Register(context.Background(), "bob", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// first registration must persist unchanged
	stored := repo.users["bob"]
	if stored.ID != first.ID {
		t.Fatalf("first user was replaced: %s != %s", stored.ID, first.ID)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass")) != nil {
		t.Fatalf("first user's password hash changed")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo, newStubDenylist())

	user, err := svc.Register(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Subject != user.ID {
		t.Fatalf("expected sub %s, got %s", user.ID, claims.Subject)
	}
	if claims.ID == "" {
		t.Fatalf("expected jti claim")
	}
	if claims.ExpiresAt == nil {
		t.Fatalf("expected exp claim")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 59*time.Minute || ttl > time.Hour {
		t.Fatalf("unexpected token ttl: %v", ttl)
	}
}

func TestAuthService_Login_FailureParity(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo, newStubDenylist())

	if _, err := svc.Register(context.Background(), "dave", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "dave", "badpass")
	_, noUser := svc.Login(context.Background(), "ghost", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if noUser != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", noUser)
	}
	// a caller probing usernames must see the same message in both cases
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPass, noUser)
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc := newAuthService(newStubAuthRepo(), newStubDenylist())

	if _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "dave", ""); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	denylist := newStubDenylist()
	svc := newAuthService(newStubAuthRepo(), denylist)

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(30*time.Minute)); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := denylist.revoked["jti-1"]; !ok {
		t.Fatalf("expected token to be revoked")
	}
	if ttl := denylist.revoked["jti-1"]; ttl > 30*time.Minute || ttl <= 0 {
		t.Fatalf("unexpected denylist ttl: %v", ttl)
	}
}

func TestAuthService_Logout_ExpiredToken(t *testing.T) {
	denylist := newStubDenylist()
	svc := newAuthService(newStubAuthRepo(), denylist)

	if err := svc.Logout(context.Background(), "jti-2", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(denylist.revoked) != 0 {
		t.Fatalf("expired token should not be added to the denylist")
	}
}

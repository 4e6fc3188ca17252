package domain

import "errors"

// Sentinel errors shared across services, repositories, and handlers.
// Handlers map these to deterministic HTTP status codes.
var (
	// ErrMissingCredentials covers empty username or password on register/login.
	ErrMissingCredentials = errors.New("username and password required")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so the response cannot be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists signals a duplicate username on registration.
	ErrUserExists = errors.New("username already exists")

	// ErrUserNotFound is a repository-level error. The auth service translates
	// it to ErrInvalidCredentials before it reaches a client.
	ErrUserNotFound = errors.New("user not found")

	// ErrTitleRequired covers an empty or missing title on task create/update.
	ErrTitleRequired = errors.New("title is required")

	// ErrTaskNotFound covers both a non-existent task id and a task owned by
	// another user. Lookups are ownership-scoped, so the two cases are
	// indistinguishable on purpose.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTokenInvalid covers a missing, malformed, forged, expired, or revoked
	// bearer token.
	ErrTokenInvalid = errors.New("invalid or expired token")
)

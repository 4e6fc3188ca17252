// Package client is a Go consumer of the task tracker API. It plays the role
// of the browser SPA: it holds the session token in local persistent storage,
// decides the login state from the token's presence, and discards the token
// when the server rejects it.
package client

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Session is the explicit session context: the bearer token persisted across
// invocations, with read/write/clear operations. Presence of a token is what
// callers use to pick the authenticated view; validity is only discovered on
// the next API call.
type Session struct {
	path string
}

// NewSession returns a Session stored at path.
func NewSession(path string) *Session {
	return &Session{path: path}
}

// DefaultSessionPath places the session file under the user config directory.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tasktracker", "session"), nil
}

// Token returns the stored token, or "" when no session exists.
func (s *Session) Token() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Save persists the token, creating the parent directory when needed.
func (s *Session) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the stored token. Clearing a non-existent session is a no-op.
func (s *Session) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

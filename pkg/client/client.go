package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrSessionExpired signals that the server rejected the stored token. The
// session has already been cleared; the caller must log in again.
var ErrSessionExpired = errors.New("session expired, please log in again")

// APIError carries an error message returned by the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// User is the public view of an account returned by Register.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Task mirrors the task representation returned by the API.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsComplete  bool      `json:"is_complete"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Client drives the task tracker API on behalf of one session.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// New returns a Client for the API at baseURL using the given session store.
func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		session: session,
	}
}

// LoggedIn reports whether a token is stored. It says nothing about the
// token's validity; an expired token surfaces as ErrSessionExpired on use.
func (c *Client) LoggedIn() bool {
	token, err := c.session.Token()
	return err == nil && token != ""
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, username, password string) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"username": username,
		"password": password,
	}, false, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and stores the returned token in the session.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, false, &resp)
	if err != nil {
		return err
	}
	return c.session.Save(resp.Token)
}

// Logout revokes the token server-side, then discards it locally. The local
// session is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, true, nil)
	if cerr := c.session.Clear(); cerr != nil {
		return cerr
	}
	if errors.Is(err, ErrSessionExpired) {
		return nil
	}
	return err
}

// Tasks returns all tasks owned by the logged-in user.
func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, true, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task and returns the server's representation.
func (c *Client) CreateTask(ctx context.Context, title, description string) (*Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPost, "/tasks", map[string]string{
		"title":       title,
		"description": description,
	}, true, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask overwrites the mutable fields of a task.
func (c *Client) UpdateTask(ctx context.Context, id, title, description string, isComplete bool) (*Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPut, "/tasks/"+id, map[string]any{
		"title":       title,
		"description": description,
		"is_complete": isComplete,
	}, true, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, true, nil)
}

// do performs one API call. On a 401 from an authenticated call the stored
// token is discarded so the caller falls back to the login view.
func (c *Client) do(ctx context.Context, method, path string, body any, auth bool, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		token, err := c.session.Token()
		if err != nil {
			return err
		}
		if token == "" {
			return ErrSessionExpired
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && auth {
		_ = c.session.Clear()
		return ErrSessionExpired
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

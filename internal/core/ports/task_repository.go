package ports

import (
	"context"

	"github.com/wiz002-ucsd/lumaa-spring-2025-swe/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Every read and
// write that takes a userID is ownership-scoped: rows belonging to another
// user behave as if they do not exist.
type TaskRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// Update overwrites title, description, and is_complete of the task with
	// the given id owned by task.UserID. Returns domain.ErrTaskNotFound when
	// no such row exists.
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// Delete removes the task with the given id owned by userID. Returns
	// domain.ErrTaskNotFound when no such row exists.
	Delete(ctx context.Context, id, userID string) error
}

package ports

import (
	"context"

	"github.com/wiz002-ucsd/lumaa-spring-2025-swe/internal/core/domain"
)

// CreateTaskInput carries the data needed to create a task.
type CreateTaskInput struct {
	Title       string
	Description string
}

// UpdateTaskInput carries the full set of mutable task fields. Updates are
// whole-record overwrites, not patches.
type UpdateTaskInput struct {
	Title       string
	Description string
	IsComplete  bool
}

// TaskService defines the task use cases. Every operation requires the
// verified identity of the caller and only ever touches that caller's tasks.
type TaskService interface {
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	Create(ctx context.Context, userID string, input CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, userID, taskID string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wiz002-ucsd/lumaa-spring-2025-swe/internal/core/domain"
	"github.com/wiz002-ucsd/lumaa-spring-2025-swe/internal/core/ports"
)

// TaskService implements ownership-scoped CRUD over tasks. The userID passed
// to every method is the verified identity extracted from the bearer token;
// the service never widens a query beyond it.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list tasks")
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, userID string, input ports.CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrTitleRequired
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		IsComplete:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("user_id", userID).Msg("task created")
	return created, nil
}

// Update overwrites all three mutable fields of the task. The title must be
// non-empty, same as on create.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrTitleRequired
	}

	task := &domain.Task{
		ID:          taskID,
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		IsComplete:  input.IsComplete,
		UpdatedAt:   time.Now().UTC(),
	}

	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		if !errors.Is(err, domain.ErrTaskNotFound) {
			s.logger.Error().Err(err).Str("task_id", taskID).Str("user_id", userID).Msg("failed to update task")
		}
		return nil, err
	}

	s.logger.Info().Str("task_id", taskID).Str("user_id", userID).Msg("task updated")
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if err := s.repo.Delete(ctx, taskID, userID); err != nil {
		if !errors.Is(err, domain.ErrTaskNotFound) {
			s.logger.Error().Err(err).Str("task_id", taskID).Str("user_id", userID).Msg("failed to delete task")
		}
		return err
	}

	s.logger.Info().Str("task_id", taskID).Str("user_id", userID).Msg("task deleted")
	return nil
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tidytask/tidytask-api/internal/domain"
	"github.com/tidytask/tidytask-api/internal/store"
)

// TaskInput carries the validated fields for creating or overwriting a
// task. Handlers populate it from a validated request body; the service
// never sees unvalidated data.
type TaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Deadline    *time.Time
}

// TaskService provides per-user task CRUD. Every operation is scoped by
// the owning user's ID; a task owned by another user is indistinguishable
// from a task that does not exist.
type TaskService interface {
	// Create inserts a task bound to the given user.
	Create(ctx context.Context, input TaskInput, userID uuid.UUID) (*domain.Task, error)

	// ListAll returns all tasks owned by the user.
	ListAll(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// GetTask returns the task with the given ID if owned by the user.
	// Returns store.ErrTaskNotFound otherwise.
	GetTask(ctx context.Context, taskID, userID uuid.UUID) (*domain.Task, error)

	// UpdateTask overwrites all mutable fields of the task with the input.
	// There are no partial-merge semantics: omitted optional fields clear
	// the stored values. Returns store.ErrTaskNotFound if the task is
	// absent or owned by another user.
	UpdateTask(ctx context.Context, taskID uuid.UUID, input TaskInput, userID uuid.UUID) (*domain.Task, error)

	// DeleteTask removes the task if owned by the user.
	// Returns store.ErrTaskNotFound otherwise.
	DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, log *slog.Logger) *TaskServiceImpl {
	return &TaskServiceImpl{
		taskStore: taskStore,
		logger:    log.With("component", "task_service"),
	}
}

// Create implements TaskService.Create.
func (s *TaskServiceImpl) Create(ctx context.Context, input TaskInput, userID uuid.UUID) (*domain.Task, error) {
	task, err := domain.NewTask(userID, input.Title, input.Description, input.Status, input.Deadline)
	if err != nil {
		s.logger.Debug("rejected invalid task data",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task",
			"error", err,
			"user_id", userID)
		return nil, internalErr("create task", err)
	}

	return task, nil
}

// ListAll implements TaskService.ListAll.
func (s *TaskServiceImpl) ListAll(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	tasks, err := s.taskStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list tasks",
			"error", err,
			"user_id", userID)
		return nil, internalErr("list tasks", err)
	}

	return tasks, nil
}

// GetTask implements TaskService.GetTask.
func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID, userID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskStore.GetForUser(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, err
		}
		s.logger.Error("failed to retrieve task",
			"error", err,
			"task_id", taskID)
		return nil, internalErr("get task", err)
	}

	return task, nil
}

// UpdateTask implements TaskService.UpdateTask.
// The existence+ownership check and the overwrite run against the same
// scoped WHERE clause, so the ownership filter cannot be bypassed between
// the two steps.
func (s *TaskServiceImpl) UpdateTask(
	ctx context.Context,
	taskID uuid.UUID,
	input TaskInput,
	userID uuid.UUID,
) (*domain.Task, error) {
	task, err := s.taskStore.GetForUser(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, err
		}
		s.logger.Error("failed to retrieve task for update",
			"error", err,
			"task_id", taskID)
		return nil, internalErr("update task", err)
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusPending
	}

	// Full-field overwrite: omitted description/deadline clear the stored
	// values rather than being preserved.
	task.Title = input.Title
	task.Description = input.Description
	task.Status = status
	task.Deadline = input.Deadline

	if err := s.taskStore.UpdateForUser(ctx, task); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update task",
			"error", err,
			"task_id", taskID)
		return nil, internalErr("update task", err)
	}

	return task, nil
}

// DeleteTask implements TaskService.DeleteTask.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	err := s.taskStore.DeleteForUser(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return err
		}
		s.logger.Error("failed to delete task",
			"error", err,
			"task_id", taskID)
		return internalErr("delete task", err)
	}

	return nil
}

package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/tidytask/tidytask-api/internal/domain"
)

// TaskSummary holds the aggregate counts for a user's tasks. Both counts
// come from a single consistent read so Pending (total minus completed)
// can never be negative.
type TaskSummary struct {
	Total     int
	Completed int
}

// TaskStore defines the interface for task data persistence.
// Every read and mutation is scoped by the owning user's ID: a task owned
// by another user behaves exactly like a task that does not exist.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// ListByUser returns all tasks owned by the given user.
	// Returns an empty slice, not nil, when the user owns no tasks.
	// Ordering follows the store default (creation time, newest first).
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// GetForUser retrieves a task by ID, filtered by owning user.
	// Returns ErrTaskNotFound if no task with that ID is owned by that user.
	GetForUser(ctx context.Context, taskID, userID uuid.UUID) (*domain.Task, error)

	// UpdateForUser overwrites the mutable fields (title, description,
	// status, deadline) of a task owned by the given user.
	// Returns ErrTaskNotFound if no task with that ID is owned by that user.
	UpdateForUser(ctx context.Context, task *domain.Task) error

	// DeleteForUser removes a task owned by the given user.
	// Returns ErrTaskNotFound if no task with that ID is owned by that user.
	DeleteForUser(ctx context.Context, taskID, userID uuid.UUID) error

	// CountSummary returns the total and completed task counts for a user
	// from a single consistent read.
	CountSummary(ctx context.Context, userID uuid.UUID) (TaskSummary, error)

	// CountByStatus returns per-status task counts for a user
	// (grouped count; statuses with no tasks are absent from the map).
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.TaskStatus]int, error)

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) TaskStore
}

package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/tidytask/tidytask-api/internal/domain"
	"github.com/tidytask/tidytask-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, task *domain.Task) error
	ListByUserFn    func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	GetForUserFn    func(ctx context.Context, taskID, userID uuid.UUID) (*domain.Task, error)
	UpdateForUserFn func(ctx context.Context, task *domain.Task) error
	DeleteForUserFn func(ctx context.Context, taskID, userID uuid.UUID) error
	CountSummaryFn  func(ctx context.Context, userID uuid.UUID) (store.TaskSummary, error)
	CountByStatusFn func(ctx context.Context, userID uuid.UUID) (map[domain.TaskStatus]int, error)

	// Data for default implementation, keyed by task ID
	Tasks       map[uuid.UUID]*domain.Task
	CreateError error
	ListError   error
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Tasks[task.ID] = task
	return nil
}

// ListByUser implements the TaskStore interface. The default implementation
// sorts newest first to match the real store's ordering.
func (m *MockTaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	tasks := make([]*domain.Task, 0)
	for _, task := range m.Tasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	return tasks, nil
}

// GetForUser implements the TaskStore interface
func (m *MockTaskStore) GetForUser(ctx context.Context, taskID, userID uuid.UUID) (*domain.Task, error) {
	if m.GetForUserFn != nil {
		return m.GetForUserFn(ctx, taskID, userID)
	}

	task, exists := m.Tasks[taskID]
	if !exists || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}

	return task, nil
}

// UpdateForUser implements the TaskStore interface
func (m *MockTaskStore) UpdateForUser(ctx context.Context, task *domain.Task) error {
	if m.UpdateForUserFn != nil {
		return m.UpdateForUserFn(ctx, task)
	}

	existing, exists := m.Tasks[task.ID]
	if !exists || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}

	m.Tasks[task.ID] = task
	return nil
}

// DeleteForUser implements the TaskStore interface
func (m *MockTaskStore) DeleteForUser(ctx context.Context, taskID, userID uuid.UUID) error {
	if m.DeleteForUserFn != nil {
		return m.DeleteForUserFn(ctx, taskID, userID)
	}

	task, exists := m.Tasks[taskID]
	if !exists || task.UserID != userID {
		return store.ErrTaskNotFound
	}

	delete(m.Tasks, taskID)
	return nil
}

// CountSummary implements the TaskStore interface
func (m *MockTaskStore) CountSummary(ctx context.Context, userID uuid.UUID) (store.TaskSummary, error) {
	if m.CountSummaryFn != nil {
		return m.CountSummaryFn(ctx, userID)
	}

	var summary store.TaskSummary
	for _, task := range m.Tasks {
		if task.UserID != userID {
			continue
		}
		summary.Total++
		if task.Status == domain.TaskStatusCompleted {
			summary.Completed++
		}
	}

	return summary, nil
}

// CountByStatus implements the TaskStore interface
func (m *MockTaskStore) CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.TaskStatus]int, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, userID)
	}

	counts := make(map[domain.TaskStatus]int)
	for _, task := range m.Tasks {
		if task.UserID == userID {
			counts[task.Status]++
		}
	}

	return counts, nil
}

// WithTx implements the TaskStore interface for transaction support
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	// For mock purposes, just return the same mock
	return m
}

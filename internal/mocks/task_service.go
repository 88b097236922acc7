package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/tidytask/tidytask-api/internal/domain"
	"github.com/tidytask/tidytask-api/internal/service"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, input service.TaskInput, userID uuid.UUID) (*domain.Task, error)
	ListAllFn    func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	GetTaskFn    func(ctx context.Context, taskID, userID uuid.UUID) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, taskID uuid.UUID, input service.TaskInput, userID uuid.UUID) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, taskID, userID uuid.UUID) error

	// Default values used when functions aren't explicitly defined
	Task  *domain.Task
	Tasks []*domain.Task
	Err   error
}

// Create implements the service.TaskService interface
func (m *MockTaskService) Create(ctx context.Context, input service.TaskInput, userID uuid.UUID) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input, userID)
	}

	return m.Task, m.Err
}

// ListAll implements the service.TaskService interface
func (m *MockTaskService) ListAll(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx, userID)
	}

	return m.Tasks, m.Err
}

// GetTask implements the service.TaskService interface
func (m *MockTaskService) GetTask(ctx context.Context, taskID, userID uuid.UUID) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, taskID, userID)
	}

	return m.Task, m.Err
}

// UpdateTask implements the service.TaskService interface
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	taskID uuid.UUID,
	input service.TaskInput,
	userID uuid.UUID,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, taskID, input, userID)
	}

	return m.Task, m.Err
}

// DeleteTask implements the service.TaskService interface
func (m *MockTaskService) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, taskID, userID)
	}

	return m.Err
}

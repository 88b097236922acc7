package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/tidytask/tidytask-api/internal/domain"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	// Function fields for customizable behavior
	CreateUserFn  func(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByIDFn func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	DeleteUserFn  func(ctx context.Context, userID uuid.UUID) error
	FindByEmailFn func(ctx context.Context, email string) (*domain.User, error)

	// Default values used when functions aren't explicitly defined
	User *domain.User
	Err  error
}

// CreateUser implements the service.UserService interface
func (m *MockUserService) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, email, password)
	}

	return m.User, m.Err
}

// GetUserByID implements the service.UserService interface
func (m *MockUserService) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserByIDFn != nil {
		return m.GetUserByIDFn(ctx, userID)
	}

	return m.User, m.Err
}

// DeleteUser implements the service.UserService interface
func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}

	return m.Err
}

// FindByEmail implements the service.UserService interface
func (m *MockUserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(ctx, email)
	}

	return m.User, m.Err
}

package mocks

import (
	"context"

	"github.com/tidytask/tidytask-api/internal/domain"
)

// MockAuthService implements service.AuthService for testing
type MockAuthService struct {
	// Function fields for customizable behavior
	ValidateUserFn func(ctx context.Context, email, password string) (*domain.User, error)
	LoginFn        func(ctx context.Context, user *domain.User) (string, error)

	// Default values used when functions aren't explicitly defined
	User        *domain.User
	Token       string
	ValidateErr error
	LoginErr    error

	// Call tracking for verification
	ValidateUserCallCount int
	LoginCallCount        int
}

// ValidateUser implements the service.AuthService interface
func (m *MockAuthService) ValidateUser(ctx context.Context, email, password string) (*domain.User, error) {
	m.ValidateUserCallCount++

	if m.ValidateUserFn != nil {
		return m.ValidateUserFn(ctx, email, password)
	}

	return m.User, m.ValidateErr
}

// Login implements the service.AuthService interface
func (m *MockAuthService) Login(ctx context.Context, user *domain.User) (string, error) {
	m.LoginCallCount++

	if m.LoginFn != nil {
		return m.LoginFn(ctx, user)
	}

	return m.Token, m.LoginErr
}

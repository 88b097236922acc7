package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidytask/tidytask-api/internal/domain"
	"github.com/tidytask/tidytask-api/internal/mocks"
	"github.com/tidytask/tidytask-api/internal/service"
	"github.com/tidytask/tidytask-api/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	mockStore := mocks.NewMockUserStore()
	userService := service.NewUserService(mockStore, nil, testLogger())

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := userService.CreateUser(context.Background(), "not-an-email", "password123")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := userService.CreateUser(context.Background(), "user@example.com", "short")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		_, err := userService.CreateUser(context.Background(), "user@example.com", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyPassword)
	})
}

func TestUserService_GetUserByID(t *testing.T) {
	userID := uuid.New()

	t.Run("strips hash from result", func(t *testing.T) {
		mockStore := mocks.NewMockUserStore()
		mockStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{
				ID:             id,
				Email:          "user@example.com",
				HashedPassword: "$2a$10$somethingsecret",
			}, nil
		}

		userService := service.NewUserService(mockStore, nil, testLogger())

		user, err := userService.GetUserByID(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "user@example.com", user.Email)
		assert.Empty(t, user.HashedPassword)
	})

	t.Run("passes through not found", func(t *testing.T) {
		mockStore := mocks.NewMockUserStore()
		userService := service.NewUserService(mockStore, nil, testLogger())

		_, err := userService.GetUserByID(context.Background(), userID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("wraps unexpected store errors", func(t *testing.T) {
		mockStore := mocks.NewMockUserStore()
		mockStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, errors.New("connection reset")
		}

		userService := service.NewUserService(mockStore, nil, testLogger())

		_, err := userService.GetUserByID(context.Background(), userID)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrInternal)
		assert.NotErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes existing user", func(t *testing.T) {
		mockStore := mocks.NewMockUserStore()
		mockStore.Users["user@example.com"] = &domain.User{
			ID:    userID,
			Email: "user@example.com",
		}

		userService := service.NewUserService(mockStore, nil, testLogger())

		err := userService.DeleteUser(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, mockStore.Users)
	})

	t.Run("passes through not found", func(t *testing.T) {
		mockStore := mocks.NewMockUserStore()
		userService := service.NewUserService(mockStore, nil, testLogger())

		err := userService.DeleteUser(context.Background(), userID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("wraps unexpected store errors", func(t *testing.T) {
		mockStore := mocks.NewMockUserStore()
		mockStore.DeleteFn = func(ctx context.Context, id uuid.UUID) error {
			return errors.New("connection reset")
		}

		userService := service.NewUserService(mockStore, nil, testLogger())

		err := userService.DeleteUser(context.Background(), userID)
		assert.ErrorIs(t, err, service.ErrInternal)
	})
}

func TestUserService_FindByEmail(t *testing.T) {
	t.Run("returns full record including hash", func(t *testing.T) {
		mockStore := mocks.NewMockUserStore()
		mockStore.Users["user@example.com"] = &domain.User{
			ID:             uuid.New(),
			Email:          "user@example.com",
			HashedPassword: "$2a$10$somethingsecret",
		}

		userService := service.NewUserService(mockStore, nil, testLogger())

		user, err := userService.FindByEmail(context.Background(), "user@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, user.HashedPassword)
	})

	t.Run("passes through not found", func(t *testing.T) {
		mockStore := mocks.NewMockUserStore()
		userService := service.NewUserService(mockStore, nil, testLogger())

		_, err := userService.FindByEmail(context.Background(), "missing@example.com")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

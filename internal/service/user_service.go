package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tidytask/tidytask-api/internal/domain"
	"github.com/tidytask/tidytask-api/internal/store"
)

// UserService provides account registration, lookup, and deletion.
type UserService interface {
	// CreateUser registers a new account with the given email and plaintext
	// password. Returns store.ErrEmailExists if the email is taken.
	// On success only the new user's identity is meaningful to callers;
	// the returned record carries no password material.
	CreateUser(ctx context.Context, email, password string) (*domain.User, error)

	// GetUserByID retrieves a user's profile.
	// Returns store.ErrUserNotFound if the user does not exist.
	// The returned record never includes the password hash.
	GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// DeleteUser removes an account. Owned tasks are removed by the
	// store-level cascade. Returns store.ErrUserNotFound if absent.
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	// FindByEmail retrieves the full user record including the password
	// hash. It exists for the authentication path only; handlers must not
	// expose its result.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userStore store.UserStore, db *sql.DB, log *slog.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		userStore: userStore,
		db:        db,
		logger:    log.With("component", "user_service"),
	}
}

// CreateUser implements UserService.CreateUser.
// The store's UNIQUE constraint on email is the authoritative duplicate
// check; the transaction keeps the insert atomic.
func (s *UserServiceImpl) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := domain.NewUser(email, password)
	if err != nil {
		s.logger.Debug("rejected invalid registration data",
			"error", err)
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})

	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register an existing email")
			return nil, err
		}
		s.logger.Error("failed to create user",
			"error", err)
		return nil, internalErr("create user", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID)

	user.Password = ""
	user.HashedPassword = ""
	return user, nil
}

// GetUserByID implements UserService.GetUserByID.
func (s *UserServiceImpl) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, err
		}
		s.logger.Error("failed to retrieve user",
			"error", err,
			"user_id", userID)
		return nil, internalErr("get user", err)
	}

	// The hash stays inside the service layer.
	user.HashedPassword = ""
	return user, nil
}

// DeleteUser implements UserService.DeleteUser.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	err := s.userStore.Delete(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		s.logger.Error("failed to delete user",
			"error", err,
			"user_id", userID)
		return internalErr("delete user", err)
	}

	s.logger.Info("user deleted",
		"user_id", userID)
	return nil
}

// FindByEmail implements UserService.FindByEmail.
func (s *UserServiceImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, err
		}
		s.logger.Error("failed to retrieve user by email",
			"error", err)
		return nil, internalErr("find user by email", err)
	}

	return user, nil
}

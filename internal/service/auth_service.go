package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tidytask/tidytask-api/internal/domain"
	"github.com/tidytask/tidytask-api/internal/service/auth"
	"github.com/tidytask/tidytask-api/internal/store"
)

// AuthService orchestrates credential verification and token issuance.
// The two operations are independent and composable: callers validate then
// login, and a pre-trusted user may be passed to Login directly without
// re-validation.
type AuthService interface {
	// ValidateUser looks up a user by email and verifies the password
	// against the stored hash. Both an unknown email and a wrong password
	// fail with auth.ErrInvalidCredentials; nothing distinguishes the two.
	// On success the returned user carries no password material.
	ValidateUser(ctx context.Context, email, password string) (*domain.User, error)

	// Login issues a signed bearer token for the given user. It performs
	// no re-validation of the user.
	Login(ctx context.Context, user *domain.User) (string, error)
}

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	log *slog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		logger:           log.With("component", "auth_service"),
	}
}

// ValidateUser implements AuthService.ValidateUser.
func (s *AuthServiceImpl) ValidateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown email")
			return nil, auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user during login",
			"error", err)
		return nil, internalErr("validate user", err)
	}

	if err := s.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login attempt with wrong password",
			"user_id", user.ID)
		return nil, auth.ErrInvalidCredentials
	}

	// Strip password material before the record leaves the service.
	user.HashedPassword = ""
	user.Password = ""

	return user, nil
}

// Login implements AuthService.Login.
func (s *AuthServiceImpl) Login(ctx context.Context, user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		s.logger.Error("failed to generate access token",
			"error", err,
			"user_id", user.ID)
		return "", internalErr("generate access token", err)
	}

	s.logger.Info("user logged in",
		"user_id", user.ID)
	return token, nil
}

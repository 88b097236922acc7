package api

import (
	"log/slog"
	"net/http"

	"github.com/tidytask/tidytask-api/internal/api/shared"
	"github.com/tidytask/tidytask-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService service.AuthService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      log.With("component", "auth_handler"),
	}
}

// Login handles POST /auth/login.
// Credential verification and token issuance are two independent service
// calls: validate, then login with the validated user.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.ValidationViolations(err))
		return
	}

	user, err := h.authService.ValidateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	token, err := h.authService.Login(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		AccessToken: token,
	})
}

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tidytask/tidytask-api/internal/api/shared"
	"github.com/tidytask/tidytask-api/internal/domain"
	"github.com/tidytask/tidytask-api/internal/platform/logger"
	"github.com/tidytask/tidytask-api/internal/service"
	"github.com/tidytask/tidytask-api/internal/store"
)

// getUserIDFromContext extracts the authenticated user's UUID from the
// request context. The user ID is placed in the context by the
// authentication middleware; a missing ID means the guard did not run.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// requireUserID extracts the authenticated user ID or writes the uniform
// 401 envelope. Returns false when the response has already been written.
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		log := logger.FromContext(r.Context())
		log.Warn("user ID not found or invalid in request context",
			"path", r.URL.Path)
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// taskIDFromPath extracts the task ID from the URL path. A malformed id
// cannot name any task, so it is reported the same way as an absent one
// and leaks nothing about which ids exist.
func taskIDFromPath(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, store.ErrTaskNotFound
	}

	return id, nil
}

// taskInputFromRequest converts a validated TaskRequest into the service
// input type, parsing the optional RFC 3339 deadline. The deadline format
// was already checked by the validator, so a parse failure here maps to a
// validation error rather than an internal one.
func taskInputFromRequest(req TaskRequest) (service.TaskInput, error) {
	input := service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
	}
	if input.Status == "" {
		input.Status = domain.TaskStatusPending
	}

	if req.Deadline != "" {
		deadline, err := time.Parse(time.RFC3339, req.Deadline)
		if err != nil {
			return service.TaskInput{}, domain.NewValidationError("deadline", "has invalid format", domain.ErrValidation)
		}
		input.Deadline = &deadline
	}

	return input, nil
}

package api

import (
	"time"

	"github.com/tidytask/tidytask-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// MessageResponse is the generic success envelope for mutations that
// return no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse defines the profile payload. The password hash is never
// part of any response.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskRequest defines the payload for task creation and update. The same
// shape serves both routes: updates overwrite every field with exactly
// these values.
type TaskRequest struct {
	Title       string `json:"title"       validate:"required,min=1"`
	Description string `json:"description" validate:"omitempty"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending completed"`
	Deadline    string `json:"deadline"    validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// TaskEnvelope wraps a task with a result message for mutations.
type TaskEnvelope struct {
	Message string       `json:"message"`
	Task    *domain.Task `json:"task"`
}

// TaskResponse wraps a single task for reads.
type TaskResponse struct {
	Task *domain.Task `json:"task"`
}

// TaskListResponse wraps the task list.
type TaskListResponse struct {
	Tasks []*domain.Task `json:"tasks"`
}

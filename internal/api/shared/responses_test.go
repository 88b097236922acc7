package shared

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorResponse(t *testing.T) {
	t.Run("includes reason phrase for distinct message", func(t *testing.T) {
		resp := newErrorResponse(http.StatusNotFound, "Task not found")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Task not found", resp.Message)
		assert.Equal(t, "Not Found", resp.Error)
	})

	t.Run("omits reason phrase when message matches it", func(t *testing.T) {
		resp := newErrorResponse(http.StatusUnauthorized, "Unauthorized")
		assert.Equal(t, "Unauthorized", resp.Message)
		assert.Empty(t, resp.Error)
	})

	t.Run("keeps reason phrase for list messages", func(t *testing.T) {
		resp := newErrorResponse(http.StatusBadRequest, []string{"Email is required"})
		assert.Equal(t, "Bad Request", resp.Error)
	})
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rr := httptest.NewRecorder()

	RespondWithError(rr, req, http.StatusNotFound, "Task not found")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"statusCode":404,"message":"Task not found","error":"Not Found"}`,
		rr.Body.String())
}

func TestRespondWithError_OmitsDuplicateReason(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rr := httptest.NewRecorder()

	RespondWithError(rr, req, http.StatusUnauthorized, "Unauthorized")

	assert.JSONEq(t, `{"statusCode":401,"message":"Unauthorized"}`, rr.Body.String())
}

func TestRespondWithValidationError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users/register", nil)
	rr := httptest.NewRecorder()

	RespondWithValidationError(rr, req, []string{
		"Email must be a valid email address",
		"Password is too short",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t,
		`{"statusCode":400,"message":["Email must be a valid email address","Password is too short"],"error":"Bad Request"}`,
		rr.Body.String())
}

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	RespondWithJSON(rr, req, http.StatusCreated, map[string]string{"message": "created"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"message":"created"}`, rr.Body.String())
}

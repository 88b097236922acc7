package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidytask/tidytask-api/internal/api/middleware"
	"github.com/tidytask/tidytask-api/internal/api/shared"
	"github.com/tidytask/tidytask-api/internal/mocks"
	"github.com/tidytask/tidytask-api/internal/service/auth"
)

func serveWithAuth(t *testing.T, jwtService *mocks.MockJWTService, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	authMiddleware.Authenticate(next).ServeHTTP(rr, req)
	return rr, reached
}

func assertUniformUnauthorized(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusUnauthorized), body["statusCode"])
	assert.Equal(t, "Unauthorized", body["message"])

	// Message equals the reason phrase, so the error field is omitted
	_, hasError := body["error"]
	assert.False(t, hasError)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	email := "user@example.com"

	t.Run("valid token reaches handler with identity in context", func(t *testing.T) {
		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: userID, Email: email},
		}
		authMiddleware := middleware.NewAuthMiddleware(jwtService)

		var gotUserID uuid.UUID
		var gotEmail string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := middleware.GetUserID(r)
			require.True(t, ok)
			gotUserID = id
			gotEmail, _ = r.Context().Value(shared.UserEmailContextKey).(string)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer valid.jwt.token")
		rr := httptest.NewRecorder()
		authMiddleware.Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, userID, gotUserID)
		assert.Equal(t, email, gotEmail)
	})

	t.Run("missing header", func(t *testing.T) {
		rr, reached := serveWithAuth(t, &mocks.MockJWTService{}, "")
		assertUniformUnauthorized(t, rr)
		assert.False(t, reached)
	})

	t.Run("malformed header", func(t *testing.T) {
		for _, header := range []string{"token-without-scheme", "Basic dXNlcjpwYXNz", "Bearer"} {
			rr, reached := serveWithAuth(t, &mocks.MockJWTService{}, header)
			assertUniformUnauthorized(t, rr)
			assert.False(t, reached, "header %q", header)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
		rr, reached := serveWithAuth(t, jwtService, "Bearer bad.token")
		assertUniformUnauthorized(t, rr)
		assert.False(t, reached)
	})

	t.Run("expired token gets the same uniform body", func(t *testing.T) {
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}
		rr, reached := serveWithAuth(t, jwtService, "Bearer expired.token")
		assertUniformUnauthorized(t, rr)
		assert.False(t, reached)
	})
}

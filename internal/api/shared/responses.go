package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tidytask/tidytask-api/internal/redact"
)

// ErrorResponse defines the standard error envelope:
//
//	{"statusCode": 404, "message": "Task not found", "error": "Not Found"}
//
// Message is usually a string; for validation failures it is a list of
// field-violation strings. Error carries the HTTP reason phrase and is
// omitted when the message already is the reason phrase (a bare 401 reads
// {"statusCode":401,"message":"Unauthorized"}).
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    any    `json:"message"`
	Error      string `json:"error,omitempty"`
}

// newErrorResponse builds the envelope, omitting the reason phrase when it
// would duplicate the message.
func newErrorResponse(status int, message any) ErrorResponse {
	reason := http.StatusText(status)
	if s, ok := message.(string); ok && s == reason {
		reason = ""
	}
	return ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      reason,
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, newErrorResponse(status, message))
}

// RespondWithValidationError writes a 400 response whose message is the
// list of field violations.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, violations []string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending validation error response",
		"violations", len(violations),
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, http.StatusBadRequest,
		newErrorResponse(http.StatusBadRequest, violations))
}

// RespondWithErrorAndLog writes a JSON error response and also logs the
// detailed error. The client only ever sees the sanitized userMessage;
// the underlying error is redacted and logged.
//
// Log level strategy:
// - 5xx errors: logged at ERROR level
// - 4xx errors: logged at DEBUG level
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, newErrorResponse(status, userMessage))
}

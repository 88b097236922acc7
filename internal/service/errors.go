// Package service provides application-level services for authentication,
// users, tasks, and summary aggregation.
package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent conditions that callers may want to check for with
// errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Every other underlying failure is wrapped in ErrInternal before it
//    crosses the service boundary - no raw store error ever reaches the
//    HTTP layer
// 3. Callers use errors.Is to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrInternal indicates an unexpected failure that must not leak its
	// underlying cause to API clients. The wrapped error is available for
	// logging via errors.Unwrap.
	ErrInternal = errors.New("internal error")
)

// internalErr wraps an unexpected underlying error as ErrInternal while
// preserving the cause for server-side logs.
func internalErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

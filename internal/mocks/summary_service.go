package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/tidytask/tidytask-api/internal/service"
)

// MockSummaryService implements service.SummaryService for testing
type MockSummaryService struct {
	// Function fields for customizable behavior
	GetGeneralSummaryFn func(ctx context.Context, userID uuid.UUID) (service.GeneralSummary, error)
	GetProgressFn       func(ctx context.Context, userID uuid.UUID) (service.Progress, error)

	// Default values used when functions aren't explicitly defined
	Summary  service.GeneralSummary
	Progress service.Progress
	Err      error
}

// GetGeneralSummary implements the service.SummaryService interface
func (m *MockSummaryService) GetGeneralSummary(ctx context.Context, userID uuid.UUID) (service.GeneralSummary, error) {
	if m.GetGeneralSummaryFn != nil {
		return m.GetGeneralSummaryFn(ctx, userID)
	}

	return m.Summary, m.Err
}

// GetProgress implements the service.SummaryService interface
func (m *MockSummaryService) GetProgress(ctx context.Context, userID uuid.UUID) (service.Progress, error) {
	if m.GetProgressFn != nil {
		return m.GetProgressFn(ctx, userID)
	}

	return m.Progress, m.Err
}

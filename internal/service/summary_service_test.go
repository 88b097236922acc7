package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidytask/tidytask-api/internal/domain"
	"github.com/tidytask/tidytask-api/internal/mocks"
	"github.com/tidytask/tidytask-api/internal/service"
	"github.com/tidytask/tidytask-api/internal/store"
)

func TestSummaryService_GetGeneralSummary(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		total     int
		completed int
		wantRate  int
	}{
		{"no tasks", 0, 0, 0},
		{"none completed", 4, 0, 0},
		{"all completed", 4, 4, 100},
		{"half completed", 4, 2, 50},
		{"one third rounds down", 3, 1, 33},
		{"two thirds rounds up", 3, 2, 67},
		{"single completed of seven", 7, 1, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := mocks.NewMockTaskStore()
			mockStore.CountSummaryFn = func(ctx context.Context, id uuid.UUID) (store.TaskSummary, error) {
				assert.Equal(t, userID, id)
				return store.TaskSummary{Total: tt.total, Completed: tt.completed}, nil
			}

			summaryService := service.NewSummaryService(mockStore, testLogger())

			summary, err := summaryService.GetGeneralSummary(context.Background(), userID)
			require.NoError(t, err)

			assert.Equal(t, tt.total, summary.TotalTasks)
			assert.Equal(t, tt.completed, summary.CompletedTasks)
			assert.Equal(t, tt.total-tt.completed, summary.PendingTasks)
			assert.Equal(t, tt.wantRate, summary.CompletedRate)
		})
	}

	t.Run("wraps store failures", func(t *testing.T) {
		mockStore := mocks.NewMockTaskStore()
		mockStore.CountSummaryFn = func(ctx context.Context, id uuid.UUID) (store.TaskSummary, error) {
			return store.TaskSummary{}, errors.New("connection reset")
		}

		summaryService := service.NewSummaryService(mockStore, testLogger())

		_, err := summaryService.GetGeneralSummary(context.Background(), userID)
		assert.ErrorIs(t, err, service.ErrInternal)
	})
}

func TestSummaryService_GetProgress(t *testing.T) {
	userID := uuid.New()

	t.Run("buckets by status", func(t *testing.T) {
		mockStore := mocks.NewMockTaskStore()
		mockStore.CountByStatusFn = func(ctx context.Context, id uuid.UUID) (map[domain.TaskStatus]int, error) {
			return map[domain.TaskStatus]int{
				domain.TaskStatusPending:   3,
				domain.TaskStatusCompleted: 2,
			}, nil
		}

		summaryService := service.NewSummaryService(mockStore, testLogger())

		progress, err := summaryService.GetProgress(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, 2, progress.CompletedTasks)
		assert.Equal(t, 3, progress.PendingTasks)
	})

	t.Run("unknown statuses count as pending", func(t *testing.T) {
		mockStore := mocks.NewMockTaskStore()
		mockStore.CountByStatusFn = func(ctx context.Context, id uuid.UUID) (map[domain.TaskStatus]int, error) {
			return map[domain.TaskStatus]int{
				domain.TaskStatusCompleted: 1,
				domain.TaskStatus("weird"): 2,
			}, nil
		}

		summaryService := service.NewSummaryService(mockStore, testLogger())

		progress, err := summaryService.GetProgress(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, 1, progress.CompletedTasks)
		assert.Equal(t, 2, progress.PendingTasks)
	})

	t.Run("zero counts for a user with no tasks", func(t *testing.T) {
		summaryService := service.NewSummaryService(mocks.NewMockTaskStore(), testLogger())

		progress, err := summaryService.GetProgress(context.Background(), userID)
		require.NoError(t, err)
		assert.Zero(t, progress.CompletedTasks)
		assert.Zero(t, progress.PendingTasks)
	})
}

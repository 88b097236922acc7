package service

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/tidytask/tidytask-api/internal/domain"
	"github.com/tidytask/tidytask-api/internal/store"
)

// GeneralSummary holds the aggregate view of a user's tasks.
type GeneralSummary struct {
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`
	PendingTasks   int `json:"pendingTasks"`
	CompletedRate  int `json:"completedRate"`
}

// Progress holds the per-status breakdown of a user's tasks. Every status
// other than exactly "completed" counts as pending, which keeps the bucket
// sums equal to the total even if new status values appear.
type Progress struct {
	CompletedTasks int `json:"completedTasks"`
	PendingTasks   int `json:"pendingTasks"`
}

// SummaryService provides read-only aggregation over a user's tasks.
type SummaryService interface {
	// GetGeneralSummary returns total/completed/pending counts and the
	// completion rate as a rounded percentage (0 when the user has no
	// tasks). Both counts come from a single consistent read.
	GetGeneralSummary(ctx context.Context, userID uuid.UUID) (GeneralSummary, error)

	// GetProgress returns the completed/pending bucket counts from a
	// single grouped-count query.
	GetProgress(ctx context.Context, userID uuid.UUID) (Progress, error)
}

// SummaryServiceImpl implements the SummaryService interface.
type SummaryServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(taskStore store.TaskStore, log *slog.Logger) *SummaryServiceImpl {
	return &SummaryServiceImpl{
		taskStore: taskStore,
		logger:    log.With("component", "summary_service"),
	}
}

// GetGeneralSummary implements SummaryService.GetGeneralSummary.
func (s *SummaryServiceImpl) GetGeneralSummary(ctx context.Context, userID uuid.UUID) (GeneralSummary, error) {
	counts, err := s.taskStore.CountSummary(ctx, userID)
	if err != nil {
		s.logger.Error("failed to fetch task summary",
			"error", err,
			"user_id", userID)
		return GeneralSummary{}, internalErr("general summary", err)
	}

	rate := 0
	if counts.Total > 0 {
		rate = int(math.Round(float64(counts.Completed) / float64(counts.Total) * 100))
	}

	return GeneralSummary{
		TotalTasks:     counts.Total,
		CompletedTasks: counts.Completed,
		PendingTasks:   counts.Total - counts.Completed,
		CompletedRate:  rate,
	}, nil
}

// GetProgress implements SummaryService.GetProgress.
func (s *SummaryServiceImpl) GetProgress(ctx context.Context, userID uuid.UUID) (Progress, error) {
	counts, err := s.taskStore.CountByStatus(ctx, userID)
	if err != nil {
		s.logger.Error("failed to fetch task progress",
			"error", err,
			"user_id", userID)
		return Progress{}, internalErr("progress", err)
	}

	var progress Progress
	for status, count := range counts {
		if status == domain.TaskStatusCompleted {
			progress.CompletedTasks += count
		} else {
			progress.PendingTasks += count
		}
	}

	return progress, nil
}

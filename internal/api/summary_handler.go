package api

import (
	"log/slog"
	"net/http"

	"github.com/tidytask/tidytask-api/internal/api/shared"
	"github.com/tidytask/tidytask-api/internal/service"
)

// SummaryHandler serves read-only aggregate views over the authenticated
// user's tasks.
type SummaryHandler struct {
	summaryService service.SummaryService
	logger         *slog.Logger
}

// NewSummaryHandler creates a new SummaryHandler with the given dependencies.
func NewSummaryHandler(summaryService service.SummaryService, log *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         log.With("component", "summary_handler"),
	}
}

// GetGeneralSummary handles GET /summary/general.
func (h *SummaryHandler) GetGeneralSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	summary, err := h.summaryService.GetGeneralSummary(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}

// GetProgress handles GET /summary/overview.
func (h *SummaryHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	progress, err := h.summaryService.GetProgress(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, progress)
}

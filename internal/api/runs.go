package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/scholarsportal/askdata/internal/analyzer"
	"github.com/scholarsportal/askdata/internal/types"
)

// RunHandler serves the run journal.
type RunHandler struct {
	analyzer *analyzer.Analyzer
	logger   zerolog.Logger
}

func NewRunHandler(a *analyzer.Analyzer, logger zerolog.Logger) *RunHandler {
	return &RunHandler{
		analyzer: a,
		logger:   logger.With().Str("component", "run_handler").Logger(),
	}
}

// GetRuns returns the journaled runs for a date.
// GET /api/runs/{date}
func (h *RunHandler) GetRuns(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse(types.DateLayout, date); err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	runs, err := h.analyzer.Runs(r.Context(), date)
	if err != nil {
		h.logger.Error().Err(err).Str("date", date).Msg("failed to get runs")
		http.Error(w, "failed to retrieve runs", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []types.RunRecord{}
	}

	writeJSON(w, http.StatusOK, runs)
}

package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/scholarsportal/askdata/internal/analyzer"
)

// TrendHandler serves the comparative trend report.
type TrendHandler struct {
	analyzer *analyzer.Analyzer
	logger   zerolog.Logger
}

func NewTrendHandler(a *analyzer.Analyzer, logger zerolog.Logger) *TrendHandler {
	return &TrendHandler{
		analyzer: a,
		logger:   logger.With().Str("component", "trend_handler").Logger(),
	}
}

// GetTrends compares the requested window against a reference window.
// GET /api/trends?start=YYYY-MM-DD&end=YYYY-MM-DD[&ref_start=...&ref_end=...]
// When no reference is given, the same window one year earlier is used.
func (h *TrendHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	current, err := windowFromQuery(r, "start", "end")
	if err != nil {
		writeError(w, err)
		return
	}

	reference := current.PriorYear()
	if r.URL.Query().Get("ref_start") != "" || r.URL.Query().Get("ref_end") != "" {
		reference, err = windowFromQuery(r, "ref_start", "ref_end")
		if err != nil {
			writeError(w, err)
			return
		}
	}

	report, err := h.analyzer.TrendReport(r.Context(), current, reference)
	if err != nil {
		h.logger.Error().Err(err).
			Str("current", current.String()).
			Str("reference", reference.String()).
			Msg("failed to build trend report")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

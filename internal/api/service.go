package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/scholarsportal/askdata/internal/analyzer"
	"github.com/scholarsportal/askdata/internal/cache"
)

// OverviewHandler serves the service-wide overview. Without query
// parameters it answers from the refreshed snapshot; with an explicit
// window it computes a fresh overview.
type OverviewHandler struct {
	analyzer *analyzer.Analyzer
	snapshot *cache.OverviewSnapshot
	logger   zerolog.Logger
}

func NewOverviewHandler(a *analyzer.Analyzer, snapshot *cache.OverviewSnapshot, logger zerolog.Logger) *OverviewHandler {
	return &OverviewHandler{
		analyzer: a,
		snapshot: snapshot,
		logger:   logger.With().Str("component", "overview_handler").Logger(),
	}
}

// GetOverview returns the service overview.
// GET /api/overview[?start=YYYY-MM-DD&end=YYYY-MM-DD]
func (h *OverviewHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("start") == "" && q.Get("end") == "" {
		overview, updatedAt, ok := h.snapshot.Get()
		if !ok {
			http.Error(w, "overview not computed yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Last-Modified", updatedAt.UTC().Format(time.RFC1123))
		writeJSON(w, http.StatusOK, overview)
		return
	}

	window, err := windowFromQuery(r, "start", "end")
	if err != nil {
		writeError(w, err)
		return
	}

	overview, err := h.analyzer.ServiceOverview(r.Context(), window)
	if err != nil {
		h.logger.Error().Err(err).Str("window", window.String()).Msg("failed to build overview")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

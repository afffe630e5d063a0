package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/scholarsportal/askdata/internal/analyzer"
	"github.com/scholarsportal/askdata/internal/directory"
	"github.com/scholarsportal/askdata/internal/types"
)

// SchoolHandler serves per-institution reports and the directory
// listing.
type SchoolHandler struct {
	analyzer *analyzer.Analyzer
	dir      *directory.Directory
	logger   zerolog.Logger
}

func NewSchoolHandler(a *analyzer.Analyzer, dir *directory.Directory, logger zerolog.Logger) *SchoolHandler {
	return &SchoolHandler{
		analyzer: a,
		dir:      dir,
		logger:   logger.With().Str("component", "school_handler").Logger(),
	}
}

// ListSchools returns the institution directory.
// GET /api/schools
func (h *SchoolHandler) ListSchools(w http.ResponseWriter, r *http.Request) {
	schools := h.dir.Schools()
	if schools == nil {
		schools = []types.Institution{}
	}
	writeJSON(w, http.StatusOK, schools)
}

// GetReport builds the activity report for one institution.
// GET /api/schools/{school}/report?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *SchoolHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	school := chi.URLParam(r, "school")
	if school == "" {
		http.Error(w, "school is required", http.StatusBadRequest)
		return
	}

	window, err := windowFromQuery(r, "start", "end")
	if err != nil {
		writeError(w, err)
		return
	}

	report, err := h.analyzer.SchoolReport(r.Context(), school, window)
	if err != nil {
		h.logger.Error().Err(err).
			Str("school", school).
			Str("window", window.String()).
			Msg("failed to build school report")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

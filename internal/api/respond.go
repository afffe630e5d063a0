package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scholarsportal/askdata/internal/types"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the analysis error taxonomy onto HTTP statuses.
// Unrecognized errors become a generic 500 so internal details never
// leak into responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrUnknownInstitution):
		http.Error(w, "unknown institution", http.StatusNotFound)
	case errors.Is(err, types.ErrInvalidWindow), errors.Is(err, types.ErrWindowTooLong):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, types.ErrNoData):
		http.Error(w, "no records in the requested period", http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// windowFromQuery parses the start and end query parameters into a
// validated window.
func windowFromQuery(r *http.Request, startKey, endKey string) (types.TimeWindow, error) {
	start := r.URL.Query().Get(startKey)
	end := r.URL.Query().Get(endKey)
	if start == "" || end == "" {
		return types.TimeWindow{}, types.ErrInvalidWindow
	}
	return types.ParseWindow(start, end)
}

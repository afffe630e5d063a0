package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/scholarsportal/askdata/internal/auth"
	"github.com/scholarsportal/askdata/internal/storage"
)

// AdminHandler handles destructive maintenance operations on the
// persistence layer.
type AdminHandler struct {
	store  storage.Store
	logger zerolog.Logger
}

func NewAdminHandler(store storage.Store, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		store:  store,
		logger: logger.With().Str("component", "admin_handler").Logger(),
	}
}

// RequireAdmin middleware — only admin role allowed
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.GetUserFromContext(r.Context())
		if !ok || !auth.HasRole(claims, "admin") {
			w.Header().Set("Content-Type", "application/json")
			http.Error(w, `{"error":"admin role required"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ResetCache wipes the cached day records and the run journal, forcing
// every subsequent report to refetch from LibraryH3lp.
// DELETE /api/admin/cache
func (h *AdminHandler) ResetCache(w http.ResponseWriter, r *http.Request) {
	if err := h.store.TruncateAll(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("failed to truncate cache tables")
		http.Error(w, "failed to reset cache", http.StatusInternalServerError)
		return
	}

	h.logger.Info().Msg("cache tables truncated")
	writeJSON(w, http.StatusOK, map[string]string{"message": "cache reset"})
}

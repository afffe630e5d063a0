// Package refresh keeps the service overview snapshot current on a
// fixed interval so the overview endpoint never recomputes a full
// window per request.
package refresh

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/scholarsportal/askdata/internal/analyzer"
	"github.com/scholarsportal/askdata/internal/cache"
	"github.com/scholarsportal/askdata/internal/metrics"
	"github.com/scholarsportal/askdata/internal/types"
)

type Refresher struct {
	analyzer   *analyzer.Analyzer
	snapshot   *cache.OverviewSnapshot
	interval   time.Duration
	windowDays int
	logger     zerolog.Logger
}

func New(a *analyzer.Analyzer, snapshot *cache.OverviewSnapshot, interval time.Duration, windowDays int, logger zerolog.Logger) *Refresher {
	return &Refresher{
		analyzer:   a,
		snapshot:   snapshot,
		interval:   interval,
		windowDays: windowDays,
		logger:     logger.With().Str("component", "refresher").Logger(),
	}
}

// Start refreshes once immediately, then on every tick until the
// context is cancelled. Call it from its own goroutine.
func (r *Refresher) Start(ctx context.Context) {
	r.logger.Info().
		Dur("interval", r.interval).
		Int("window_days", r.windowDays).
		Msg("starting overview refresher")

	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("overview refresher stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

// refresh recomputes the overview for the trailing window ending
// yesterday. Today is excluded because its records are still arriving.
func (r *Refresher) refresh(ctx context.Context) {
	end := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(r.windowDays - 1))
	window := types.TimeWindow{Start: start, End: end}

	overview, err := r.analyzer.ServiceOverview(ctx, window)
	if err != nil {
		r.logger.Error().Err(err).Str("window", window.String()).Msg("overview refresh failed")
		return
	}

	r.snapshot.Set(overview)
	metrics.Get().RecordSnapshotRefresh()
	r.logger.Info().
		Str("window", window.String()).
		Int("total_chats", overview.TotalChats).
		Msg("overview snapshot refreshed")
}

package ingest

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/scholarsportal/askdata/internal/metrics"
	"github.com/scholarsportal/askdata/internal/types"
)

// RangeResult collects the raw records obtained for a window plus the
// fetch outcome per day. Failed days contribute zero records; they are
// recorded here rather than propagated.
type RangeResult struct {
	Records     []types.ChatRecord
	DaysFetched int
	DaysFailed  int
	FailedDays  []string
}

// Loader walks a window day by day through an injected DayFetcher.
type Loader struct {
	fetcher DayFetcher
	logger  zerolog.Logger
}

// NewLoader creates a Loader.
func NewLoader(fetcher DayFetcher, logger zerolog.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		logger:  logger.With().Str("component", "loader").Logger(),
	}
}

// LoadRange fetches every day in the window. A failed day is logged,
// counted and skipped; only context cancellation aborts the walk.
func (l *Loader) LoadRange(ctx context.Context, window types.TimeWindow) (RangeResult, error) {
	m := metrics.Get()
	var result RangeResult

	for day := window.Start; !day.After(window.End); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		records, err := l.fetcher.FetchDay(ctx, day)
		if err != nil {
			result.DaysFailed++
			result.FailedDays = append(result.FailedDays, day.Format(types.DateLayout))
			m.RecordFetchDayError()
			l.logger.Warn().
				Err(err).
				Str("day", day.Format(types.DateLayout)).
				Msg("day fetch failed, skipping")
			continue
		}

		result.DaysFetched++
		result.Records = append(result.Records, records...)
		m.RecordFetchDay(len(records))
	}

	l.logger.Info().
		Str("window", window.String()).
		Int("records", len(result.Records)).
		Int("days_fetched", result.DaysFetched).
		Int("days_failed", result.DaysFailed).
		Msg("range loaded")

	return result, nil
}

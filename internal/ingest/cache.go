package ingest

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/scholarsportal/askdata/internal/metrics"
	"github.com/scholarsportal/askdata/internal/storage"
	"github.com/scholarsportal/askdata/internal/types"
)

// CachingFetcher wraps a DayFetcher with the day-record cache so
// multi-year reruns do not hammer the upstream API. Only fully elapsed
// days are cached; a day with zero cached records is treated as a miss
// and refetched, since an empty day and an uncached day look alike in
// the store.
type CachingFetcher struct {
	inner  DayFetcher
	store  storage.Store
	logger zerolog.Logger
	now    func() time.Time
}

// NewCachingFetcher creates a CachingFetcher.
func NewCachingFetcher(inner DayFetcher, store storage.Store, logger zerolog.Logger) *CachingFetcher {
	return &CachingFetcher{
		inner:  inner,
		store:  store,
		logger: logger.With().Str("component", "day_cache").Logger(),
		now:    time.Now,
	}
}

// FetchDay serves from the cache when possible, otherwise delegates and
// stores the result. Cache write failures are logged, not propagated;
// the fetched records are still returned.
func (c *CachingFetcher) FetchDay(ctx context.Context, day time.Time) ([]types.ChatRecord, error) {
	dateKey := day.Format(types.DateLayout)
	m := metrics.Get()

	cached, err := c.store.GetDayRecords(ctx, dateKey)
	if err != nil {
		c.logger.Warn().Err(err).Str("day", dateKey).Msg("cache read failed")
	} else if len(cached) > 0 {
		m.RecordCacheHit()
		return cached, nil
	}

	records, err := c.inner.FetchDay(ctx, day)
	if err != nil {
		return nil, err
	}
	m.RecordCacheMiss()

	if len(records) > 0 && c.dayElapsed(day) {
		if err := c.store.SaveDayRecords(ctx, dateKey, records); err != nil {
			c.logger.Warn().Err(err).Str("day", dateKey).Msg("cache write failed")
		}
	}

	return records, nil
}

// dayElapsed reports whether the day is fully in the past and its
// record set can no longer grow.
func (c *CachingFetcher) dayElapsed(day time.Time) bool {
	return day.AddDate(0, 0, 1).Before(c.now())
}

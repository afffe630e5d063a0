package trend

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/scholarsportal/askdata/internal/aggregate"
	"github.com/scholarsportal/askdata/internal/directory"
	"github.com/scholarsportal/askdata/internal/partition"
	"github.com/scholarsportal/askdata/internal/types"
)

// Engine computes period-over-period trends per institution. It owns
// the aligned rows it produces; callers borrow the result and must not
// mutate it.
type Engine struct {
	dir    *directory.Directory
	logger zerolog.Logger
}

// New creates an Engine.
func New(dir *directory.Directory, logger zerolog.Logger) *Engine {
	return &Engine{
		dir:    dir,
		logger: logger.With().Str("component", "trend_engine").Logger(),
	}
}

// Compare runs the monthly aggregation for each institution over both
// windows and aligns the results by calendar month number, so March of
// the reference window lines up with March of the current window even
// though the windows sit in different years. Both windows must pass
// types.TimeWindow.Validate, which guarantees a month number occurs
// at most once per window.
//
// Institutions with no records in either window contribute nothing;
// they are absent from the result rather than present with zero rows.
// Returns types.ErrNoData when both windows are empty across every
// institution including the unmatched bucket.
func (e *Engine) Compare(table types.RecordTable, current, reference types.TimeWindow) (*types.TrendResult, error) {
	for _, w := range []types.TimeWindow{current, reference} {
		if err := w.Validate(); err != nil {
			return nil, err
		}
	}

	parts := partition.Split(table.Records, e.dir)

	result := &types.TrendResult{
		Schools: make(map[string]types.InstitutionTrend),
		Dropped: table.Dropped,
	}

	totalInPeriods := 0
	for _, rec := range parts.Unmatched {
		if current.Contains(rec.Started) || reference.Contains(rec.Started) {
			result.Unmatched.Records++
			totalInPeriods++
		}
	}
	result.Unmatched.Queues = parts.UnmatchedQueues()

	for _, inst := range e.dir.Schools() {
		if len(inst.Queues) == 0 {
			continue
		}
		records := parts.BySchool[inst.ShortName]
		if len(records) == 0 {
			continue
		}

		refRecords := aggregate.InWindow(records, reference)
		curRecords := aggregate.InWindow(records, current)
		totalInPeriods += len(refRecords) + len(curRecords)

		refBuckets := aggregate.Monthly(refRecords, reference)
		curBuckets := aggregate.Monthly(curRecords, current)
		if len(refBuckets) == 0 || len(curBuckets) == 0 {
			e.logger.Debug().
				Str("school", inst.ShortName).
				Int("reference_months", len(refBuckets)).
				Int("current_months", len(curBuckets)).
				Msg("skipping school with an empty period")
			continue
		}

		rows := alignMonths(refBuckets, curBuckets)
		if len(rows) == 0 {
			continue
		}

		refStats := aggregate.Summarize(refRecords)
		curStats := aggregate.Summarize(curRecords)

		result.Schools[inst.ShortName] = types.InstitutionTrend{
			School:   inst.ShortName,
			FullName: inst.FullName,
			Monthly:  rows,
			Aggregate: types.TrendAggregate{
				ReferenceTotal: refStats.Count,
				CurrentTotal:   curStats.Count,
				// Change of the summed counts, not the mean of the
				// monthly changes: sparse months must not outweigh
				// busy ones.
				VolumeChange:   types.PercentChange(float64(refStats.Count), float64(curStats.Count)),
				DurationChange: types.PercentChangeMetric(refStats.MeanDuration, curStats.MeanDuration),
				WaitChange:     types.PercentChangeMetric(refStats.MeanWait, curStats.MeanWait),
			},
		}
	}

	if totalInPeriods == 0 {
		return nil, fmt.Errorf("windows %s and %s: %w", reference, current, types.ErrNoData)
	}

	return result, nil
}

// alignMonths walks the reference buckets chronologically and pairs
// each with the bucket carrying the same calendar month number in the
// current window. Months absent from either side produce no row.
func alignMonths(ref, cur map[types.MonthKey]types.MonthlyBucket) []types.TrendRow {
	refKeys := make([]types.MonthKey, 0, len(ref))
	for key := range ref {
		refKeys = append(refKeys, key)
	}
	sort.Slice(refKeys, func(i, j int) bool {
		if refKeys[i].Year != refKeys[j].Year {
			return refKeys[i].Year < refKeys[j].Year
		}
		return refKeys[i].Month < refKeys[j].Month
	})

	byMonth := make(map[int]types.MonthlyBucket, len(cur))
	for _, bucket := range cur {
		byMonth[int(bucket.Month)] = bucket
	}

	var rows []types.TrendRow
	for _, key := range refKeys {
		refBucket := ref[key]
		curBucket, ok := byMonth[int(key.Month)]
		if !ok {
			continue
		}
		rows = append(rows, types.TrendRow{
			Month:          key.Month,
			PriorVolume:    refBucket.Count,
			CurrentVolume:  curBucket.Count,
			VolumeChange:   types.PercentChange(float64(refBucket.Count), float64(curBucket.Count)),
			DurationChange: types.PercentChangeMetric(refBucket.MeanDuration, curBucket.MeanDuration),
			WaitChange:     types.PercentChangeMetric(refBucket.MeanWait, curBucket.MeanWait),
		})
	}
	return rows
}

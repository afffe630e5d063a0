package aggregate

import (
	"github.com/scholarsportal/askdata/internal/types"
)

// Monthly filters records to those started inside the window and groups
// them by calendar (year, month), computing per-bucket counts and mean
// duration/wait. Records with a null duration or wait are excluded from
// that mean, not treated as zero; a mean over zero eligible values is
// the undefined marker. Pure function of its inputs.
func Monthly(records []types.NormalizedRecord, window types.TimeWindow) map[types.MonthKey]types.MonthlyBucket {
	type sums struct {
		count         int
		durationSum   float64
		durationCount int
		waitSum       float64
		waitCount     int
	}

	groups := make(map[types.MonthKey]*sums)
	for _, rec := range records {
		if !window.Contains(rec.Started) {
			continue
		}
		key := types.MonthKey{Year: rec.Year, Month: rec.Month}
		g := groups[key]
		if g == nil {
			g = &sums{}
			groups[key] = g
		}
		g.count++
		if rec.Duration != nil {
			g.durationSum += *rec.Duration
			g.durationCount++
		}
		if rec.Accepted != nil && rec.Wait != nil {
			g.waitSum += *rec.Wait
			g.waitCount++
		}
	}

	buckets := make(map[types.MonthKey]types.MonthlyBucket, len(groups))
	for key, g := range groups {
		buckets[key] = types.MonthlyBucket{
			Year:         key.Year,
			Month:        key.Month,
			Count:        g.count,
			MeanDuration: meanOf(g.durationSum, g.durationCount),
			MeanWait:     meanOf(g.waitSum, g.waitCount),
		}
	}
	return buckets
}

// InWindow returns the records whose started timestamp falls inside the
// window, both boundary days included.
func InWindow(records []types.NormalizedRecord, window types.TimeWindow) []types.NormalizedRecord {
	var out []types.NormalizedRecord
	for _, rec := range records {
		if window.Contains(rec.Started) {
			out = append(out, rec)
		}
	}
	return out
}

// PeriodStats summarizes a whole record subset: totals plus period-wide
// means with the same null-exclusion rules as Monthly.
type PeriodStats struct {
	Count        int
	MeanDuration types.Metric
	MeanWait     types.Metric
}

// Summarize computes PeriodStats over a record subset.
func Summarize(records []types.NormalizedRecord) PeriodStats {
	var (
		durationSum   float64
		durationCount int
		waitSum       float64
		waitCount     int
	)
	for _, rec := range records {
		if rec.Duration != nil {
			durationSum += *rec.Duration
			durationCount++
		}
		if rec.Accepted != nil && rec.Wait != nil {
			waitSum += *rec.Wait
			waitCount++
		}
	}
	return PeriodStats{
		Count:        len(records),
		MeanDuration: meanOf(durationSum, durationCount),
		MeanWait:     meanOf(waitSum, waitCount),
	}
}

func meanOf(sum float64, count int) types.Metric {
	if count == 0 {
		return types.Undefined()
	}
	return types.Defined(sum / float64(count))
}

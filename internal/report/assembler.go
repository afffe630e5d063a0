package report

import (
	"sort"
	"time"

	"github.com/scholarsportal/askdata/internal/alerts"
	"github.com/scholarsportal/askdata/internal/types"
)

// Assemble turns the trend engine's output into the stable structure
// handed to presentation layers. Schools are sorted ascending by
// aggregate volume change so the steepest decline leads; entries whose
// change is undefined sort after all defined ones, and ties break on
// short name to keep the ordering deterministic.
func Assemble(result *types.TrendResult, current, reference types.TimeWindow, runID string, generatedAt time.Time) *types.TrendReport {
	schools := make([]types.SchoolTrend, 0, len(result.Schools))
	for _, trend := range result.Schools {
		schools = append(schools, types.SchoolTrend{
			School:    trend.School,
			FullName:  trend.FullName,
			Monthly:   trend.Monthly,
			Aggregate: trend.Aggregate,
		})
	}

	sort.SliceStable(schools, func(i, j int) bool {
		a, b := schools[i].Aggregate.VolumeChange, schools[j].Aggregate.VolumeChange
		switch {
		case a.Valid && b.Valid && a.Value != b.Value:
			return a.Value < b.Value
		case a.Valid != b.Valid:
			return a.Valid
		default:
			return schools[i].School < schools[j].School
		}
	})

	alerts.CheckTrendEntries(schools)

	return &types.TrendReport{
		RunID:            runID,
		GeneratedAt:      generatedAt,
		CurrentWindow:    current.Span(),
		ReferenceWindow:  reference.Span(),
		Schools:          schools,
		DroppedRecords:   result.Dropped,
		UnmatchedRecords: result.Unmatched.Records,
		UnmatchedQueues:  result.Unmatched.Queues,
	}
}

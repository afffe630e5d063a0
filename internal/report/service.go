package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/scholarsportal/askdata/internal/aggregate"
	"github.com/scholarsportal/askdata/internal/directory"
	"github.com/scholarsportal/askdata/internal/partition"
	"github.com/scholarsportal/askdata/internal/types"
)

// BuildServiceOverview computes the service-wide analysis for one
// window. Unmatched-queue records are excluded from per-school shares
// but included in every service total.
func BuildServiceOverview(table types.RecordTable, dir *directory.Directory, window types.TimeWindow, generatedAt time.Time) (*types.ServiceOverview, error) {
	subset := aggregate.InWindow(table.Records, window)
	if len(subset) == 0 {
		return nil, fmt.Errorf("service overview for %s: %w", window, types.ErrNoData)
	}

	parts := partition.Split(subset, dir)
	total := len(subset)

	var (
		totalDuration float64
		operators     = make(map[string]struct{})
		hours         [24]int
		weekdays      = make(map[time.Weekday]int)
		collab        = make(map[[2]string]int)
	)
	for _, rec := range subset {
		if rec.Duration != nil {
			totalDuration += *rec.Duration
		}
		if rec.Operator != "" {
			operators[rec.Operator] = struct{}{}
		}
		hours[rec.Hour]++
		weekdays[rec.DayOfWeek]++

		if rec.Operator != "" {
			queueSchool := "unmatched"
			if inst, ok := dir.ByQueue(rec.Queue); ok {
				queueSchool = inst.ShortName
			}
			operatorSchool := "unmatched"
			if inst, ok := dir.ByOperator(rec.Operator); ok {
				operatorSchool = inst.ShortName
			}
			collab[[2]string{queueSchool, operatorSchool}]++
		}
	}

	stats := aggregate.Summarize(subset)
	overview := &types.ServiceOverview{
		Window:      window.Span(),
		GeneratedAt: generatedAt,

		TotalChats:          total,
		UniqueOperators:     len(operators),
		MeanDurationMinutes: toMinutes(stats.MeanDuration),
		MeanWaitMinutes:     toMinutes(stats.MeanWait),
		TotalChatHours:      totalDuration / 3600,

		UnmatchedChats:  len(parts.Unmatched),
		UnmatchedQueues: parts.UnmatchedQueues(),
		DroppedRecords:  table.Dropped,

		HourlyCounts:  hourlyCounts(hours),
		WeekdayCounts: weekdayCounts(weekdays),
		Collaboration: collaborationCells(collab),
	}

	for _, inst := range dir.Schools() {
		records := parts.BySchool[inst.ShortName]
		if len(records) == 0 {
			continue
		}
		schoolStats := aggregate.Summarize(records)
		overview.Schools = append(overview.Schools, types.SchoolShare{
			School:              inst.ShortName,
			Chats:               schoolStats.Count,
			PctOfTotal:          types.PercentShare(schoolStats.Count, total),
			MeanDurationMinutes: toMinutes(schoolStats.MeanDuration),
			MeanWaitMinutes:     toMinutes(schoolStats.MeanWait),
		})
	}
	sort.Slice(overview.Schools, func(i, j int) bool {
		if overview.Schools[i].Chats != overview.Schools[j].Chats {
			return overview.Schools[i].Chats > overview.Schools[j].Chats
		}
		return overview.Schools[i].School < overview.Schools[j].School
	})

	return overview, nil
}

func toMinutes(m types.Metric) types.Metric {
	if !m.Valid {
		return m
	}
	return types.Defined(m.Value / 60)
}

func hourlyCounts(hours [24]int) []types.HourCount {
	counts := make([]types.HourCount, 0, 24)
	for h, c := range hours {
		counts = append(counts, types.HourCount{Hour: h, Count: c})
	}
	return counts
}

// weekdayCounts reports Monday through Sunday in calendar order.
func weekdayCounts(weekdays map[time.Weekday]int) []types.DayCount {
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	counts := make([]types.DayCount, 0, len(order))
	for _, day := range order {
		counts = append(counts, types.DayCount{Day: day.String(), Count: weekdays[day]})
	}
	return counts
}

func collaborationCells(collab map[[2]string]int) []types.CollaborationCell {
	cells := make([]types.CollaborationCell, 0, len(collab))
	for pair, count := range collab {
		cells = append(cells, types.CollaborationCell{
			QueueSchool:    pair[0],
			OperatorSchool: pair[1],
			Count:          count,
		})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].QueueSchool != cells[j].QueueSchool {
			return cells[i].QueueSchool < cells[j].QueueSchool
		}
		return cells[i].OperatorSchool < cells[j].OperatorSchool
	})
	return cells
}

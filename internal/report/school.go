package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scholarsportal/askdata/internal/aggregate"
	"github.com/scholarsportal/askdata/internal/types"
)

// BuildSchoolReport runs the full single-institution analysis over one
// window. Returns types.ErrNoData when the institution has no records
// in the window.
func BuildSchoolReport(inst types.Institution, records []types.NormalizedRecord, window types.TimeWindow, slThresholdSecs int) (*types.SchoolReport, error) {
	subset := aggregate.InWindow(records, window)
	if len(subset) == 0 {
		return nil, fmt.Errorf("school %s in %s: %w", inst.ShortName, window, types.ErrNoData)
	}

	var (
		durations []float64
		waits     []float64
		abandoned int
		operators = make(map[string]int)
		hours     [24]int
		weekdays  = make(map[string]int)
		days      = make(map[string]struct{})
		sl        = aggregate.NewSLTracker(slThresholdSecs)
		french    int
		sms       int
		proactive int
	)

	for _, rec := range subset {
		if rec.Abandoned() {
			abandoned++
		} else if rec.Operator != "" {
			operators[rec.Operator]++
		}
		if rec.Duration != nil {
			durations = append(durations, *rec.Duration)
		}
		if rec.Accepted != nil && rec.Wait != nil {
			waits = append(waits, *rec.Wait)
			sl.Record(*rec.Wait)
		}
		hours[rec.Hour]++
		weekdays[rec.DayOfWeek.String()]++
		days[rec.Started.Format(types.DateLayout)] = struct{}{}

		switch {
		case strings.HasSuffix(rec.Queue, "-fr"):
			french++
		case strings.HasSuffix(rec.Queue, "-txt"):
			sms++
		}
		if strings.Contains(rec.Queue, "proactive") {
			proactive++
		}
	}

	total := len(subset)
	r := &types.SchoolReport{
		School:          inst.ShortName,
		FullName:        inst.FullName,
		Window:          window.Span(),
		TotalChats:      total,
		AbandonedChats:  abandoned,
		UniqueOperators: len(operators),

		MeanDuration:   aggregate.Mean(durations),
		MedianDuration: aggregate.Median(durations),
		MeanWait:       aggregate.Mean(waits),
		MedianWait:     aggregate.Median(waits),
		Wait90th:       aggregate.Percentile(waits, 90),

		SLThresholdSecs:  slThresholdSecs,
		AnsweredWithinSL: sl.Share(),

		AvgChatsPerDay: types.Defined(float64(total) / float64(len(days))),
		PeakHours:      topHours(hours, 3),
		BusiestDays:    topDays(weekdays, 3),

		QueueBreakdown: queueBreakdown(subset),
		FrenchShare:    types.PercentShare(french, total),
		SMSShare:       types.PercentShare(sms, total),
		ProactiveShare: types.PercentShare(proactive, total),

		TopOperators: topOperators(operators, 5),
	}
	return r, nil
}

func topHours(hours [24]int, n int) []types.HourCount {
	counts := make([]types.HourCount, 0, 24)
	for h, c := range hours {
		if c > 0 {
			counts = append(counts, types.HourCount{Hour: h, Count: c})
		}
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Hour < counts[j].Hour
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func topDays(weekdays map[string]int, n int) []types.DayCount {
	counts := make([]types.DayCount, 0, len(weekdays))
	for day, c := range weekdays {
		counts = append(counts, types.DayCount{Day: day, Count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Day < counts[j].Day
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func topOperators(operators map[string]int, n int) []types.OperatorCount {
	counts := make([]types.OperatorCount, 0, len(operators))
	for op, c := range operators {
		counts = append(counts, types.OperatorCount{Operator: op, Count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Operator < counts[j].Operator
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func queueBreakdown(records []types.NormalizedRecord) []types.QueueCount {
	byQueue := make(map[string][]types.NormalizedRecord)
	for _, rec := range records {
		byQueue[rec.Queue] = append(byQueue[rec.Queue], rec)
	}

	breakdown := make([]types.QueueCount, 0, len(byQueue))
	for queue, recs := range byQueue {
		stats := aggregate.Summarize(recs)
		breakdown = append(breakdown, types.QueueCount{
			Queue:        queue,
			Count:        stats.Count,
			MeanDuration: stats.MeanDuration,
			MeanWait:     stats.MeanWait,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Queue < breakdown[j].Queue
	})
	return breakdown
}

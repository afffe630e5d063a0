package ingest

import (
	"time"

	"github.com/scholarsportal/askdata/internal/metrics"
	"github.com/scholarsportal/askdata/internal/types"
)

// Upstream timestamps are naive strings already in the reporting
// timezone; both layouts occur in the wild. No timezone conversion is
// applied.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Normalize converts raw session records into the uniform table the
// aggregation layers operate on. A record missing a parseable started
// timestamp is dropped and counted; a missing accepted timestamp marks
// a valid abandoned session.
func Normalize(raw []types.ChatRecord) types.RecordTable {
	table := types.RecordTable{
		Records: make([]types.NormalizedRecord, 0, len(raw)),
	}

	for _, r := range raw {
		started, ok := parseTimestamp(r.Started)
		if !ok {
			table.Dropped++
			metrics.Get().RecordDroppedRecord()
			continue
		}

		rec := types.NormalizedRecord{
			ID:        r.ID,
			Queue:     r.Queue,
			Operator:  r.Operator,
			Started:   started,
			Duration:  r.Duration,
			Wait:      r.Wait,
			Hour:      started.Hour(),
			DayOfWeek: started.Weekday(),
			Year:      started.Year(),
			Month:     started.Month(),
		}
		if t, ok := parseTimestamp(r.Accepted); ok {
			rec.Accepted = &t
		}
		if t, ok := parseTimestamp(r.Ended); ok {
			rec.Ended = &t
		}

		table.Records = append(table.Records, rec)
	}

	metrics.Get().RecordNormalized(len(table.Records))
	return table
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

package types

import "time"

// MonthKey identifies one calendar month inside a window.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthlyBucket aggregates one institution's sessions for one calendar
// month of one window. Means exclude records whose underlying value is
// null rather than treating them as zero.
type MonthlyBucket struct {
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	Count        int        `json:"count"`
	MeanDuration Metric     `json:"mean_duration"`
	MeanWait     Metric     `json:"mean_wait"`
}

// TrendRow compares one aligned calendar month across the reference and
// current windows.
type TrendRow struct {
	Month          time.Month `json:"month"`
	PriorVolume    int        `json:"prior_volume"`
	CurrentVolume  int        `json:"current_volume"`
	VolumeChange   Metric     `json:"pct_change_volume"`
	DurationChange Metric     `json:"pct_change_duration"`
	WaitChange     Metric     `json:"pct_change_wait"`
}

// TrendAggregate is the whole-period comparison for one institution.
// Percent changes are computed from the summed counts and period-wide
// means, not from averaging the monthly rows, so busy months carry
// their full weight.
type TrendAggregate struct {
	ReferenceTotal int    `json:"reference_total"`
	CurrentTotal   int    `json:"current_total"`
	VolumeChange   Metric `json:"pct_change_volume"`
	DurationChange Metric `json:"pct_change_duration"`
	WaitChange     Metric `json:"pct_change_wait"`
}

// InstitutionTrend is the trend engine's output for one institution.
type InstitutionTrend struct {
	School    string         `json:"school"`
	FullName  string         `json:"full_name"`
	Monthly   []TrendRow     `json:"monthly"`
	Aggregate TrendAggregate `json:"aggregate"`
}

// UnmatchedBucket accounts for records whose queue belongs to no
// institution in the directory. They are excluded from per-institution
// trends but remain countable in service-wide totals.
type UnmatchedBucket struct {
	Records int      `json:"records"`
	Queues  []string `json:"queues"`
}

// TrendResult is the raw comparative output, keyed by institution short
// name. Institutions with no records in either period are absent, not
// present with zero rows.
type TrendResult struct {
	Schools   map[string]InstitutionTrend
	Dropped   int
	Unmatched UnmatchedBucket
}

// Severity grades a trend alert.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// TrendAlert flags a notable period-over-period movement on an
// assembled report entry.
type TrendAlert struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// SchoolTrend is one assembled, presentation-ready report entry.
type SchoolTrend struct {
	School    string         `json:"school"`
	FullName  string         `json:"full_name"`
	Monthly   []TrendRow     `json:"monthly"`
	Aggregate TrendAggregate `json:"aggregate"`
	Alerts    []TrendAlert   `json:"alerts,omitempty"`
}

// TrendReport is the assembled output handed to presentation layers.
// Schools are ordered by ascending aggregate volume change
// (most-declined first); entries with an undefined change sort last.
type TrendReport struct {
	RunID            string        `json:"run_id"`
	GeneratedAt      time.Time     `json:"generated_at"`
	CurrentWindow    WindowSpan    `json:"current_window"`
	ReferenceWindow  WindowSpan    `json:"reference_window"`
	Schools          []SchoolTrend `json:"schools"`
	DroppedRecords   int           `json:"dropped_records"`
	UnmatchedRecords int           `json:"unmatched_records"`
	UnmatchedQueues  []string      `json:"unmatched_queues,omitempty"`
}

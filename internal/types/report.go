package types

import "time"

// HourCount is chat volume for one hour of day (0-23).
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// DayCount is chat volume for one weekday.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// QueueCount is per-queue volume with mean handling metrics.
type QueueCount struct {
	Queue        string `json:"queue"`
	Count        int    `json:"count"`
	MeanDuration Metric `json:"mean_duration"`
	MeanWait     Metric `json:"mean_wait"`
}

// OperatorCount is per-operator chat volume.
type OperatorCount struct {
	Operator string `json:"operator"`
	Count    int    `json:"count"`
}

// SchoolReport is the full single-institution analysis for one window.
type SchoolReport struct {
	School   string     `json:"school"`
	FullName string     `json:"full_name"`
	Window   WindowSpan `json:"window"`

	TotalChats      int `json:"total_chats"`
	AbandonedChats  int `json:"abandoned_chats"`
	UniqueOperators int `json:"unique_operators"`

	MeanDuration   Metric `json:"mean_duration"`
	MedianDuration Metric `json:"median_duration"`
	MeanWait       Metric `json:"mean_wait"`
	MedianWait     Metric `json:"median_wait"`
	Wait90th       Metric `json:"wait_90th_percentile"`

	// Share of picked-up chats answered within SLThresholdSecs.
	SLThresholdSecs  int    `json:"sl_threshold_secs"`
	AnsweredWithinSL Metric `json:"answered_within_sl_pct"`

	AvgChatsPerDay Metric      `json:"avg_chats_per_day"`
	PeakHours      []HourCount `json:"peak_hours"`
	BusiestDays    []DayCount  `json:"busiest_days"`

	QueueBreakdown []QueueCount `json:"queue_breakdown"`
	FrenchShare    Metric       `json:"french_share_pct"`
	SMSShare       Metric       `json:"sms_share_pct"`
	ProactiveShare Metric       `json:"proactive_share_pct"`

	TopOperators []OperatorCount `json:"top_operators"`
}

// SchoolShare is one institution's slice of service-wide volume.
type SchoolShare struct {
	School              string `json:"school"`
	Chats               int    `json:"chats"`
	PctOfTotal          Metric `json:"pct_of_total"`
	MeanDurationMinutes Metric `json:"mean_duration_minutes"`
	MeanWaitMinutes     Metric `json:"mean_wait_minutes"`
}

// CollaborationCell counts chats from one institution's queues answered
// by another institution's operators.
type CollaborationCell struct {
	QueueSchool    string `json:"queue_school"`
	OperatorSchool string `json:"operator_school"`
	Count          int    `json:"count"`
}

// ServiceOverview is the service-wide analysis for one window,
// including the unmatched-queue bucket that per-institution trends
// exclude.
type ServiceOverview struct {
	Window      WindowSpan `json:"window"`
	GeneratedAt time.Time  `json:"generated_at"`

	TotalChats          int     `json:"total_chats"`
	UniqueOperators     int     `json:"unique_operators"`
	MeanDurationMinutes Metric  `json:"mean_duration_minutes"`
	MeanWaitMinutes     Metric  `json:"mean_wait_minutes"`
	TotalChatHours      float64 `json:"total_chat_hours"`

	Schools         []SchoolShare `json:"schools"`
	UnmatchedChats  int           `json:"unmatched_chats"`
	UnmatchedQueues []string      `json:"unmatched_queues,omitempty"`
	DroppedRecords  int           `json:"dropped_records"`

	HourlyCounts  []HourCount `json:"hourly_counts"`
	WeekdayCounts []DayCount  `json:"weekday_counts"`

	Collaboration []CollaborationCell `json:"collaboration,omitempty"`
}

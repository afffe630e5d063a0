package types

import "time"

// ChatRecord is one chat session as returned by the chat platform API.
// Timestamps arrive as naive strings already in the reporting timezone;
// Duration and Wait are null for sessions that were never picked up.
type ChatRecord struct {
	ID       int64    `json:"id" dynamodbav:"ID"`
	Queue    string   `json:"queue" dynamodbav:"Queue"`
	Operator string   `json:"operator,omitempty" dynamodbav:"Operator"`
	Started  string   `json:"started" dynamodbav:"Started"`
	Accepted string   `json:"accepted,omitempty" dynamodbav:"Accepted"`
	Ended    string   `json:"ended,omitempty" dynamodbav:"Ended"`
	Duration *float64 `json:"duration" dynamodbav:"Duration"` // seconds
	Wait     *float64 `json:"wait" dynamodbav:"Wait"`         // seconds
}

// NormalizedRecord is a ChatRecord with parsed timestamps and the
// derived fields the aggregation layers group by. A nil Accepted marks
// an abandoned session, which is valid input, not an error.
type NormalizedRecord struct {
	ID       int64
	Queue    string
	Operator string
	Started  time.Time
	Accepted *time.Time
	Ended    *time.Time
	Duration *float64
	Wait     *float64

	// derived from Started
	Hour      int
	DayOfWeek time.Weekday
	Year      int
	Month     time.Month
}

// Abandoned reports whether the session ended before an operator
// picked it up.
func (r NormalizedRecord) Abandoned() bool {
	return r.Accepted == nil
}

// RecordTable is the normalized in-memory table one analysis run
// operates on. Dropped counts raw records that lacked a parseable
// started timestamp and were excluded.
type RecordTable struct {
	Records []NormalizedRecord
	Dropped int
}

package types

// RunRecord journals one completed analysis run for the run journal
// table. DateKey (the day the run executed) is the partition key and
// RunID the sort key.
type RunRecord struct {
	DateKey string `json:"dateKey" dynamodbav:"DateKey"` // YYYY-MM-DD
	RunID   string `json:"runId" dynamodbav:"RunID"`
	Kind    string `json:"kind" dynamodbav:"Kind"` // trend, school, overview

	CurrentStart   string `json:"currentStart" dynamodbav:"CurrentStart"`
	CurrentEnd     string `json:"currentEnd" dynamodbav:"CurrentEnd"`
	ReferenceStart string `json:"referenceStart,omitempty" dynamodbav:"ReferenceStart"`
	ReferenceEnd   string `json:"referenceEnd,omitempty" dynamodbav:"ReferenceEnd"`

	TotalCurrent     int `json:"totalCurrent" dynamodbav:"TotalCurrent"`
	TotalReference   int `json:"totalReference" dynamodbav:"TotalReference"`
	SchoolCount      int `json:"schoolCount" dynamodbav:"SchoolCount"`
	DroppedRecords   int `json:"droppedRecords" dynamodbav:"DroppedRecords"`
	UnmatchedRecords int `json:"unmatchedRecords" dynamodbav:"UnmatchedRecords"`

	GeneratedAt string `json:"generatedAt" dynamodbav:"GeneratedAt"` // RFC3339
}

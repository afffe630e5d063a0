package report

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/scholarsportal/askdata/internal/types"
)

func fptr(v float64) *float64 { return &v }

func tptr(t time.Time) *time.Time { return &t }

func schoolRecord(id int64, queue, operator string, started time.Time, duration, wait *float64, accepted bool) types.NormalizedRecord {
	rec := types.NormalizedRecord{
		ID:        id,
		Queue:     queue,
		Operator:  operator,
		Started:   started,
		Duration:  duration,
		Wait:      wait,
		Hour:      started.Hour(),
		DayOfWeek: started.Weekday(),
		Year:      started.Year(),
		Month:     started.Month(),
	}
	if accepted {
		rec.Accepted = tptr(started.Add(time.Minute))
	}
	return rec
}

func TestBuildSchoolReport(t *testing.T) {
	window, _ := types.ParseWindow("2024-09-01", "2024-09-30")
	inst := types.Institution{ShortName: "western", FullName: "Western University"}

	day1 := time.Date(2024, 9, 3, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 9, 4, 14, 0, 0, 0, time.UTC)

	records := []types.NormalizedRecord{
		schoolRecord(1, "western", "jdoe-western", day1, fptr(600), fptr(30), true),
		schoolRecord(2, "western", "jdoe-western", day1.Add(time.Hour), fptr(300), fptr(90), true),
		schoolRecord(3, "western-fr", "asmith-western", day2, fptr(900), fptr(45), true),
		// abandoned: counts toward volume and abandonment, not waits
		schoolRecord(4, "western", "", day2.Add(time.Hour), nil, fptr(600), false),
	}

	report, err := BuildSchoolReport(inst, records, window, 60)
	if err != nil {
		t.Fatal(err)
	}

	if report.TotalChats != 4 {
		t.Errorf("total = %d, want 4", report.TotalChats)
	}
	if report.AbandonedChats != 1 {
		t.Errorf("abandoned = %d, want 1", report.AbandonedChats)
	}
	if report.UniqueOperators != 2 {
		t.Errorf("operators = %d, want 2", report.UniqueOperators)
	}

	if !report.MeanDuration.Valid || report.MeanDuration.Value != 600 {
		t.Errorf("mean duration = %+v, want 600", report.MeanDuration)
	}
	// The abandoned session's wait is excluded.
	if !report.MeanWait.Valid || report.MeanWait.Value != 55 {
		t.Errorf("mean wait = %+v, want 55", report.MeanWait)
	}

	// 2 of 3 answered within 60s
	if math.Abs(report.AnsweredWithinSL.Value-66.666666) > 0.001 {
		t.Errorf("SL share = %+v, want ~66.67", report.AnsweredWithinSL)
	}

	// 4 chats across 2 distinct days
	if report.AvgChatsPerDay.Value != 2 {
		t.Errorf("avg chats per day = %+v, want 2", report.AvgChatsPerDay)
	}

	if report.FrenchShare.Value != 25 {
		t.Errorf("french share = %+v, want 25", report.FrenchShare)
	}
	if report.SMSShare.Value != 0 {
		t.Errorf("sms share = %+v, want 0", report.SMSShare)
	}

	if len(report.PeakHours) == 0 || report.PeakHours[0].Count == 0 {
		t.Error("peak hours missing")
	}
	if len(report.QueueBreakdown) != 2 {
		t.Errorf("queue breakdown has %d entries, want 2", len(report.QueueBreakdown))
	}
	if len(report.TopOperators) != 2 || report.TopOperators[0].Operator != "jdoe-western" {
		t.Errorf("top operators wrong: %+v", report.TopOperators)
	}
}

func TestBuildSchoolReportNoData(t *testing.T) {
	window, _ := types.ParseWindow("2024-09-01", "2024-09-30")
	inst := types.Institution{ShortName: "western"}

	_, err := BuildSchoolReport(inst, nil, window, 60)
	if !errors.Is(err, types.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}

	// Records exist but outside the window.
	outside := []types.NormalizedRecord{
		schoolRecord(1, "western", "jdoe-western", time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC), fptr(60), fptr(10), true),
	}
	_, err = BuildSchoolReport(inst, outside, window, 60)
	if !errors.Is(err, types.ErrNoData) {
		t.Fatalf("expected ErrNoData for out-of-window records, got %v", err)
	}
}

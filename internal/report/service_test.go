package report

import (
	"errors"
	"testing"
	"time"

	"github.com/scholarsportal/askdata/internal/directory"
	"github.com/scholarsportal/askdata/internal/types"
)

func serviceDir() *directory.Directory {
	return directory.New([]types.Institution{
		{ShortName: "western", FullName: "Western University", OperatorSuffix: "western", Queues: []string{"western"}},
		{ShortName: "queens", FullName: "Queen's University", OperatorSuffix: "queens", Queues: []string{"queens"}},
	})
}

func TestBuildServiceOverview(t *testing.T) {
	window, _ := types.ParseWindow("2024-09-01", "2024-09-30")
	day := time.Date(2024, 9, 3, 10, 0, 0, 0, time.UTC)

	records := []types.NormalizedRecord{
		schoolRecord(1, "western", "jdoe-western", day, fptr(3600), fptr(60), true),
		schoolRecord(2, "western", "bhall-queens", day.Add(time.Hour), fptr(1800), fptr(120), true),
		schoolRecord(3, "queens", "bhall-queens", day.Add(2*time.Hour), fptr(1800), fptr(60), true),
		// unmatched queue still counts toward the service totals
		schoolRecord(4, "mystery", "jdoe-western", day.Add(3*time.Hour), fptr(7200), fptr(60), true),
	}

	overview, err := BuildServiceOverview(types.RecordTable{Records: records, Dropped: 1}, serviceDir(), window, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if overview.TotalChats != 4 {
		t.Errorf("total = %d, want 4", overview.TotalChats)
	}
	if overview.UniqueOperators != 2 {
		t.Errorf("operators = %d, want 2", overview.UniqueOperators)
	}
	if overview.TotalChatHours != 4 {
		t.Errorf("chat hours = %v, want 4", overview.TotalChatHours)
	}
	if overview.UnmatchedChats != 1 {
		t.Errorf("unmatched = %d, want 1", overview.UnmatchedChats)
	}
	if overview.DroppedRecords != 1 {
		t.Errorf("dropped = %d, want 1", overview.DroppedRecords)
	}

	// western leads with 2 chats; shares are over the full total
	// including the unmatched record.
	if len(overview.Schools) != 2 {
		t.Fatalf("expected 2 school shares, got %d", len(overview.Schools))
	}
	if overview.Schools[0].School != "western" || overview.Schools[0].Chats != 2 {
		t.Errorf("first share = %+v, want western/2", overview.Schools[0])
	}
	if overview.Schools[0].PctOfTotal.Value != 50 {
		t.Errorf("western share = %v, want 50", overview.Schools[0].PctOfTotal.Value)
	}

	if len(overview.HourlyCounts) != 24 {
		t.Errorf("hourly counts must cover all 24 hours, got %d", len(overview.HourlyCounts))
	}
	if overview.HourlyCounts[10].Count != 1 {
		t.Errorf("hour 10 count = %d, want 1", overview.HourlyCounts[10].Count)
	}
	if len(overview.WeekdayCounts) != 7 {
		t.Errorf("weekday counts must cover all 7 days, got %d", len(overview.WeekdayCounts))
	}

	// cross-staffing: western queue answered by a queens operator
	var crossCount int
	for _, cell := range overview.Collaboration {
		if cell.QueueSchool == "western" && cell.OperatorSchool == "queens" {
			crossCount = cell.Count
		}
	}
	if crossCount != 1 {
		t.Errorf("western x queens collaboration = %d, want 1", crossCount)
	}
}

func TestBuildServiceOverviewNoData(t *testing.T) {
	window, _ := types.ParseWindow("2024-09-01", "2024-09-30")
	_, err := BuildServiceOverview(types.RecordTable{}, serviceDir(), window, time.Now())
	if !errors.Is(err, types.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

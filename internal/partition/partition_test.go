package partition

import (
	"testing"
	"time"

	"github.com/scholarsportal/askdata/internal/directory"
	"github.com/scholarsportal/askdata/internal/types"
)

func testDir() *directory.Directory {
	return directory.New([]types.Institution{
		{ShortName: "western", FullName: "Western University", Queues: []string{"western", "western-fr"}},
		{ShortName: "queens", FullName: "Queen's University", Queues: []string{"queens"}},
		{ShortName: "practice", FullName: "Practice Queue", Queues: nil},
	})
}

func rec(id int64, queue string) types.NormalizedRecord {
	return types.NormalizedRecord{
		ID:      id,
		Queue:   queue,
		Started: time.Date(2024, 9, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestSplit(t *testing.T) {
	records := []types.NormalizedRecord{
		rec(1, "western"),
		rec(2, "western-fr"),
		rec(3, "queens"),
		rec(4, "mystery-queue"),
		rec(5, "mystery-queue"),
		rec(6, "other-queue"),
	}

	parts := Split(records, testDir())

	if got := len(parts.BySchool["western"]); got != 2 {
		t.Errorf("western records = %d, want 2", got)
	}
	if got := len(parts.BySchool["queens"]); got != 1 {
		t.Errorf("queens records = %d, want 1", got)
	}
	if got := len(parts.Unmatched); got != 3 {
		t.Errorf("unmatched records = %d, want 3", got)
	}
	if _, ok := parts.BySchool["practice"]; ok {
		t.Error("institution without queues must not appear in BySchool")
	}

	queues := parts.UnmatchedQueues()
	want := []string{"mystery-queue", "other-queue"}
	if len(queues) != len(want) {
		t.Fatalf("unmatched queues = %v, want %v", queues, want)
	}
	for i := range want {
		if queues[i] != want[i] {
			t.Errorf("unmatched queue %d = %s, want %s", i, queues[i], want[i])
		}
	}
}

func TestForInstitution(t *testing.T) {
	records := []types.NormalizedRecord{
		rec(1, "western"),
		rec(2, "queens"),
		rec(3, "western-fr"),
	}

	inst := types.Institution{ShortName: "western", Queues: []string{"western", "western-fr"}}
	subset := ForInstitution(records, inst)
	if len(subset) != 2 {
		t.Fatalf("expected 2 records, got %d", len(subset))
	}
	if subset[0].ID != 1 || subset[1].ID != 3 {
		t.Error("input order must be preserved")
	}

	empty := types.Institution{ShortName: "practice"}
	if got := ForInstitution(records, empty); got != nil {
		t.Errorf("institution without queues must select nothing, got %v", got)
	}
}

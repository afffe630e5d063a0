package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/scholarsportal/askdata/internal/types"
)

func TestLoadRange(t *testing.T) {
	window, err := types.ParseWindow("2024-09-01", "2024-09-05")
	if err != nil {
		t.Fatal(err)
	}

	var fetched []string
	fetcher := FetcherFunc(func(ctx context.Context, day time.Time) ([]types.ChatRecord, error) {
		fetched = append(fetched, day.Format(types.DateLayout))
		return []types.ChatRecord{{ID: int64(day.Day()), Queue: "western", Started: day.Format("2006-01-02") + " 10:00:00"}}, nil
	})

	result, err := NewLoader(fetcher, zerolog.Nop()).LoadRange(context.Background(), window)
	if err != nil {
		t.Fatal(err)
	}

	if result.DaysFetched != 5 {
		t.Errorf("expected 5 days fetched, got %d", result.DaysFetched)
	}
	if len(result.Records) != 5 {
		t.Errorf("expected 5 records, got %d", len(result.Records))
	}
	if fetched[0] != "2024-09-01" || fetched[4] != "2024-09-05" {
		t.Errorf("unexpected day sequence: %v", fetched)
	}
}

func TestLoadRangeAbsorbsFailedDays(t *testing.T) {
	window, _ := types.ParseWindow("2024-09-01", "2024-09-03")

	fetcher := FetcherFunc(func(ctx context.Context, day time.Time) ([]types.ChatRecord, error) {
		if day.Day() == 2 {
			return nil, fmt.Errorf("upstream timeout")
		}
		return []types.ChatRecord{{ID: int64(day.Day()), Queue: "western"}}, nil
	})

	result, err := NewLoader(fetcher, zerolog.Nop()).LoadRange(context.Background(), window)
	if err != nil {
		t.Fatalf("a failed day must not fail the range: %v", err)
	}

	if result.DaysFetched != 2 || result.DaysFailed != 1 {
		t.Errorf("expected 2 fetched / 1 failed, got %d / %d", result.DaysFetched, result.DaysFailed)
	}
	if len(result.FailedDays) != 1 || result.FailedDays[0] != "2024-09-02" {
		t.Errorf("unexpected failed days: %v", result.FailedDays)
	}
	if len(result.Records) != 2 {
		t.Errorf("expected 2 records, got %d", len(result.Records))
	}
}

func TestLoadRangeStopsOnCancelledContext(t *testing.T) {
	window, _ := types.ParseWindow("2024-09-01", "2024-09-30")

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	fetcher := FetcherFunc(func(ctx context.Context, day time.Time) ([]types.ChatRecord, error) {
		calls++
		if calls == 3 {
			cancel()
		}
		return nil, nil
	})

	_, err := NewLoader(fetcher, zerolog.Nop()).LoadRange(ctx, window)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected walk to stop after cancellation, got %d calls", calls)
	}
}

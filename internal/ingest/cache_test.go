package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/scholarsportal/askdata/internal/types"
)

// memStore is an in-memory storage.Store for cache tests.
type memStore struct {
	days map[string][]types.ChatRecord
	runs map[string][]types.RunRecord
}

func newMemStore() *memStore {
	return &memStore{
		days: make(map[string][]types.ChatRecord),
		runs: make(map[string][]types.RunRecord),
	}
}

func (s *memStore) SaveDayRecords(_ context.Context, dateKey string, records []types.ChatRecord) error {
	s.days[dateKey] = records
	return nil
}

func (s *memStore) GetDayRecords(_ context.Context, dateKey string) ([]types.ChatRecord, error) {
	return s.days[dateKey], nil
}

func (s *memStore) SaveRun(_ context.Context, run types.RunRecord) error {
	s.runs[run.DateKey] = append(s.runs[run.DateKey], run)
	return nil
}

func (s *memStore) GetRuns(_ context.Context, dateKey string) ([]types.RunRecord, error) {
	return s.runs[dateKey], nil
}

func (s *memStore) TruncateAll(_ context.Context) error {
	s.days = make(map[string][]types.ChatRecord)
	s.runs = make(map[string][]types.RunRecord)
	return nil
}

func TestCachingFetcherHit(t *testing.T) {
	store := newMemStore()
	store.days["2024-09-03"] = []types.ChatRecord{{ID: 7, Queue: "western"}}

	calls := 0
	inner := FetcherFunc(func(ctx context.Context, day time.Time) ([]types.ChatRecord, error) {
		calls++
		return nil, nil
	})

	cf := NewCachingFetcher(inner, store, zerolog.Nop())
	records, err := cf.FetchDay(context.Background(), time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Error("cached day must not reach the inner fetcher")
	}
	if len(records) != 1 || records[0].ID != 7 {
		t.Errorf("unexpected cached records: %+v", records)
	}
}

func TestCachingFetcherMissStoresElapsedDay(t *testing.T) {
	store := newMemStore()
	inner := FetcherFunc(func(ctx context.Context, day time.Time) ([]types.ChatRecord, error) {
		return []types.ChatRecord{{ID: 42, Queue: "queens"}}, nil
	})

	cf := NewCachingFetcher(inner, store, zerolog.Nop())
	cf.now = func() time.Time { return time.Date(2024, 9, 10, 12, 0, 0, 0, time.UTC) }

	day := time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC)
	records, err := cf.FetchDay(context.Background(), day)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := store.days["2024-09-03"]; len(got) != 1 {
		t.Error("fully elapsed day must be written to the cache")
	}
}

func TestCachingFetcherDoesNotStoreCurrentDay(t *testing.T) {
	store := newMemStore()
	inner := FetcherFunc(func(ctx context.Context, day time.Time) ([]types.ChatRecord, error) {
		return []types.ChatRecord{{ID: 1, Queue: "queens"}}, nil
	})

	cf := NewCachingFetcher(inner, store, zerolog.Nop())
	cf.now = func() time.Time { return time.Date(2024, 9, 3, 12, 0, 0, 0, time.UTC) }

	day := time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC)
	if _, err := cf.FetchDay(context.Background(), day); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.days["2024-09-03"]; ok {
		t.Error("a day still in progress must not be cached")
	}
}

func TestCachingFetcherEmptyDayIsMiss(t *testing.T) {
	store := newMemStore()
	store.days["2024-09-03"] = nil

	calls := 0
	inner := FetcherFunc(func(ctx context.Context, day time.Time) ([]types.ChatRecord, error) {
		calls++
		return nil, nil
	})

	cf := NewCachingFetcher(inner, store, zerolog.Nop())
	if _, err := cf.FetchDay(context.Background(), time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Error("an empty cache entry must fall through to the inner fetcher")
	}
}

package storage

import (
	"context"

	"github.com/scholarsportal/askdata/internal/types"
)

// Store persists fetched chat days and the analysis run journal.
type Store interface {
	SaveDayRecords(ctx context.Context, dateKey string, records []types.ChatRecord) error
	GetDayRecords(ctx context.Context, dateKey string) ([]types.ChatRecord, error)
	SaveRun(ctx context.Context, run types.RunRecord) error
	GetRuns(ctx context.Context, dateKey string) ([]types.RunRecord, error)
	TruncateAll(ctx context.Context) error
}

// NoopStore is the no-op implementation used when caching is disabled;
// every lookup misses and every write succeeds silently.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (s *NoopStore) SaveDayRecords(_ context.Context, _ string, _ []types.ChatRecord) error {
	return nil
}
func (s *NoopStore) GetDayRecords(_ context.Context, _ string) ([]types.ChatRecord, error) {
	return nil, nil
}
func (s *NoopStore) SaveRun(_ context.Context, _ types.RunRecord) error { return nil }
func (s *NoopStore) GetRuns(_ context.Context, _ string) ([]types.RunRecord, error) {
	return nil, nil
}
func (s *NoopStore) TruncateAll(_ context.Context) error { return nil }

package ingest

import (
	"context"
	"time"

	"github.com/scholarsportal/askdata/internal/types"
)

// DayFetcher returns the chat sessions that started on the given day.
// An empty slice with a nil error means the day genuinely had no chats;
// a non-nil error means that single day could not be fetched. The
// capability is injected by the caller, never a process-wide singleton.
type DayFetcher interface {
	FetchDay(ctx context.Context, day time.Time) ([]types.ChatRecord, error)
}

// FetcherFunc adapts a function to the DayFetcher interface.
type FetcherFunc func(ctx context.Context, day time.Time) ([]types.ChatRecord, error)

func (f FetcherFunc) FetchDay(ctx context.Context, day time.Time) ([]types.ChatRecord, error) {
	return f(ctx, day)
}

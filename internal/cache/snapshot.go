package cache

import (
	"sync"
	"time"

	"github.com/scholarsportal/askdata/internal/types"
)

// OverviewSnapshot holds the latest service overview in memory so the
// API can serve it without recomputing a full window on every request.
type OverviewSnapshot struct {
	mu        sync.RWMutex
	overview  *types.ServiceOverview
	updatedAt time.Time
}

// NewOverviewSnapshot creates an empty snapshot.
func NewOverviewSnapshot() *OverviewSnapshot {
	return &OverviewSnapshot{}
}

// Set replaces the cached overview.
func (s *OverviewSnapshot) Set(overview *types.ServiceOverview) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overview = overview
	s.updatedAt = time.Now()
}

// Get returns the cached overview, its refresh time, and whether one
// has been computed yet.
func (s *OverviewSnapshot) Get() (*types.ServiceOverview, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overview, s.updatedAt, s.overview != nil
}

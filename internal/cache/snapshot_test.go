package cache

import (
	"testing"

	"github.com/scholarsportal/askdata/internal/types"
)

func TestOverviewSnapshot(t *testing.T) {
	s := NewOverviewSnapshot()

	if _, _, ok := s.Get(); ok {
		t.Fatal("fresh snapshot must report not ready")
	}

	overview := &types.ServiceOverview{TotalChats: 42}
	s.Set(overview)

	got, updatedAt, ok := s.Get()
	if !ok {
		t.Fatal("snapshot must be ready after Set")
	}
	if got.TotalChats != 42 {
		t.Errorf("total = %d, want 42", got.TotalChats)
	}
	if updatedAt.IsZero() {
		t.Error("updatedAt must be set")
	}

	s.Set(&types.ServiceOverview{TotalChats: 7})
	got, _, _ = s.Get()
	if got.TotalChats != 7 {
		t.Error("Set must replace the previous overview")
	}
}

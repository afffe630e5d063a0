package partition

import (
	"sort"

	"github.com/scholarsportal/askdata/internal/directory"
	"github.com/scholarsportal/askdata/internal/metrics"
	"github.com/scholarsportal/askdata/internal/types"
)

// Partition groups normalized records by owning institution.
// Institutions with an empty queue set are skipped; institutions whose
// queues matched no records are absent from BySchool. Records whose
// queue belongs to no institution land in Unmatched so service-wide
// totals can still count them.
type Partition struct {
	BySchool  map[string][]types.NormalizedRecord
	Unmatched []types.NormalizedRecord
}

// Split partitions a record table against the directory.
func Split(records []types.NormalizedRecord, dir *directory.Directory) Partition {
	bySchool := make(map[string][]types.NormalizedRecord)
	var unmatched []types.NormalizedRecord

	for _, rec := range records {
		inst, ok := dir.ByQueue(rec.Queue)
		if !ok {
			unmatched = append(unmatched, rec)
			continue
		}
		bySchool[inst.ShortName] = append(bySchool[inst.ShortName], rec)
	}

	metrics.Get().RecordUnmatched(len(unmatched))
	return Partition{BySchool: bySchool, Unmatched: unmatched}
}

// ForInstitution selects the records belonging to one institution's
// queue set, preserving input order.
func ForInstitution(records []types.NormalizedRecord, inst types.Institution) []types.NormalizedRecord {
	if len(inst.Queues) == 0 {
		return nil
	}
	var out []types.NormalizedRecord
	for _, rec := range records {
		if inst.HasQueue(rec.Queue) {
			out = append(out, rec)
		}
	}
	return out
}

// UnmatchedQueues returns the distinct queue identifiers seen in the
// unmatched bucket, sorted for deterministic output.
func (p Partition) UnmatchedQueues() []string {
	seen := make(map[string]struct{})
	for _, rec := range p.Unmatched {
		seen[rec.Queue] = struct{}{}
	}
	queues := make([]string, 0, len(seen))
	for q := range seen {
		queues = append(queues, q)
	}
	sort.Strings(queues)
	return queues
}

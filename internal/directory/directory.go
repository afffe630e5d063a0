package directory

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/scholarsportal/askdata/internal/types"
)

// Directory maps free-text institution names and queue identifiers to
// canonical institution records. It is read-only after construction.
type Directory struct {
	schools  []types.Institution
	byQueue  map[string]int
	byName   map[string]int
	bySuffix map[string]int
}

// New builds a directory from institution records. Later entries win on
// queue collisions, though the upstream directory never produces any.
func New(schools []types.Institution) *Directory {
	d := &Directory{
		schools:  schools,
		byQueue:  make(map[string]int),
		byName:   make(map[string]int),
		bySuffix: make(map[string]int),
	}
	for i, s := range schools {
		d.byName[strings.ToLower(s.ShortName)] = i
		d.byName[strings.ToLower(s.FullName)] = i
		if s.OperatorSuffix != "" {
			d.bySuffix[strings.ToLower(s.OperatorSuffix)] = i
		}
		for _, q := range s.Queues {
			d.byQueue[q] = i
		}
	}
	return d
}

// LoadFile reads a JSON array of institution records.
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory file: %w", err)
	}
	var schools []types.Institution
	if err := json.Unmarshal(data, &schools); err != nil {
		return nil, fmt.Errorf("failed to parse directory file: %w", err)
	}
	return New(schools), nil
}

// Schools returns all institutions in registration order.
func (d *Directory) Schools() []types.Institution {
	return d.schools
}

// Find resolves a full name or short name, case-insensitively.
func (d *Directory) Find(name string) (types.Institution, error) {
	if i, ok := d.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return d.schools[i], nil
	}
	return types.Institution{}, fmt.Errorf("%q: %w", name, types.ErrUnknownInstitution)
}

// ByQueue resolves the institution owning a queue identifier.
func (d *Directory) ByQueue(queue string) (types.Institution, bool) {
	if i, ok := d.byQueue[queue]; ok {
		return d.schools[i], true
	}
	return types.Institution{}, false
}

// ByOperator attributes a staff account to its home institution via the
// trailing suffix token on the account name (e.g. "jdoe-uot").
func (d *Directory) ByOperator(operator string) (types.Institution, bool) {
	idx := strings.LastIndex(operator, "-")
	if idx < 0 || idx == len(operator)-1 {
		return types.Institution{}, false
	}
	if i, ok := d.bySuffix[strings.ToLower(operator[idx+1:])]; ok {
		return d.schools[i], true
	}
	return types.Institution{}, false
}

// QueueNames returns every registered queue identifier, sorted.
func (d *Directory) QueueNames() []string {
	names := make([]string, 0, len(d.byQueue))
	for q := range d.byQueue {
		names = append(names, q)
	}
	sort.Strings(names)
	return names
}

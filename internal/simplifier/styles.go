package simplifier

import (
	"math/rand"
	"reflect"
	"time"

	"github.com/aretw0/espalier/pkg/domain"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// StyleTable deduplicates style descriptors by deep value equality and hands
// out short content-addressed identifiers. A table belongs to exactly one
// parse; it is not safe for concurrent use.
type StyleTable struct {
	entries []styleEntry
	rng     *rand.Rand
}

type styleEntry struct {
	id    domain.StyleID
	value any
}

// StyleTableOption configures a StyleTable.
type StyleTableOption func(*StyleTable)

// WithIDSource fixes the random source used for identifier suffixes, which
// makes table output reproducible in tests.
func WithIDSource(src rand.Source) StyleTableOption {
	return func(t *StyleTable) {
		t.rng = rand.New(src)
	}
}

// NewStyleTable creates an empty table.
func NewStyleTable(opts ...StyleTableOption) *StyleTable {
	t := &StyleTable{}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return t
}

// Intern registers a descriptor and returns its identifier. A descriptor
// deeply equal to one already present returns the existing identifier
// without minting a new one.
func (t *StyleTable) Intern(prefix string, value any) domain.StyleID {
	for _, e := range t.entries {
		if reflect.DeepEqual(e.value, value) {
			return e.id
		}
	}
	id := t.newID(prefix)
	t.entries = append(t.entries, styleEntry{id: id, value: value})
	return id
}

// Len reports how many distinct descriptors the table holds.
func (t *StyleTable) Len() int {
	return len(t.entries)
}

// Styles exports the table as the GlobalVars mapping of a design.
func (t *StyleTable) Styles() map[domain.StyleID]any {
	out := make(map[domain.StyleID]any, len(t.entries))
	for _, e := range t.entries {
		out[e.id] = e.value
	}
	return out
}

func (t *StyleTable) newID(prefix string) domain.StyleID {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idAlphabet[t.rng.Intn(len(idAlphabet))]
	}
	return domain.StyleID(prefix + "_" + string(suffix))
}

// Package tt implements the search's transposition table: a flat
// associative map from 32-bit Zobrist key to a fixed-size entry, with
// depth-preferred replacement and no aging.
package tt

import "github.com/dustin/go-humanize"

type Bound int

const (
	Exact Bound = iota
	Lower
	Upper
)

type Entry struct {
	Key   uint32
	Depth int
	Score int
	Move  uint16 // packed from<<5|to, per movegen.Move.Key
	Bound Bound
}

// Table is an unbounded map keyed by position hash. Callers own a Table per
// invocation or reuse one across a game; either way writes are sequenced by
// the single search thread, so no locking is needed.
type Table struct {
	entries map[uint32]Entry
	probes  uint64
	hits    uint64
	stores  uint64
}

func New() *Table {
	return &Table{entries: make(map[uint32]Entry, 1<<16)}
}

// Probe returns the stored entry for key, if any.
func (t *Table) Probe(key uint32) (Entry, bool) {
	t.probes++
	e, ok := t.entries[key]
	if ok {
		t.hits++
	}
	return e, ok
}

// Store records e, replacing any prior entry for the same key iff e's depth
// is greater than or equal to the prior entry's depth.
func (t *Table) Store(e Entry) {
	if prior, ok := t.entries[e.Key]; ok && prior.Depth > e.Depth {
		return
	}
	t.stores++
	t.entries[e.Key] = e
}

func (t *Table) Clear() {
	t.entries = make(map[uint32]Entry, 1<<16)
	t.probes, t.hits, t.stores = 0, 0, 0
}

func (t *Table) Len() int { return len(t.entries) }

// Stats renders a one-line human-readable summary for CLI/debug output.
func (t *Table) Stats() string {
	return humanize.Comma(int64(t.Len())) + " entries, " +
		humanize.Comma(int64(t.probes)) + " probes, " +
		humanize.Comma(int64(t.hits)) + " hits, " +
		humanize.Comma(int64(t.stores)) + " stores"
}

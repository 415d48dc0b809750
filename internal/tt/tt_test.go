package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreAndProbe(t *testing.T) {
	table := New()
	table.Store(Entry{Key: 42, Depth: 4, Score: 100, Move: 7, Bound: Exact})

	e, ok := table.Probe(42)
	assert.True(t, ok)
	assert.Equal(t, 100, e.Score)
	assert.Equal(t, uint16(7), e.Move)
}

func TestProbeMiss(t *testing.T) {
	table := New()
	_, ok := table.Probe(99)
	assert.False(t, ok)
}

func TestDepthPreferredReplacement(t *testing.T) {
	table := New()
	table.Store(Entry{Key: 1, Depth: 5, Score: 10, Bound: Exact})
	table.Store(Entry{Key: 1, Depth: 3, Score: 99, Bound: Exact})

	e, ok := table.Probe(1)
	assert.True(t, ok)
	assert.Equal(t, 10, e.Score, "a shallower entry must not replace a deeper one")

	table.Store(Entry{Key: 1, Depth: 5, Score: 20, Bound: Exact})
	e, _ = table.Probe(1)
	assert.Equal(t, 20, e.Score, "an equal-depth entry replaces the prior one")
}

func TestClear(t *testing.T) {
	table := New()
	table.Store(Entry{Key: 1, Depth: 1, Bound: Exact})
	table.Clear()
	assert.Equal(t, 0, table.Len())
}

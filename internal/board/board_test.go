package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexRowColRoundTrip(t *testing.T) {
	for i := 0; i < NumSquares; i++ {
		rc := RowColFromIndex(i)
		assert.True(t, IsDark(rc.Row, rc.Col))
		assert.Equal(t, i, IndexFromRowCol(rc.Row, rc.Col))
	}
}

func TestSetClearTest(t *testing.T) {
	var b Bitboard
	b = b.Set(5)
	assert.True(t, b.Test(5))
	assert.False(t, b.Test(4))
	b = b.Clear(5)
	assert.False(t, b.Test(5))
}

func TestPopCount(t *testing.T) {
	var b Bitboard
	b = b.Set(1).Set(2).Set(31)
	assert.Equal(t, 3, b.PopCount())
}

func TestEachIndexAscending(t *testing.T) {
	var b Bitboard
	b = b.Set(17).Set(3).Set(9)
	var seen []int
	b.EachIndex(func(i int) { seen = append(seen, i) })
	assert.Equal(t, []int{3, 9, 17}, seen)
}

func TestStepOffBoard(t *testing.T) {
	// square 0 is row 0, col 1; stepping UL or UR must run off-board.
	_, okUL := Step(0, UL)
	_, okUR := Step(0, UR)
	assert.False(t, okUL)
	assert.False(t, okUR)
}

func TestWalkStopsAtEdge(t *testing.T) {
	count := 0
	Walk(0, DR, func(square int) bool {
		count++
		return true
	})
	assert.Greater(t, count, 0)
}

package movegen

import (
	"sort"
	"testing"

	"github.com/saranaauttama-afk/makhos-expo/internal/position"
	"github.com/stretchr/testify/assert"
)

// S1: the initial position has exactly 7 legal moves, pinned here by
// (from, to) once computed from this package's own square bijection.
func TestInitialPositionHasSevenMoves(t *testing.T) {
	moves := GenerateMoves(position.Initial())
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].From != moves[j].From {
			return moves[i].From < moves[j].From
		}
		return moves[i].To < moves[j].To
	})

	want := []struct{ from, to int }{
		{24, 20}, {24, 21},
		{25, 21}, {25, 22},
		{26, 22}, {26, 23},
		{27, 23},
	}
	assert.Len(t, moves, len(want))
	for i, w := range want {
		assert.Equal(t, w.from, moves[i].From, "move %d", i)
		assert.Equal(t, w.to, moves[i].To, "move %d", i)
		assert.False(t, moves[i].IsCapture())
	}
}

// S2: a lone forced single jump.
func TestForcedSingleJump(t *testing.T) {
	pos := position.Position{Side: position.P1}
	pos.P1Men = pos.P1Men.Set(24)
	pos.P2Men = pos.P2Men.Set(21)

	moves := GenerateMoves(pos)
	assert.Len(t, moves, 1)
	m := moves[0]
	assert.Equal(t, 24, m.From)
	assert.Equal(t, 17, m.To)
	assert.Equal(t, []int{21}, m.Captured)
	assert.False(t, m.Promote)
}

// S3: max-length capture rule -- a 2-piece chain coexists with an
// unrelated 1-piece capture; only the longer chain is legal.
func TestMaxLengthCaptureRule(t *testing.T) {
	pos := position.Position{Side: position.P1}
	pos.P1Men = pos.P1Men.Set(24).Set(27)
	pos.P2Men = pos.P2Men.Set(21).Set(14).Set(23)

	moves := GenerateMoves(pos)
	assert.Len(t, moves, 1)
	m := moves[0]
	assert.Equal(t, 24, m.From)
	assert.Equal(t, 10, m.To)
	assert.Equal(t, []int{21, 14}, m.Captured)
}

// S4: a flying king lands on the square immediately beyond the captured
// piece, not further along the ray, even though the ray past it is empty.
func TestFlyingKingShortLanding(t *testing.T) {
	pos := position.Position{Side: position.P1}
	pos.P1Kings = pos.P1Kings.Set(31)
	pos.P2Men = pos.P2Men.Set(17)

	moves := GenerateMoves(pos)
	assert.Len(t, moves, 1)
	m := moves[0]
	assert.Equal(t, 31, m.From)
	assert.Equal(t, 13, m.To)
	assert.Equal(t, []int{17}, m.Captured)
}

// S5: promotion ends the chain -- a further jump available from the
// promotion square is never appended.
func TestPromotionEndsChain(t *testing.T) {
	pos := position.Position{Side: position.P1}
	pos.P1Men = pos.P1Men.Set(8)
	pos.P2Men = pos.P2Men.Set(5).Set(6)

	moves := GenerateMoves(pos)
	assert.Len(t, moves, 1)
	m := moves[0]
	assert.Equal(t, 8, m.From)
	assert.Equal(t, 1, m.To)
	assert.Equal(t, []int{5}, m.Captured)
	assert.True(t, m.Promote)
}

func TestForcedCaptureLaw(t *testing.T) {
	pos := position.Position{Side: position.P1}
	pos.P1Men = pos.P1Men.Set(24).Set(27)
	pos.P2Men = pos.P2Men.Set(21)

	moves := GenerateMoves(pos)
	for _, m := range moves {
		assert.True(t, m.IsCapture())
	}
}

func TestApplyMovePromotes(t *testing.T) {
	pos := position.Position{Side: position.P1}
	pos.P1Men = pos.P1Men.Set(8)
	pos.P2Men = pos.P2Men.Set(5).Set(6)

	moves := GenerateMoves(pos)
	next := ApplyMove(pos, moves[0])
	assert.True(t, next.P1Kings.Test(1))
	assert.False(t, next.P1Men.Test(1))
	assert.False(t, next.P2Men.Test(5))
	assert.Equal(t, position.P2, next.Side)
	assert.Equal(t, 0, next.HalfmoveClock)
}

func TestApplyMoveDisjointBitboards(t *testing.T) {
	pos := position.Initial()
	for _, m := range GenerateMoves(pos) {
		next := ApplyMove(pos, m)
		assert.Equal(t, 0, (next.P1Men & next.P1Kings).PopCount())
		assert.Equal(t, 0, (next.P1Men & next.P2Men).PopCount())
		assert.Equal(t, 0, (next.P2Men & next.P2Kings).PopCount())
		assert.Equal(t, 0, (next.P1Kings & next.P2Kings).PopCount())
	}
}

func TestMoveKeyRoundTrip(t *testing.T) {
	m := Move{From: 24, To: 17}
	assert.Equal(t, m, MoveFromKey(m.Key()))
}

func perft(pos position.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var total int64
	for _, m := range GenerateMoves(pos) {
		total += perft(ApplyMove(pos, m), depth-1)
	}
	return total
}

// Invariant 8: perft(initial, d) is a fixed node count per depth, recorded
// here from a correct reference implementation of this exact move
// generator (forward-only men, short-landing flying kings, promotion ends
// the chain, forced maximum-length captures re-checked at every node).
func TestPerftInitialPosition(t *testing.T) {
	want := []int64{7, 49, 392, 3136, 26592, 218695}
	pos := position.Initial()
	for d, w := range want {
		depth := d + 1
		assert.Equal(t, w, perft(pos, depth), "perft(%d)", depth)
	}
}

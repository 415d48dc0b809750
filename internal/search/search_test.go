package search

import (
	"testing"
	"time"

	"github.com/saranaauttama-afk/makhos-expo/internal/eval"
	"github.com/saranaauttama-afk/makhos-expo/internal/movegen"
	"github.com/saranaauttama-afk/makhos-expo/internal/position"
	"github.com/stretchr/testify/assert"
)

// S7: the mover has a move leaving the opponent with zero legal replies;
// the finisher scan must find it without a full search.
func TestSearchPicksImmediateWin(t *testing.T) {
	pos := position.Position{Side: position.P1}
	pos.P1Men = pos.P1Men.Set(24)
	pos.P2Men = pos.P2Men.Set(21)

	result := IterativeDeepening(pos, 100, nil, nil)
	assert.True(t, result.Best.HasValue())
	assert.Equal(t, 24, result.Best.Value().From)
	assert.Equal(t, 17, result.Best.Value().To)
	assert.Equal(t, 900000, result.Score)
}

// S8: two lone men face two flying kings. Moving either man to its "short"
// square leaves a chain that captures both men outright; moving the first
// man to its other square leaves only a single capture, which the man left
// behind immediately recaptures for an even trade. The search must prefer
// the even trade over either losing line.
func TestSearchAvoidsTwoPieceBlunder(t *testing.T) {
	pos := position.Position{Side: position.P1}
	pos.P1Men = pos.P1Men.Set(15).Set(18)
	pos.P2Kings = pos.P2Kings.Set(0).Set(7)

	result := IterativeDeepening(pos, 500, nil, nil)
	assert.True(t, result.Best.HasValue())
	assert.Equal(t, 15, result.Best.Value().From)
	assert.Equal(t, 11, result.Best.Value().To)
}

func TestFindForcedWinDirect(t *testing.T) {
	pos := position.Position{Side: position.P1}
	pos.P1Men = pos.P1Men.Set(24)
	pos.P2Men = pos.P2Men.Set(21)

	legal := movegen.GenerateMoves(pos)
	winner, ok := findForcedWin(pos, legal)
	assert.True(t, ok)
	assert.Equal(t, 24, winner.From)
}

// Invariant 9: search depth reaches at least 1 given legal moves and a
// non-trivial time budget.
func TestSearchReachesAtLeastDepthOne(t *testing.T) {
	result := IterativeDeepening(position.Initial(), 200, nil, nil)
	assert.GreaterOrEqual(t, result.Depth, 1)
	assert.True(t, result.Best.HasValue())
}

// Invariant 10: at a position with no captures available, quiescence must
// equal static evaluation.
func TestQuiescenceMatchesEvaluateWithNoCaptures(t *testing.T) {
	pos := position.Initial()
	st := &state{deadline: time.Now().Add(time.Second)}
	assert.Equal(t, eval.Evaluate(pos), quiescence(st, pos, -Mate, Mate, 0))
}

func TestIterativeDeepeningReturnsNoMoveOnTerminalRoot(t *testing.T) {
	pos := position.Position{Side: position.P1}
	// Neither side has any pieces: terminal, no legal moves for the mover.
	result := IterativeDeepening(pos, 50, nil, nil)
	assert.False(t, result.Best.HasValue())
}

func TestOnInfoCalledAtLeastOnce(t *testing.T) {
	calls := 0
	IterativeDeepening(position.Initial(), 150, nil, func(info Info) {
		calls++
		assert.GreaterOrEqual(t, info.Depth, 1)
	})
	assert.Greater(t, calls, 0)
}

package zobrist

import (
	"testing"

	"github.com/saranaauttama-afk/makhos-expo/internal/movegen"
	"github.com/saranaauttama-afk/makhos-expo/internal/position"
	"github.com/stretchr/testify/assert"
)

func TestHashDeterministic(t *testing.T) {
	p := position.Initial()
	assert.Equal(t, Hash(p), Hash(p))
}

func TestHashChangesAfterMove(t *testing.T) {
	p := position.Initial()
	moves := movegen.GenerateMoves(p)
	assert.NotEmpty(t, moves)
	next := movegen.ApplyMove(p, moves[0])
	assert.NotEqual(t, Hash(p), Hash(next))
}

func TestHashDiffersBySideToMove(t *testing.T) {
	p1 := position.Position{Side: position.P1}
	p2 := p1
	p2.Side = position.P2
	assert.NotEqual(t, Hash(p1), Hash(p2))
}

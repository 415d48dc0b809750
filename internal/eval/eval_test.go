package eval

import (
	"testing"

	"github.com/saranaauttama-afk/makhos-expo/internal/position"
	"github.com/stretchr/testify/assert"
)

func TestInitialPositionIsBalanced(t *testing.T) {
	assert.Equal(t, 0, Evaluate(position.Initial()))
}

func TestMaterialAdvantageIsPositive(t *testing.T) {
	pos := position.Position{Side: position.P1}
	pos.P1Men = pos.P1Men.Set(24).Set(25)
	pos.P2Men = pos.P2Men.Set(0)
	assert.Greater(t, Evaluate(pos), 0)
}

// Evaluate is not required to be exactly antisymmetric under a perspective
// flip: leader-only bonuses (simplification, king-weight reduction, endgame
// finishers) deliberately break strict symmetry to push a material leader
// toward trading down. But a clear material edge must still read positive
// for the side holding it, from either side's perspective.
func TestMaterialEdgeFavorsLeaderFromEitherPerspective(t *testing.T) {
	pos := position.Position{Side: position.P1}
	pos.P1Men = pos.P1Men.Set(24).Set(25).Set(26).Set(27)
	pos.P2Men = pos.P2Men.Set(0)

	flipped := pos
	flipped.Side = position.P2

	assert.Greater(t, Evaluate(pos), 0)
	assert.Less(t, Evaluate(flipped), 0)
}

func TestEvaluateDeterministic(t *testing.T) {
	pos := position.Initial()
	assert.Equal(t, Evaluate(pos), Evaluate(pos))
}

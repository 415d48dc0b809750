// Package movegen implements the rule-exact Makhos move generator: forward
// men, flying kings, forced maximum-length capture chains, and the
// promotion-ends-chain rule.
package movegen

import (
	"github.com/saranaauttama-afk/makhos-expo/internal/board"
	"github.com/saranaauttama-afk/makhos-expo/internal/herr"
	"github.com/saranaauttama-afk/makhos-expo/internal/position"
)

type MovesBuffer = []Move

var getMovesBuffer, releaseMovesBuffer = herr.CreatePool(
	func() MovesBuffer { return make(MovesBuffer, 0, 32) },
	func(b *MovesBuffer) { *b = (*b)[:0] },
)

func GetMovesBuffer() *MovesBuffer     { return getMovesBuffer() }
func ReleaseMovesBuffer(b *MovesBuffer) { releaseMovesBuffer(b) }

// GenerateMoves returns the legal move set for pos: forced maximum-length
// capture chains if any capture exists, else quiet moves. The order is the
// generator's own order (men before kings, each in ascending from-square,
// fixed direction order UL, UR, DL, DR) -- search re-orders on top of this.
func GenerateMoves(pos position.Position) []Move {
	buf := GetMovesBuffer()
	defer ReleaseMovesBuffer(buf)
	GenerateMovesInto(pos, buf)
	out := make([]Move, len(*buf))
	copy(out, *buf)
	return out
}

// GenerateMovesInto appends the legal move set to *out (which is assumed
// to start empty), avoiding an allocation at call sites that reuse a pooled
// buffer across many positions (GenerateMoves does this with its own pooled
// buffer).
func GenerateMovesInto(pos position.Position, out *MovesBuffer) {
	captures := GetMovesBuffer()
	defer ReleaseMovesBuffer(captures)

	generateCaptures(pos, captures)
	if len(*captures) > 0 {
		maxLen := 0
		for _, m := range *captures {
			if len(m.Captured) > maxLen {
				maxLen = len(m.Captured)
			}
		}
		for _, m := range *captures {
			if len(m.Captured) == maxLen {
				*out = append(*out, m)
			}
		}
		return
	}

	generateQuietMoves(pos, out)
}

func generateCaptures(pos position.Position, out *MovesBuffer) {
	mover := pos.Side
	opponentAll := pos.OpponentAll()
	allOccupied := pos.Occupied()

	emit := func(from int, chain []int, to int, promote bool) {
		captured := make([]int, len(chain))
		copy(captured, chain)
		*out = append(*out, Move{From: from, To: to, Captured: captured, Promote: promote})
	}

	pos.MoverMen().EachIndex(func(from int) {
		dfsManCaptures(mover, from, from, allOccupied, opponentAll, 0, nil, emit)
	})
	pos.MoverKings().EachIndex(func(from int) {
		dfsKingCaptures(mover, from, from, allOccupied, opponentAll, 0, nil, emit)
	})
}

// dfsManCaptures explores capture chains for a man by value, over bitboard
// snapshots rather than a mutate/rollback state machine: `captured` is a
// bitmask of squares already jumped (tentatively removed) this chain, and
// `chain` is the ordered list of those squares for the eventual Move.
func dfsManCaptures(
	mover position.Player,
	from, current int,
	allOccupied, opponentAll board.Bitboard,
	captured board.Bitboard,
	chain []int,
	emit func(from int, chain []int, to int, promote bool),
) {
	// The moving piece still shows as occupied at its original square in
	// allOccupied (we never mutate the board mid-chain); squares captured
	// earlier in this chain are tentatively gone too.
	effectiveOccupied := allOccupied.Clear(from) &^ captured
	effectiveOpponent := opponentAll &^ captured

	found := false
	for _, d := range board.Dirs {
		if !position.IsForwardDir(mover, d) {
			continue
		}
		over, ok := board.Step(current, d)
		if !ok || !effectiveOpponent.Test(over) {
			continue
		}
		landing, ok := board.Step(over, d)
		if !ok || effectiveOccupied.Test(landing) {
			continue
		}

		found = true
		newCaptured := captured.Set(over)
		newChain := append(append([]int{}, chain...), over)

		if position.IsPromotionSquare(landing, mover) {
			emit(from, newChain, landing, true)
			continue
		}

		dfsManCaptures(mover, from, landing, allOccupied, opponentAll, newCaptured, newChain, emit)
	}
	if !found && chain != nil {
		emit(from, chain, current, false)
	}
}

// dfsKingCaptures explores capture chains for a flying king: slide past any
// number of empty squares, jump exactly one enemy, land on the square
// immediately beyond it (the "short landing" rule).
func dfsKingCaptures(
	mover position.Player,
	from, current int,
	allOccupied, opponentAll board.Bitboard,
	captured board.Bitboard,
	chain []int,
	emit func(from int, chain []int, to int, promote bool),
) {
	effectiveOccupied := allOccupied.Clear(from) &^ captured
	effectiveOpponent := opponentAll &^ captured

	found := false
	for _, d := range board.Dirs {
		enemySquare := -1
		sq := current
		for {
			next, ok := board.Step(sq, d)
			if !ok {
				break
			}
			if effectiveOpponent.Test(next) {
				enemySquare = next
				break
			}
			if effectiveOccupied.Test(next) {
				break // friendly piece blocks the ray
			}
			sq = next
		}
		if enemySquare < 0 {
			continue
		}
		landing, ok := board.Step(enemySquare, d)
		if !ok || effectiveOccupied.Test(landing) {
			continue
		}

		found = true
		newCaptured := captured.Set(enemySquare)
		newChain := append(append([]int{}, chain...), enemySquare)
		dfsKingCaptures(mover, from, landing, allOccupied, opponentAll, newCaptured, newChain, emit)
	}
	if !found && chain != nil {
		emit(from, chain, current, false)
	}
}

func generateQuietMoves(pos position.Position, out *MovesBuffer) {
	mover := pos.Side
	allOccupied := pos.Occupied()

	pos.MoverMen().EachIndex(func(from int) {
		for _, d := range board.Dirs {
			if !position.IsForwardDir(mover, d) {
				continue
			}
			to, ok := board.Step(from, d)
			if !ok || allOccupied.Test(to) {
				continue
			}
			promote := position.IsPromotionSquare(to, mover)
			*out = append(*out, Move{From: from, To: to, Promote: promote})
		}
	})

	pos.MoverKings().EachIndex(func(from int) {
		for _, d := range board.Dirs {
			board.Walk(from, d, func(to int) bool {
				if allOccupied.Test(to) {
					return false
				}
				*out = append(*out, Move{From: from, To: to})
				return true
			})
		}
	})
}

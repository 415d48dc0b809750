// Package eval implements the static evaluator: material, mobility, center
// control, promotion progress, back-rank guards, king proximity, trapped
// kings, capture-swing, and simplification, blended by game phase.
package eval

import (
	"github.com/saranaauttama-afk/makhos-expo/internal/board"
	"github.com/saranaauttama-afk/makhos-expo/internal/movegen"
	"github.com/saranaauttama-afk/makhos-expo/internal/position"
)

const startingPieceCount = 16

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func round(x float64) int {
	if x >= 0 {
		return int(x + 0.5)
	}
	return -int(-x + 0.5)
}

// weights holds the game-phase-blended weight table for one evaluation call.
type weights struct {
	man              int
	king             int
	mobilityMen      int
	mobilityKing     int
	center           int
	promoteProgress  int
	backRankGuard    int
	kingProximity    int
	trappedKing      int
	captureSwing     int
	captureTargets   int
	simplification   int
}

func computeWeights(eg float64, leader bool, opponentTotal int) weights {
	w := weights{
		man:            100,
		king:           210,
		mobilityMen:    2,
		mobilityKing:   3,
		center:         2,
		backRankGuard:  3,
		kingProximity:  2,
		trappedKing:    -12,
		captureSwing:   90,
		captureTargets: 45,
	}
	if eg >= 0.5 && leader {
		w.king -= 60
	}
	if eg >= 0.8 && leader && opponentTotal <= 2 {
		w.king -= 90
	}
	if eg >= 0.7 {
		w.captureSwing += 20
	}
	w.promoteProgress = 6 + round(6*eg)
	w.captureTargets += round(4 * eg)

	w.simplification = 6
	if leader {
		w.simplification += round(8 * eg)
		if opponentTotal <= 2 {
			w.simplification += 10
		}
	}
	return w
}

func inCenter(index int) bool {
	rc := board.RowColFromIndex(index)
	return rc.Row >= 2 && rc.Row <= 5 && rc.Col >= 2 && rc.Col <= 5
}

func manMobility(pos position.Position, player position.Player) int {
	occupied := pos.Occupied()
	men := menBitboard(pos, player)
	count := 0
	men.EachIndex(func(from int) {
		for _, d := range position.ForwardDirs(player) {
			to, ok := board.Step(from, d)
			if ok && !occupied.Test(to) {
				count++
			}
		}
	})
	return count
}

func kingMobility(pos position.Position, player position.Player) int {
	occupied := pos.Occupied()
	kings := kingsBitboard(pos, player)
	count := 0
	kings.EachIndex(func(from int) {
		for _, d := range board.Dirs {
			to, ok := board.Step(from, d)
			if ok && !occupied.Test(to) {
				count++
			}
		}
	})
	return count
}

func menBitboard(pos position.Position, player position.Player) board.Bitboard {
	if player == position.P1 {
		return pos.P1Men
	}
	return pos.P2Men
}

func kingsBitboard(pos position.Position, player position.Player) board.Bitboard {
	if player == position.P1 {
		return pos.P1Kings
	}
	return pos.P2Kings
}

func allBitboard(pos position.Position, player position.Player) board.Bitboard {
	return menBitboard(pos, player) | kingsBitboard(pos, player)
}

func centerCount(pos position.Position, player position.Player) int {
	n := 0
	allBitboard(pos, player).EachIndex(func(i int) {
		if inCenter(i) {
			n++
		}
	})
	return n
}

func promotionProgressSum(pos position.Position, player position.Player) int {
	sum := 0
	menBitboard(pos, player).EachIndex(func(i int) {
		row := board.RowColFromIndex(i).Row
		if player == position.P1 {
			sum += row
		} else {
			sum += 7 - row
		}
	})
	return sum
}

func backRankGuards(pos position.Position, player position.Player) int {
	targetRow := 7
	if player == position.P2 {
		targetRow = 0
	}
	n := 0
	menBitboard(pos, player).EachIndex(func(i int) {
		if board.RowColFromIndex(i).Row == targetRow {
			n++
		}
	})
	return n
}

func chebyshev(a, b int) int {
	ra, ca := board.RowColFromIndex(a).Row, board.RowColFromIndex(a).Col
	rb, cb := board.RowColFromIndex(b).Row, board.RowColFromIndex(b).Col
	dr := ra - rb
	if dr < 0 {
		dr = -dr
	}
	dc := ca - cb
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

func kingProximityScore(pos position.Position, player position.Player) int {
	kings := kingsBitboard(pos, player)
	if kings == 0 {
		return 0
	}
	opp := allBitboard(pos, player.Other())
	if opp == 0 {
		return 0
	}
	total, count := 0, 0
	kings.EachIndex(func(k int) {
		best := -1
		opp.EachIndex(func(o int) {
			d := chebyshev(k, o)
			if best < 0 || d < best {
				best = d
			}
		})
		total += best
		count++
	})
	if count == 0 {
		return 0
	}
	avg := float64(total) / float64(count)
	score := 6 - avg
	if score < 0 {
		score = 0
	}
	return round(score)
}

func trappedKingCount(pos position.Position, player position.Player) int {
	occupied := pos.Occupied()
	n := 0
	kingsBitboard(pos, player).EachIndex(func(from int) {
		for _, d := range board.Dirs {
			to, ok := board.Step(from, d)
			if ok && !occupied.Test(to) {
				return
			}
		}
		n++
	})
	return n
}

// captureSwing returns the maximum capture-chain length and the number of
// distinct squares threatened (union, deduplicated) if it were player's turn
// to move from pos.
func captureSwing(pos position.Position, player position.Player) (maxChain int, threats int) {
	hypothetical := pos
	hypothetical.Side = player
	moves := movegen.GenerateMoves(hypothetical)
	seen := map[int]bool{}
	for _, m := range moves {
		if len(m.Captured) > maxChain {
			maxChain = len(m.Captured)
		}
		for _, sq := range m.Captured {
			seen[sq] = true
		}
	}
	threats = len(seen)
	return
}

// Evaluate returns a score from pos.Side's perspective, in integer
// centipawn-like units.
func Evaluate(pos position.Position) int {
	mover := pos.Side
	opp := mover.Other()

	totalPieces := pos.PieceCount(position.P1) + pos.PieceCount(position.P2)
	gp := clamp01(float64(totalPieces) / float64(startingPieceCount))
	eg := 1 - gp

	moverMaterial := menBitboard(pos, mover).PopCount()*100 + kingsBitboard(pos, mover).PopCount()*200
	oppMaterial := menBitboard(pos, opp).PopCount()*100 + kingsBitboard(pos, opp).PopCount()*200
	leader := moverMaterial > oppMaterial

	w := computeWeights(eg, leader, pos.PieceCount(opp))

	score := 0
	score += w.man * (menBitboard(pos, mover).PopCount() - menBitboard(pos, opp).PopCount())
	score += w.king * (kingsBitboard(pos, mover).PopCount() - kingsBitboard(pos, opp).PopCount())

	score += w.mobilityMen * (manMobility(pos, mover) - manMobility(pos, opp))
	score += w.mobilityKing * (kingMobility(pos, mover) - kingMobility(pos, opp))

	score += w.center * (centerCount(pos, mover) - centerCount(pos, opp))

	ourProgress := promotionProgressSum(pos, mover)
	theirProgress := promotionProgressSum(pos, opp)
	score += w.promoteProgress * (theirProgress - ourProgress) / 10

	score += w.backRankGuard * (backRankGuards(pos, mover) - backRankGuards(pos, opp))

	score += w.kingProximity * (kingProximityScore(pos, mover) - kingProximityScore(pos, opp))

	score += w.trappedKing * (trappedKingCount(pos, mover) - trappedKingCount(pos, opp))

	ourChain, ourThreats := captureSwing(pos, mover)
	theirChain, theirThreats := captureSwing(pos, opp)
	score += w.captureSwing * (ourChain - theirChain)
	score += w.captureTargets * (ourThreats - theirThreats)

	materialLeadSign := 0
	if moverMaterial > oppMaterial {
		materialLeadSign = 1
	} else if moverMaterial < oppMaterial {
		materialLeadSign = -1
	}
	score += materialLeadSign * w.simplification * (startingPieceCount - totalPieces)

	oppTotal := pos.PieceCount(opp)
	if leader && oppTotal == 1 {
		score += 140
	} else if leader && oppTotal <= 2 {
		score += 70
	}

	return int(int32(score))
}

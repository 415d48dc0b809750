package search

import (
	"github.com/saranaauttama-afk/makhos-expo/internal/movegen"
	"github.com/saranaauttama-afk/makhos-expo/internal/position"
)

// findForcedWin scans root's legal moves for one that forces a win within
// two or three plies, short-circuiting the full search.
func findForcedWin(pos position.Position, legal []movegen.Move) (movegen.Move, bool) {
	for _, m := range legal {
		if forcedWinIn2(pos, m) || forcedWinIn3(pos, m) {
			return m, true
		}
	}
	return movegen.Move{}, false
}

func filterCaptures(moves []movegen.Move) []movegen.Move {
	out := make([]movegen.Move, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture() {
			out = append(out, m)
		}
	}
	return out
}

// forcedWinIn2 reports whether, after m, every opponent reply (restricted
// to captures if any capture reply exists, else all replies) leads to a
// position where the mover has an immediate-win follow-up.
func forcedWinIn2(pos position.Position, m movegen.Move) bool {
	child := movegen.ApplyMove(pos, m)
	oppMoves := movegen.GenerateMoves(child)
	if len(oppMoves) == 0 {
		return true
	}
	candidates := oppMoves
	if captures := filterCaptures(oppMoves); len(captures) > 0 {
		candidates = captures
	}
	for _, r := range candidates {
		grandchild := movegen.ApplyMove(child, r)
		if !hasImmediateWin(grandchild) {
			return false
		}
	}
	return true
}

func hasImmediateWin(pos position.Position) bool {
	for _, m := range movegen.GenerateMoves(pos) {
		child := movegen.ApplyMove(pos, m)
		if len(movegen.GenerateMoves(child)) == 0 {
			return true
		}
	}
	return false
}

// forcedWinIn3 reports whether, after m, every opponent reply admits a
// mover response such that every subsequent opponent reply leaves the
// position immediately won.
func forcedWinIn3(pos position.Position, m movegen.Move) bool {
	child := movegen.ApplyMove(pos, m)
	oppMoves := movegen.GenerateMoves(child)
	if len(oppMoves) == 0 {
		return true
	}
	for _, r1 := range oppMoves {
		grandchild := movegen.ApplyMove(child, r1)
		if !admitsForcedResponse(grandchild) {
			return false
		}
	}
	return true
}

func admitsForcedResponse(pos position.Position) bool {
	for _, m2 := range movegen.GenerateMoves(pos) {
		gc := movegen.ApplyMove(pos, m2)
		oppReplies := movegen.GenerateMoves(gc)
		if len(oppReplies) == 0 {
			return true
		}
		allWin := true
		for _, r2 := range oppReplies {
			gc3 := movegen.ApplyMove(gc, r2)
			if !hasImmediateWin(gc3) {
				allWin = false
				break
			}
		}
		if allWin {
			return true
		}
	}
	return false
}

// rootOrderScore ranks a root move per the root-ordering rules: forced-win
// bonuses, mobility-drop bonus (scaled for kings-only endings), an
// anti-suicide penalty, and a deterministic tiebreak derived from the
// position hash so that ties are reproducible.
func rootOrderScore(pos position.Position, m movegen.Move, hash uint32) int {
	score := 0
	if forcedWinIn2(pos, m) {
		score += 1000000
	} else if forcedWinIn3(pos, m) {
		score += 900000
	}

	child := movegen.ApplyMove(pos, m)
	oppReplyCount := len(movegen.GenerateMoves(child))
	mobilityDrop := 12 - oppReplyCount
	if mobilityDrop < 0 {
		mobilityDrop = 0
	}
	scale := 2
	menLeft := child.P1Men.PopCount() + child.P2Men.PopCount()
	totalKings := child.P1Kings.PopCount() + child.P2Kings.PopCount()
	kingsOnly := menLeft == 0
	if kingsOnly {
		scale = 4
	}
	if kingsOnly && totalKings <= 3 {
		scale = 6
	}
	score += mobilityDrop * scale

	isFinisher := score >= 900000
	if !isFinisher && leavesImmediateCapture(child) {
		score -= 200
	}

	tiebreak := int((hash ^ uint32(m.Key())) & 0b111)
	score += tiebreak
	return score
}

func leavesImmediateCapture(pos position.Position) bool {
	for _, m := range movegen.GenerateMoves(pos) {
		if m.IsCapture() {
			return true
		}
	}
	return false
}

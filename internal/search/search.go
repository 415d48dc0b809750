// Package search implements the time-bounded alpha-beta search: iterative
// deepening with aspiration windows, a root finisher scan for short forced
// wins, PVS with late-move reduction, killer/history move ordering, and
// quiescence over captures. Cancellation is cooperative deadline polling --
// no goroutines, no background timers.
package search

import (
	"sort"
	"time"

	"github.com/saranaauttama-afk/makhos-expo/internal/eval"
	"github.com/saranaauttama-afk/makhos-expo/internal/herr"
	"github.com/saranaauttama-afk/makhos-expo/internal/movegen"
	"github.com/saranaauttama-afk/makhos-expo/internal/position"
	"github.com/saranaauttama-afk/makhos-expo/internal/tt"
	"github.com/saranaauttama-afk/makhos-expo/internal/zobrist"
)

const (
	Mate     = 999999
	MaxPly   = 96
	DepthCap = 22
)

// Info is delivered to onInfo after each completed iterative-deepening
// depth.
type Info struct {
	Depth int
	Score int
	Nodes int64
	PV    []movegen.Move
}

// Result is the outcome of one IterativeDeepening call. Best is empty iff
// no depth completed at least one full root-move evaluation and the root
// had no legal moves.
type Result struct {
	Best  herr.Optional[movegen.Move]
	Score int
	Nodes int64
	Depth int
}

type state struct {
	table     *tt.Table
	deadline  time.Time
	nodes     int64
	cancelled bool
	killers   [MaxPly][2]uint16
	history   [1024]int
}

func (s *state) timeUp() bool {
	if s.cancelled {
		return true
	}
	if time.Now().After(s.deadline) {
		s.cancelled = true
	}
	return s.cancelled
}

// IterativeDeepening searches root for up to timeMs milliseconds, returning
// the best move found at the last fully-completed depth. If no depth
// completes before the deadline, Best is the generator's first legal move.
// table may be nil (a fresh one is allocated) or reused across invocations.
func IterativeDeepening(root position.Position, timeMs int, table *tt.Table, onInfo func(Info)) Result {
	if table == nil {
		table = tt.New()
	}
	s := &state{table: table, deadline: time.Now().Add(time.Duration(timeMs) * time.Millisecond)}

	legal := movegen.GenerateMoves(root)
	if len(legal) == 0 {
		return Result{Score: eval.Evaluate(root)}
	}

	if winner, ok := findForcedWin(root, legal); ok {
		return Result{Best: herr.Some(winner), Score: 900000, Depth: 1, Nodes: 1}
	}

	var result Result
	lastScore := 0
	for depth := 1; depth <= DepthCap; depth++ {
		alpha, beta := -Mate-1, Mate+1
		if depth > 1 {
			alpha, beta = lastScore-80, lastScore+80
		}
		budget := extensionBudget(root)

		var score int
		var best movegen.Move
		var ok bool
		for attempts := 0; attempts < 8; attempts++ {
			score, best, ok = rootSearch(s, root, depth, alpha, beta, budget)
			if !ok {
				break
			}
			if score <= alpha {
				alpha -= 160
				continue
			}
			if score >= beta {
				beta += 160
				continue
			}
			break
		}
		if !ok {
			break
		}

		lastScore = score
		result = Result{Best: herr.Some(best), Score: score, Nodes: s.nodes, Depth: depth}
		if onInfo != nil {
			onInfo(Info{Depth: depth, Score: score, Nodes: s.nodes, PV: extractPV(table, root, depth)})
		}
		if s.timeUp() {
			break
		}
	}
	if !result.Best.HasValue() {
		result.Best = herr.Some(legal[0])
		result.Nodes = s.nodes
	}
	return result
}

func extensionBudget(pos position.Position) int {
	totalMen := pos.P1Men.PopCount() + pos.P2Men.PopCount()
	totalKings := pos.P1Kings.PopCount() + pos.P2Kings.PopCount()
	if totalMen == 0 && totalKings <= 3 {
		return 2
	}
	return 1
}

// rootSearch runs one full root iteration at depth, returning the best
// score (root bonuses included), best move, and whether the iteration
// completed before the deadline.
func rootSearch(s *state, pos position.Position, depth, alpha, beta, budget int) (int, movegen.Move, bool) {
	moves := movegen.GenerateMoves(pos)
	if len(moves) == 0 {
		return eval.Evaluate(pos), movegen.Move{}, true
	}
	hash := zobrist.Hash(pos)
	orderScores := make(map[uint16]int, len(moves))
	for _, m := range moves {
		orderScores[m.Key()] = rootOrderScore(pos, m, hash)
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return orderScores[moves[i].Key()] > orderScores[moves[j].Key()]
	})

	origAlpha := alpha
	bestScore := -Mate - 1
	var bestMove movegen.Move
	haveBest := false

	for i, m := range moves {
		if s.timeUp() {
			return 0, movegen.Move{}, false
		}
		child := movegen.ApplyMove(pos, m)
		childMoves := movegen.GenerateMoves(child)

		childBudget := budget
		d := depth - 1
		if childBudget > 0 && len(moves) == 1 {
			childBudget--
			d++
		}
		if childBudget > 0 {
			totalPieces := child.PieceCount(position.P1) + child.PieceCount(position.P2)
			childHasCapture := false
			for _, cm := range childMoves {
				if cm.IsCapture() {
					childHasCapture = true
					break
				}
			}
			if totalPieces <= 5 || childHasCapture || len(childMoves) == 1 {
				childBudget--
				d++
			}
		}
		if d > depth {
			d = depth
		}
		if d < 0 {
			d = 0
		}

		reduced := false
		if i >= 3 && !m.IsCapture() && d >= 2 && !(len(moves) <= 2) && len(childMoves) != 1 {
			d--
			reduced = true
		}

		var sc int
		if i == 0 {
			sc = -alphabeta(s, child, d, -beta, -alpha, 1, childBudget)
		} else {
			sc = -alphabeta(s, child, d, -(alpha+1), -alpha, 1, childBudget)
			if sc > alpha && reduced {
				sc = -alphabeta(s, child, depth-1, -beta, -alpha, 1, childBudget)
			} else if sc > alpha && sc < beta {
				sc = -alphabeta(s, child, depth-1, -beta, -alpha, 1, childBudget)
			}
		}

		if !haveBest || sc > bestScore {
			bestScore = sc
			bestMove = m
			haveBest = true
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
	}

	if s.timeUp() {
		return 0, movegen.Move{}, false
	}

	bound := tt.Exact
	if bestScore <= origAlpha {
		bound = tt.Upper
	} else if bestScore >= beta {
		bound = tt.Lower
	}
	s.table.Store(tt.Entry{Key: hash, Depth: depth, Score: bestScore, Move: bestMove.Key(), Bound: bound})

	finisherBonus := 0
	if orderScores[bestMove.Key()] >= 900000 {
		finisherBonus = 500
	}
	child := movegen.ApplyMove(pos, bestMove)
	oppReplies := len(movegen.GenerateMoves(child))
	drop := 12 - oppReplies
	mobilityBonus := 0
	if drop > 0 {
		mobilityBonus = drop
		if mobilityBonus > 100 {
			mobilityBonus = 100
		}
	}

	return bestScore + finisherBonus + mobilityBonus, bestMove, true
}

func alphabeta(s *state, pos position.Position, depth, alpha, beta, ply, budget int) int {
	if ply >= MaxPly || s.timeUp() {
		return eval.Evaluate(pos)
	}
	if depth <= 0 {
		return quiescence(s, pos, alpha, beta, ply)
	}

	key := zobrist.Hash(pos)
	origAlpha := alpha

	var ttMoveKey uint16
	hasTT := false
	if entry, ok := s.table.Probe(key); ok {
		ttMoveKey = entry.Move
		hasTT = true
		if entry.Depth >= depth {
			switch entry.Bound {
			case tt.Exact:
				return entry.Score
			case tt.Lower:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case tt.Upper:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}

	s.nodes++
	moves := movegen.GenerateMoves(pos)
	if len(moves) == 0 {
		return -(Mate - ply)
	}

	ordered := orderMoves(moves, ttMoveKey, hasTT, s.killers[ply], &s.history)

	best := -Mate - 1
	var bestMove movegen.Move
	haveBest := false

	for i, m := range ordered {
		if s.timeUp() {
			break
		}
		child := movegen.ApplyMove(pos, m)
		childMoves := movegen.GenerateMoves(child)

		childBudget := budget
		d := depth - 1
		if childBudget > 0 && len(moves) == 1 {
			childBudget--
			d++
		}
		if childBudget > 0 {
			totalPieces := child.PieceCount(position.P1) + child.PieceCount(position.P2)
			childHasCapture := false
			for _, cm := range childMoves {
				if cm.IsCapture() {
					childHasCapture = true
					break
				}
			}
			if totalPieces <= 5 || childHasCapture || len(childMoves) == 1 {
				childBudget--
				d++
			}
		}
		if d > depth {
			d = depth
		}
		if d < 0 {
			d = 0
		}

		reduced := false
		if i >= 3 && !m.IsCapture() && d >= 2 && !(len(moves) <= 2) && len(childMoves) != 1 {
			d--
			reduced = true
		}

		var score int
		if i == 0 {
			score = -alphabeta(s, child, d, -beta, -alpha, ply+1, childBudget)
		} else {
			score = -alphabeta(s, child, d, -(alpha+1), -alpha, ply+1, childBudget)
			if score > alpha && reduced {
				score = -alphabeta(s, child, depth-1, -beta, -alpha, ply+1, childBudget)
			} else if score > alpha && score < beta {
				score = -alphabeta(s, child, depth-1, -beta, -alpha, ply+1, childBudget)
			}
		}

		if !haveBest || score > best {
			best = score
			bestMove = m
			haveBest = true
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			if !m.IsCapture() {
				s.killers[ply][1] = s.killers[ply][0]
				s.killers[ply][0] = m.Key()
			}
			s.history[m.Key()] += depth * depth
			break
		}
	}

	bound := tt.Exact
	if best <= origAlpha {
		bound = tt.Upper
	} else if best >= beta {
		bound = tt.Lower
	}
	s.table.Store(tt.Entry{Key: key, Depth: depth, Score: best, Move: bestMove.Key(), Bound: bound})
	return best
}

func quiescence(s *state, pos position.Position, alpha, beta, ply int) int {
	s.nodes++
	if ply >= MaxPly || s.timeUp() {
		return eval.Evaluate(pos)
	}

	stand := eval.Evaluate(pos)
	if stand >= beta {
		return stand
	}
	if stand > alpha {
		alpha = stand
	}

	moves := movegen.GenerateMoves(pos)
	captures := make([]movegen.Move, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	sort.SliceStable(captures, func(i, j int) bool {
		return len(captures[i].Captured) > len(captures[j].Captured)
	})

	for _, m := range captures {
		if s.timeUp() {
			break
		}
		child := movegen.ApplyMove(pos, m)
		score := -quiescence(s, child, -beta, -alpha, ply+1)
		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func orderMoves(moves []movegen.Move, ttKey uint16, hasTT bool, killers [2]uint16, history *[1024]int) []movegen.Move {
	type scored struct {
		m movegen.Move
		s int
	}
	arr := make([]scored, len(moves))
	for i, m := range moves {
		sc := 0
		if hasTT && m.Key() == ttKey {
			sc += 1000000
		}
		if m.IsCapture() {
			sc += 10000 * len(m.Captured)
		}
		if m.Key() == killers[0] {
			sc += 5000
		} else if m.Key() == killers[1] {
			sc += 4000
		}
		sc += history[m.Key()]
		if m.Promote && !m.IsCapture() {
			sc += 1500
		}
		arr[i] = scored{m, sc}
	}
	sort.SliceStable(arr, func(i, j int) bool { return arr[i].s > arr[j].s })
	out := make([]movegen.Move, len(arr))
	for i, a := range arr {
		out[i] = a.m
	}
	return out
}

func extractPV(table *tt.Table, root position.Position, maxLen int) []movegen.Move {
	pv := make([]movegen.Move, 0, maxLen)
	pos := root
	seen := map[uint32]bool{}
	for i := 0; i < maxLen; i++ {
		hash := zobrist.Hash(pos)
		if seen[hash] {
			break
		}
		seen[hash] = true
		entry, ok := table.Probe(hash)
		if !ok {
			break
		}
		legal := movegen.GenerateMoves(pos)
		var found *movegen.Move
		for _, m := range legal {
			if m.Key() == entry.Move {
				mm := m
				found = &mm
				break
			}
		}
		if found == nil {
			break
		}
		pv = append(pv, *found)
		pos = movegen.ApplyMove(pos, *found)
	}
	return pv
}

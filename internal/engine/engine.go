// Package engine exposes the public, synchronous surface described in the
// engine API: iterative deepening, move generation/application, and static
// evaluation, all over the bitboard position type.
package engine

import (
	"github.com/saranaauttama-afk/makhos-expo/internal/eval"
	"github.com/saranaauttama-afk/makhos-expo/internal/movegen"
	"github.com/saranaauttama-afk/makhos-expo/internal/position"
	"github.com/saranaauttama-afk/makhos-expo/internal/search"
	"github.com/saranaauttama-afk/makhos-expo/internal/tt"
)

type Position = position.Position
type Move = movegen.Move
type Player = position.Player
type Table = tt.Table
type Info = search.Info
type Result = search.Result

const (
	P1 = position.P1
	P2 = position.P2
)

func InitialPosition() Position {
	return position.Initial()
}

// GenerateMoves returns the legal move set for pos in the generator's own
// order; search reorders on top of this.
func GenerateMoves(pos Position) []Move {
	return movegen.GenerateMoves(pos)
}

func ApplyMove(pos Position, m Move) Position {
	return movegen.ApplyMove(pos, m)
}

func IsTerminal(pos Position) bool {
	return pos.IsTerminal()
}

func IsDrawByInactivity(pos Position) bool {
	return pos.IsDrawByInactivity()
}

// Evaluate returns a static score from pos.Side's perspective.
func Evaluate(pos Position) int {
	return eval.Evaluate(pos)
}

func NewTable() *Table {
	return tt.New()
}

// IterativeDeepening searches rootPosition for up to timeMs milliseconds.
// table may be nil; onInfo, if non-nil, is invoked synchronously after each
// completed depth.
func IterativeDeepening(rootPosition Position, timeMs int, table *Table, onInfo func(Info)) Result {
	return search.IterativeDeepening(rootPosition, timeMs, table, onInfo)
}

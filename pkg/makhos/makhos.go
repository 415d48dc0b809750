// Package makhos is the stable public surface over the Thai checkers
// engine: position representation, rule-exact move generation, static
// evaluation, and time-bounded search. Everything here is a thin re-export
// of internal/engine; callers should depend on this package, not on
// internal/*.
package makhos

import "github.com/saranaauttama-afk/makhos-expo/internal/engine"

type (
	Position = engine.Position
	Move     = engine.Move
	Player   = engine.Player
	Table    = engine.Table
	Info     = engine.Info
	Result   = engine.Result
)

const (
	P1 = engine.P1
	P2 = engine.P2
)

func InitialPosition() Position             { return engine.InitialPosition() }
func GenerateMoves(pos Position) []Move      { return engine.GenerateMoves(pos) }
func ApplyMove(pos Position, m Move) Position { return engine.ApplyMove(pos, m) }
func IsTerminal(pos Position) bool           { return engine.IsTerminal(pos) }
func IsDrawByInactivity(pos Position) bool   { return engine.IsDrawByInactivity(pos) }
func Evaluate(pos Position) int              { return engine.Evaluate(pos) }
func NewTable() *Table                       { return engine.NewTable() }

func IterativeDeepening(rootPosition Position, timeMs int, table *Table, onInfo func(Info)) Result {
	return engine.IterativeDeepening(rootPosition, timeMs, table, onInfo)
}

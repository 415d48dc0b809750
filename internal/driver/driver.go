// Package driver is a thin stateful game-loop wrapper around the engine:
// it tracks position history and lets a caller play and rewind moves
// without hand-threading positions itself. It is not part of the core
// search surface -- it exists for cmd/makhos's interactive play mode.
package driver

import (
	"github.com/saranaauttama-afk/makhos-expo/internal/engine"
	"github.com/saranaauttama-afk/makhos-expo/internal/herr"
)

type historyEntry struct {
	move   engine.Move
	before engine.Position
}

// Runner drives a single game: current position plus the move history
// needed to rewind. Logger receives each applied move and any PerformMove
// error from PlaySearchMove; it defaults to herr.DefaultLogger on first use.
type Runner struct {
	Logger  herr.Logger
	pos     engine.Position
	history []historyEntry
}

func NewRunner() *Runner {
	return &Runner{pos: engine.InitialPosition()}
}

func (r *Runner) logger() herr.Logger {
	if r.Logger == nil {
		r.Logger = herr.DefaultLogger
	}
	return r.Logger
}

func (r *Runner) Position() engine.Position {
	return r.pos
}

func (r *Runner) IsNew() bool {
	return len(r.history) == 0
}

// LastMove returns the most recently applied move, if any.
func (r *Runner) LastMove() herr.Optional[engine.Move] {
	if len(r.history) == 0 {
		return herr.Empty[engine.Move]()
	}
	return herr.Some(r.history[len(r.history)-1].move)
}

// PerformMove applies m after verifying it is a member of
// engine.GenerateMoves(r.Position()); it returns a wrapped error rather
// than corrupting the position on a move drawn from the wrong position.
func (r *Runner) PerformMove(m engine.Move) herr.Error {
	legal := false
	for _, candidate := range engine.GenerateMoves(r.pos) {
		if candidate.Equal(m) {
			legal = true
			break
		}
	}
	if !legal {
		return herr.Errorf("PerformMove: %v is not legal in the current position", m)
	}
	r.history = append(r.history, historyEntry{move: m, before: r.pos})
	r.pos = engine.ApplyMove(r.pos, m)
	r.logger().Printf("performed %v", m)
	return herr.NilError
}

// Rewind undoes moves until len(history) == length.
func (r *Runner) Rewind(length int) herr.Error {
	if length < 0 || length > len(r.history) {
		return herr.Errorf("Rewind: length %d out of range [0, %d]", length, len(r.history))
	}
	for len(r.history) > length {
		last := r.history[len(r.history)-1]
		r.pos = last.before
		r.history = r.history[:len(r.history)-1]
	}
	return herr.NilError
}

func (r *Runner) Reset() {
	r.pos = engine.InitialPosition()
	r.history = nil
}

// PlaySearchMove runs IterativeDeepening from the current position and, if
// a move was found, applies it. It returns the search result so a caller
// can report depth/score/nodes.
func (r *Runner) PlaySearchMove(timeMs int, table *engine.Table, onInfo func(engine.Info)) engine.Result {
	result := engine.IterativeDeepening(r.pos, timeMs, table, onInfo)
	if result.Best.HasValue() {
		if err := r.PerformMove(result.Best.Value()); !herr.IsNil(err) {
			r.logger().Println(err.Error())
		}
	}
	return result
}

// GameOver reports whether the current position is terminal (one side has
// no pieces, or the side to move has no legal moves) or drawn by
// inactivity.
func (r *Runner) GameOver() bool {
	if engine.IsTerminal(r.pos) || engine.IsDrawByInactivity(r.pos) {
		return true
	}
	return len(engine.GenerateMoves(r.pos)) == 0
}

// Winner returns the player with remaining pieces when the game is over by
// elimination or by the side to move having no legal moves (that side has
// lost), or false if the game isn't over or ended by the inactivity draw.
func (r *Runner) Winner() (engine.Player, bool) {
	if engine.IsDrawByInactivity(r.pos) {
		return 0, false
	}
	if r.pos.PieceCount(engine.P1) == 0 {
		return engine.P2, true
	}
	if r.pos.PieceCount(engine.P2) == 0 {
		return engine.P1, true
	}
	if len(engine.GenerateMoves(r.pos)) == 0 {
		return r.pos.Side.Other(), true
	}
	return 0, false
}

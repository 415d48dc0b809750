// Package position implements the Makhos position representation: four
// piece bitboards, the side to move, and the halfmove clock used for the
// inactivity draw rule.
package position

import "github.com/saranaauttama-afk/makhos-expo/internal/board"

type Player int

const (
	P1 Player = iota
	P2
)

func (p Player) Other() Player {
	if p == P1 {
		return P2
	}
	return P1
}

func (p Player) String() string {
	if p == P1 {
		return "P1"
	}
	return "P2"
}

// Position is an immutable value; ApplyMove (in package movegen) produces a
// new Position rather than mutating one in place.
type Position struct {
	P1Men, P1Kings board.Bitboard
	P2Men, P2Kings board.Bitboard
	Side           Player
	HalfmoveClock  int
}

// Initial returns the starting Makhos position: P2 men on the top two rows
// (squares 0..7), P1 men on the bottom two rows (squares 24..31), no kings,
// P1 to move.
func Initial() Position {
	var p2Men, p1Men board.Bitboard
	for i := 0; i < 8; i++ {
		p2Men = p2Men.Set(i)
	}
	for i := 24; i < 32; i++ {
		p1Men = p1Men.Set(i)
	}
	return Position{
		P1Men: p1Men,
		P2Men: p2Men,
		Side:  P1,
	}
}

func (p Position) MoverMen() board.Bitboard {
	if p.Side == P1 {
		return p.P1Men
	}
	return p.P2Men
}

func (p Position) MoverKings() board.Bitboard {
	if p.Side == P1 {
		return p.P1Kings
	}
	return p.P2Kings
}

func (p Position) OpponentMen() board.Bitboard {
	if p.Side == P1 {
		return p.P2Men
	}
	return p.P1Men
}

func (p Position) OpponentKings() board.Bitboard {
	if p.Side == P1 {
		return p.P2Kings
	}
	return p.P1Kings
}

func (p Position) MoverAll() board.Bitboard {
	return p.MoverMen() | p.MoverKings()
}

func (p Position) OpponentAll() board.Bitboard {
	return p.OpponentMen() | p.OpponentKings()
}

func (p Position) Occupied() board.Bitboard {
	return p.P1Men | p.P1Kings | p.P2Men | p.P2Kings
}

// PromotionRow returns the row on which a man belonging to player promotes.
func PromotionRow(player Player) int {
	if player == P1 {
		return 0
	}
	return 7
}

// IsPromotionSquare reports whether index is player's promotion row.
func IsPromotionSquare(index int, player Player) bool {
	return board.RowColFromIndex(index).Row == PromotionRow(player)
}

// ForwardDirs returns the two directions a man belonging to player may move
// or capture in: P1 moves toward row 0 (UL, UR), P2 moves toward row 7
// (DL, DR).
func ForwardDirs(player Player) [2]board.Dir {
	if player == P1 {
		return [2]board.Dir{board.UL, board.UR}
	}
	return [2]board.Dir{board.DL, board.DR}
}

func isForward(player Player, d board.Dir) bool {
	fwd := ForwardDirs(player)
	return d == fwd[0] || d == fwd[1]
}

// IsForwardDir reports whether d is a forward direction for player.
func IsForwardDir(player Player, d board.Dir) bool {
	return isForward(player, d)
}

// PieceCount returns the total number of pieces (men + kings) for player.
func (p Position) PieceCount(player Player) int {
	if player == P1 {
		return p.P1Men.PopCount() + p.P1Kings.PopCount()
	}
	return p.P2Men.PopCount() + p.P2Kings.PopCount()
}

// IsTerminal reports whether either side has zero pieces. This is the
// narrow, cheap terminal test; combined with "side to move has no legal
// moves" (which requires move generation) it forms the full terminal
// condition used by the search and engine layers.
func (p Position) IsTerminal() bool {
	return p.PieceCount(P1) == 0 || p.PieceCount(P2) == 0
}

// IsDrawByInactivity is the sole built-in draw rule: each side has at most
// two pieces and the halfmove clock has reached 20.
func (p Position) IsDrawByInactivity() bool {
	return p.PieceCount(P1) <= 2 && p.PieceCount(P2) <= 2 && p.HalfmoveClock >= 20
}

// Clone returns a shallow value copy. Position holds only value types, so
// this is just `p` by value, kept as a named method to mirror the spec's
// lifecycle description and to give callers an explicit copy point.
func (p Position) Clone() Position {
	return p
}

package movegen

import (
	"github.com/saranaauttama-afk/makhos-expo/internal/board"
	"github.com/saranaauttama-afk/makhos-expo/internal/position"
)

// ApplyMove returns the position reached after pos.Side plays m. It does not
// validate that m is legal for pos; callers are expected to only apply moves
// drawn from GenerateMoves(pos).
func ApplyMove(pos position.Position, m Move) position.Position {
	next := pos.Clone()
	mover := pos.Side
	wasKing := pos.MoverKings().Test(m.From)

	setMen, setKings := moverBitboards(&next, mover)
	*setMen = setMen.Clear(m.From)
	*setKings = setKings.Clear(m.From)

	if wasKing || m.Promote {
		*setKings = setKings.Set(m.To)
	} else {
		*setMen = setMen.Set(m.To)
	}

	oppMen, oppKings := opponentBitboards(&next, mover)
	for _, sq := range m.Captured {
		*oppMen = oppMen.Clear(sq)
		*oppKings = oppKings.Clear(sq)
	}

	if m.IsCapture() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = pos.HalfmoveClock + 1
	}

	next.Side = mover.Other()
	return next
}

func moverBitboards(p *position.Position, mover position.Player) (*board.Bitboard, *board.Bitboard) {
	if mover == position.P1 {
		return &p.P1Men, &p.P1Kings
	}
	return &p.P2Men, &p.P2Kings
}

func opponentBitboards(p *position.Position, mover position.Player) (*board.Bitboard, *board.Bitboard) {
	if mover == position.P1 {
		return &p.P2Men, &p.P2Kings
	}
	return &p.P1Men, &p.P1Kings
}

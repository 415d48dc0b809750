// Package zobrist implements position hashing: one random 32-bit key per
// piece class per square, plus a side-to-move key, initialized once at
// process start from a fixed seed so results are reproducible across runs.
package zobrist

import (
	"math/rand"

	"github.com/saranaauttama-afk/makhos-expo/internal/board"
	"github.com/saranaauttama-afk/makhos-expo/internal/position"
)

// Fixed seed: hash values are reproducible across runs only while this
// table keeps its shape (class order, square order).
const seed = 0x6D616B686F73 // "makhos" in hex, arbitrary but fixed

type class int

const (
	p1Men class = iota
	p1Kings
	p2Men
	p2Kings
	numClasses
)

var keys [numClasses][board.NumSquares]uint32
var sideKey uint32

func init() {
	r := rand.New(rand.NewSource(seed))
	for c := class(0); c < numClasses; c++ {
		for s := 0; s < board.NumSquares; s++ {
			keys[c][s] = r.Uint32()
		}
	}
	sideKey = r.Uint32()
}

// Hash returns pos's Zobrist key: XOR of every occupied (class, square) key,
// XORed with the side key iff P1 is to move.
func Hash(pos position.Position) uint32 {
	var h uint32
	pos.P1Men.EachIndex(func(i int) { h ^= keys[p1Men][i] })
	pos.P1Kings.EachIndex(func(i int) { h ^= keys[p1Kings][i] })
	pos.P2Men.EachIndex(func(i int) { h ^= keys[p2Men][i] })
	pos.P2Kings.EachIndex(func(i int) { h ^= keys[p2Kings][i] })
	if pos.Side == position.P1 {
		h ^= sideKey
	}
	return h
}

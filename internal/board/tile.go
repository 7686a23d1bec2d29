// Package board implements the match-3 grid: tile records, the match-free
// starting layout, run detection, gravity compaction and the move finder.
// It is UI-agnostic and deterministic for a given random source.
package board

import (
	"errors"

	"github.com/vovakirdan/match3/internal/core"
)

// Identity is a tile type: an index into a fixed palette of K types.
type Identity int

// Empty marks a cleared slot that has not been refilled yet.
const Empty Identity = -1

// IsEmpty reports whether the identity is the cleared-slot sentinel.
func (id Identity) IsEmpty() bool {
	return id == Empty
}

// MinTileTypes is the smallest palette for which a match-free layout is
// always possible.
const MinTileTypes = 3

var (
	ErrOutOfBounds     = errors.New("board: coordinate out of bounds")
	ErrInvalidSize     = errors.New("board: invalid grid size")
	ErrTooFewTileTypes = errors.New("board: too few tile types")
)

// Tile is the record held by a grid slot. Column and Row always equal the
// slot that holds it; only Identity moves between slots.
type Tile struct {
	Identity Identity
	Column   int
	Row      int
}

// Coord returns the slot position stored in the tile.
func (t Tile) Coord() core.Coord {
	return core.C(t.Column, t.Row)
}

// Source is the subset of *rand.Rand the board needs.
// Tests substitute scripted sources to force specific refills.
type Source interface {
	Intn(n int) int
}

// Spawn records a fresh identity placed into an empty slot.
type Spawn struct {
	At       core.Coord
	Identity Identity
}

// Move records one tile identity falling from one slot to another.
type Move struct {
	From     core.Coord
	To       core.Coord
	Identity Identity
}

// Swap is a pair of adjacent slots.
type Swap struct {
	A core.Coord
	B core.Coord
}

package board

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/match3/internal/core"
)

// Grid is a fixed-size W×H board of tiles stored row-major: index = y*W + x.
// Row 0 is the bottom row.
type Grid struct {
	w     int
	h     int
	tiles []Tile
}

// NewGrid creates a grid whose slots are all Empty.
func NewGrid(w, h int) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	g := &Grid{
		w:     w,
		h:     h,
		tiles: make([]Tile, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.tiles[g.index(core.C(x, y))] = Tile{Identity: Empty, Column: x, Row: y}
		}
	}
	return g, nil
}

// FromRows builds a grid from identity rows listed top row first, the way a
// board reads on screen. All rows must have the same length.
func FromRows(rows [][]Identity) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSize)
	}
	h := len(rows)
	w := len(rows[0])
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidSize, i, len(row), w)
		}
		y := h - 1 - i
		for x, id := range row {
			g.at(core.C(x, y)).Identity = id
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c core.Coord) int {
	return c.Y*g.w + c.X
}

// at returns the tile at an in-bounds coordinate.
func (g *Grid) at(c core.Coord) *Tile {
	return &g.tiles[g.index(c)]
}

// identity returns the identity at c, or Empty when c is off the board.
func (g *Grid) identity(c core.Coord) Identity {
	if !g.InBounds(c) {
		return Empty
	}
	return g.at(c).Identity
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

func (g *Grid) checkBounds(c core.Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.w, g.h)
	}
	return nil
}

// Get returns a copy of the tile at c.
func (g *Grid) Get(c core.Coord) (Tile, error) {
	if err := g.checkBounds(c); err != nil {
		return Tile{}, err
	}
	return *g.at(c), nil
}

// Set stores an identity in the slot at c.
func (g *Grid) Set(c core.Coord, id Identity) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	g.at(c).Identity = id
	return nil
}

// Swap exchanges the identities of two slots. Each tile keeps the
// coordinates of the slot holding it.
func (g *Grid) Swap(a, b core.Coord) error {
	if err := g.checkBounds(a); err != nil {
		return err
	}
	if err := g.checkBounds(b); err != nil {
		return err
	}
	ta, tb := g.at(a), g.at(b)
	ta.Identity, tb.Identity = tb.Identity, ta.Identity
	ta.Column, ta.Row = a.X, a.Y
	tb.Column, tb.Row = b.X, b.Y
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{
		w:     g.w,
		h:     g.h,
		tiles: tiles,
	}
}

// Equal returns true if two grids have the same dimensions and identities.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, t := range g.tiles {
		if t != other.tiles[i] {
			return false
		}
	}
	return true
}

// Rows returns the identities top row first, mirroring FromRows.
func (g *Grid) Rows() [][]Identity {
	rows := make([][]Identity, g.h)
	for i := range rows {
		y := g.h - 1 - i
		rows[i] = make([]Identity, g.w)
		for x := 0; x < g.w; x++ {
			rows[i][x] = g.at(core.C(x, y)).Identity
		}
	}
	return rows
}

// EmptyCount returns the number of cleared slots.
func (g *Grid) EmptyCount() int {
	count := 0
	for _, t := range g.tiles {
		if t.Identity.IsEmpty() {
			count++
		}
	}
	return count
}

// String renders identities top row first; cleared slots are '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	for i, row := range g.Rows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for x, id := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if id.IsEmpty() {
				sb.WriteByte('.')
			} else {
				fmt.Fprintf(&sb, "%d", id)
			}
		}
	}
	return sb.String()
}

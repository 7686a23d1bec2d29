// Package input turns player text into commands and keeps the tile the
// player picked last.
package input

import (
	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/core"
)

// Gate reports whether the board accepts input. *engine.Engine satisfies it.
type Gate interface {
	IsAnimating() bool
	IsGameOver() bool
}

// Outcome is the effect of one pick.
type Outcome int

const (
	OutcomeIgnored    Outcome = iota // board busy, game over or off the board
	OutcomeSelected                  // first tile picked
	OutcomeDeselected                // same tile picked twice
	OutcomeMoved                     // non-adjacent tile picked; it becomes the selection
	OutcomePaired                    // adjacent tile picked; a swap is ready
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeMoved:
		return "moved"
	case OutcomePaired:
		return "paired"
	default:
		return "unknown"
	}
}

// Selection holds the previously selected tile of one player.
type Selection struct {
	width, height int
	selected      core.Coord
	active        bool
}

// NewSelection creates an empty selection for a board of the given size.
func NewSelection(width, height int) *Selection {
	return &Selection{width: width, height: height}
}

// Pick selects the tile at c. When c is adjacent to the previous selection
// the pair is returned as a swap and the selection is cleared.
func (s *Selection) Pick(g Gate, c core.Coord) (board.Swap, Outcome) {
	if g.IsAnimating() || g.IsGameOver() || !s.inBounds(c) {
		return board.Swap{}, OutcomeIgnored
	}

	switch {
	case !s.active:
		s.selected, s.active = c, true
		return board.Swap{}, OutcomeSelected
	case s.selected == c:
		s.Clear()
		return board.Swap{}, OutcomeDeselected
	case s.selected.Adjacent(c):
		sw := board.Swap{A: s.selected, B: c}
		s.Clear()
		return sw, OutcomePaired
	default:
		s.selected = c
		return board.Swap{}, OutcomeMoved
	}
}

// Selected returns the selected tile, if any.
func (s *Selection) Selected() (core.Coord, bool) {
	return s.selected, s.active
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.selected, s.active = core.Coord{}, false
}

func (s *Selection) inBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < s.width && c.Y >= 0 && c.Y < s.height
}

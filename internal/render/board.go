// Package render draws the board and its HUD into a core.Screen.
package render

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/session"
)

// Board geometry in screen cells.
const (
	marginLeft = 4 // row label, space, axis
	cellWidth  = 3
	hudLines   = 3 // two HUD lines and a blank line
)

// HUD is the text shown above the board.
type HUD struct {
	Score     int
	High      int
	Combo     int
	Timed     bool
	Remaining time.Duration
	Message   string // shown under the board when not empty
}

// View is everything needed to draw one frame.
type View struct {
	Rows     [][]board.Identity // top row first, as board.Grid.Rows returns
	Selected *core.Coord
	Cursor   *core.Coord
	Hint     *board.Swap
	Active   []core.Coord // tiles of the pass being animated
	Flash    bool         // highlight Active tiles in this frame
	HUD      HUD
}

// SessionView builds the view of a running session.
func SessionView(s *session.Session, selected *core.Coord) View {
	sum := s.Summary()
	clock := s.Clock()
	return View{
		Rows:     s.Engine().Grid().Rows(),
		Selected: selected,
		HUD: HUD{
			Score:     sum.Score,
			High:      sum.HighScore,
			Combo:     sum.LastCombo,
			Timed:     clock.Timed(),
			Remaining: clock.Remaining(),
		},
	}
}

// Board draws the view. Row 0 of the board is drawn at the bottom, with row
// labels on the left and column labels underneath.
func Board(v View) *core.Screen {
	h := len(v.Rows)
	w := 0
	if h > 0 {
		w = len(v.Rows[0])
	}

	top := FormatScore(v.HUD.Score, v.HUD.High)
	bottom := FormatCombo(v.HUD.Combo)
	if v.HUD.Timed {
		bottom += "   Time " + FormatClock(v.HUD.Remaining)
	}

	width := max(marginLeft+cellWidth*w, len([]rune(top)), len([]rune(bottom)), len([]rune(v.HUD.Message)))
	height := hudLines + h + 2
	if v.HUD.Message != "" {
		height++
	}
	scr := core.NewScreen(width, height)

	scr.DrawTextColored(0, 0, top, core.ColorCyan)
	scr.DrawTextColored(0, 1, bottom, core.ColorCyan)

	for i, row := range v.Rows {
		y := h - 1 - i
		sy := hudLines + i
		scr.DrawText(0, sy, fmt.Sprintf("%2d", y))
		scr.Set(marginLeft-1, sy, '│')
		for x, id := range row {
			drawTile(scr, v, core.C(x, y), id, sy)
		}
	}

	axis := hudLines + h
	scr.Set(marginLeft-1, axis, '└')
	scr.DrawHLine(marginLeft, axis, cellWidth*w, '─')
	for x := 0; x < w; x++ {
		label := strconv.Itoa(x)
		scr.DrawText(marginLeft+cellWidth*x+2-len(label), axis+1, label)
	}

	if v.HUD.Message != "" {
		scr.DrawTextColored(0, axis+2, v.HUD.Message, core.ColorYellow)
	}
	return scr
}

func drawTile(scr *core.Screen, v View, c core.Coord, id board.Identity, sy int) {
	sx := marginLeft + cellWidth*c.X
	glyph, color := Glyph(id), core.TileColor(int(id))
	if v.Flash && slices.Contains(v.Active, c) {
		color = core.ColorWhite
		if id.IsEmpty() {
			glyph = '*'
		}
	}
	scr.SetColored(sx+1, sy, glyph, color)

	switch {
	case v.Selected != nil && *v.Selected == c:
		scr.Set(sx, sy, '[')
		scr.Set(sx+2, sy, ']')
	case v.Cursor != nil && *v.Cursor == c:
		scr.SetColored(sx, sy, '(', core.ColorWhite)
		scr.SetColored(sx+2, sy, ')', core.ColorWhite)
	case v.Hint != nil && (v.Hint.A == c || v.Hint.B == c):
		scr.SetColored(sx, sy, '<', core.ColorGray)
		scr.SetColored(sx+2, sy, '>', core.ColorGray)
	}
}

// Glyph returns the character for a tile identity. Cleared slots are dots.
func Glyph(id board.Identity) rune {
	switch {
	case id.IsEmpty():
		return '.'
	case id < 10:
		return rune('0' + id)
	default:
		return rune('a' + id - 10)
	}
}

// FormatScore renders the score line.
func FormatScore(score, high int) string {
	return fmt.Sprintf("Score %d   High %d", score, high)
}

// FormatCombo renders the combo counter.
func FormatCombo(combo int) string {
	return fmt.Sprintf("Combo x%d", combo)
}

// FormatClock renders remaining time as "mm : ss", rounding partial seconds
// up so the clock reads 00 : 00 only when the time is up.
func FormatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	secs := int((remaining + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d : %02d", secs/60, secs%60)
}

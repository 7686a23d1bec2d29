package board

import "github.com/vovakirdan/match3/internal/core"

// FindSwaps lists every adjacent swap that would create at least one run.
// Each pair is reported once, with B to the right of or above A.
func FindSwaps(g *Grid) []Swap {
	var swaps []Swap
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			a := core.C(x, y)
			for _, d := range [...]core.Dir{core.DirRight, core.DirUp} {
				b := a.Step(d)
				if !g.InBounds(b) {
					continue
				}
				if g.swapMatches(a, b) {
					swaps = append(swaps, Swap{A: a, B: b})
				}
			}
		}
	}
	return swaps
}

// HasSwaps reports whether any swap on the board would match.
func HasSwaps(g *Grid) bool {
	return len(FindSwaps(g)) > 0
}

// swapMatches tries the swap in place and restores the board before returning.
func (g *Grid) swapMatches(a, b core.Coord) bool {
	ta, tb := g.at(a), g.at(b)
	if ta.Identity == tb.Identity || ta.Identity.IsEmpty() || tb.Identity.IsEmpty() {
		return false
	}
	ta.Identity, tb.Identity = tb.Identity, ta.Identity
	matched := g.runLength(a) >= MinRun || g.runLength(b) >= MinRun
	ta.Identity, tb.Identity = tb.Identity, ta.Identity
	return matched
}

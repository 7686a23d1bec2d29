package board

import (
	"fmt"

	"github.com/vovakirdan/match3/internal/core"
)

// Generate creates a w×h grid with k tile types and no run of three.
//
// Slots are filled column by column. Each slot draws uniformly from the k
// identities minus the one that would extend a pair directly to its left and
// minus the one that would extend a pair directly below it. Only those two
// neighbours per axis are checked, so at most two identities are excluded
// and the candidate set is never empty for k >= 3.
func Generate(w, h, k int, rng Source) (*Grid, error) {
	if k < MinTileTypes {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrTooFewTileTypes, k, MinTileTypes)
	}
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}

	candidates := make([]Identity, 0, k)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			candidates = startingCandidates(g, x, y, k, candidates[:0])
			g.at(core.C(x, y)).Identity = candidates[rng.Intn(len(candidates))]
		}
	}
	return g, nil
}

// startingCandidates appends to dst the identities allowed at (x, y).
func startingCandidates(g *Grid, x, y, k int, dst []Identity) []Identity {
	excludeX, excludeY := Empty, Empty
	if x > 1 {
		left := g.at(core.C(x-1, y)).Identity
		if left == g.at(core.C(x-2, y)).Identity {
			excludeX = left
		}
	}
	if y > 1 {
		below := g.at(core.C(x, y-1)).Identity
		if below == g.at(core.C(x, y-2)).Identity {
			excludeY = below
		}
	}

	for i := 0; i < k; i++ {
		id := Identity(i)
		if id == excludeX || id == excludeY {
			continue
		}
		dst = append(dst, id)
	}
	return dst
}

// Fill gives every empty slot a uniformly random identity in [0, k).
// Unlike Generate no adjacency constraint is applied. Spawns are returned
// column by column, bottom slot first.
func Fill(g *Grid, k int, rng Source) []Spawn {
	var spawns []Spawn
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			t := g.at(core.C(x, y))
			if !t.Identity.IsEmpty() {
				continue
			}
			t.Identity = Identity(rng.Intn(k))
			spawns = append(spawns, Spawn{At: core.C(x, y), Identity: t.Identity})
		}
	}
	return spawns
}

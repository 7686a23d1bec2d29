package board

import (
	"sort"

	"github.com/vovakirdan/match3/internal/core"
)

// MinRun is the shortest run of equal identities that counts as a match.
const MinRun = 3

// MatchSet is a deduplicated set of matched slots.
type MatchSet struct {
	index  map[core.Coord]struct{}
	coords []core.Coord
}

// NewMatchSet returns an empty set.
func NewMatchSet() *MatchSet {
	return &MatchSet{index: make(map[core.Coord]struct{})}
}

// Add inserts c unless it is already present.
func (m *MatchSet) Add(c core.Coord) {
	if _, ok := m.index[c]; ok {
		return
	}
	m.index[c] = struct{}{}
	m.coords = append(m.coords, c)
}

// Contains reports whether c is in the set.
func (m *MatchSet) Contains(c core.Coord) bool {
	_, ok := m.index[c]
	return ok
}

// Len returns the number of distinct slots.
func (m *MatchSet) Len() int {
	return len(m.coords)
}

// Empty reports whether the set has no slots.
func (m *MatchSet) Empty() bool {
	return len(m.coords) == 0
}

// Coords returns the slots ordered bottom row first, then by column.
func (m *MatchSet) Coords() []core.Coord {
	out := make([]core.Coord, len(m.coords))
	copy(out, m.coords)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}

// FindMatches returns every slot that is part of a horizontal or vertical run
// of at least MinRun equal, non-empty identities.
//
// Each slot traces both directions of each axis. The two sides of an axis are
// counted together, so a slot in the middle of a run sees the whole run.
func FindMatches(g *Grid) *MatchSet {
	set := NewMatchSet()
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			seed := core.C(x, y)
			id := g.at(seed).Identity
			if id.IsEmpty() {
				continue
			}
			for _, axis := range [...][2]core.Dir{
				{core.DirLeft, core.DirRight},
				{core.DirDown, core.DirUp},
			} {
				run := g.trace(seed, axis[0], id)
				run = append(run, g.trace(seed, axis[1], id)...)
				if len(run) < MinRun-1 {
					continue
				}
				set.Add(seed)
				for _, c := range run {
					set.Add(c)
				}
			}
		}
	}
	return set
}

// trace collects the contiguous slots holding id, starting next to from and
// moving away from it in direction d.
func (g *Grid) trace(from core.Coord, d core.Dir, id Identity) []core.Coord {
	var run []core.Coord
	for c := from.Step(d); g.identity(c) == id; c = c.Step(d) {
		run = append(run, c)
	}
	return run
}

// runLength returns the longest axis run through c, counting c itself.
func (g *Grid) runLength(c core.Coord) int {
	id := g.identity(c)
	if id.IsEmpty() {
		return 0
	}
	horizontal := 1 + len(g.trace(c, core.DirLeft, id)) + len(g.trace(c, core.DirRight, id))
	vertical := 1 + len(g.trace(c, core.DirDown, id)) + len(g.trace(c, core.DirUp, id))
	return core.Max(horizontal, vertical)
}

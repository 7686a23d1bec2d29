package board_test

import (
	"testing"

	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/core"
)

func TestFindMatchesSingleRow(t *testing.T) {
	tests := []struct {
		name     string
		row      []board.Identity
		expected []core.Coord
	}{
		{
			name:     "leading run of three",
			row:      []board.Identity{1, 1, 1, 2, 3},
			expected: []core.Coord{core.C(0, 0), core.C(1, 0), core.C(2, 0)},
		},
		{
			name:     "two pairs do not match",
			row:      []board.Identity{1, 1, 2, 2, 3},
			expected: nil,
		},
		{
			name:     "trailing run of four",
			row:      []board.Identity{3, 2, 2, 2, 2},
			expected: []core.Coord{core.C(1, 0), core.C(2, 0), core.C(3, 0), core.C(4, 0)},
		},
		{
			name:     "cleared slots never match",
			row:      []board.Identity{board.Empty, board.Empty, board.Empty, 1, 2},
			expected: nil,
		},
		{
			name:     "gap breaks run",
			row:      []board.Identity{1, 1, board.Empty, 1, 1},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.row)
			got := board.FindMatches(g).Coords()
			if len(got) != len(tt.expected) {
				t.Fatalf("FindMatches() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("FindMatches()[%d] = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestFindMatchesVertical(t *testing.T) {
	g := mustGrid(t,
		[]board.Identity{0, 1},
		[]board.Identity{2, 1},
		[]board.Identity{0, 1},
		[]board.Identity{2, 0},
	)

	m := board.FindMatches(g)
	if m.Len() != 3 {
		t.Fatalf("expected 3 matched slots, got %d: %v", m.Len(), m.Coords())
	}
	for y := 1; y <= 3; y++ {
		if !m.Contains(core.C(1, y)) {
			t.Errorf("expected (1,%d) in match set", y)
		}
	}
}

func TestFindMatchesCrossDeduplicates(t *testing.T) {
	// An L shape shares its corner between a row and a column run.
	g := mustGrid(t,
		[]board.Identity{4, 0, 1},
		[]board.Identity{4, 2, 3},
		[]board.Identity{4, 4, 4},
	)

	m := board.FindMatches(g)
	if m.Len() != 5 {
		t.Errorf("expected 5 distinct slots, got %d: %v", m.Len(), m.Coords())
	}
	if !m.Contains(core.C(0, 0)) {
		t.Error("corner slot should be matched")
	}
}

func TestFindMatchesIgnoresDiagonals(t *testing.T) {
	g := mustGrid(t,
		[]board.Identity{1, 0, 2},
		[]board.Identity{0, 1, 0},
		[]board.Identity{2, 0, 1},
	)

	if m := board.FindMatches(g); !m.Empty() {
		t.Errorf("diagonal run should not match, got %v", m.Coords())
	}
}

func TestMatchSetAdd(t *testing.T) {
	m := board.NewMatchSet()
	m.Add(core.C(2, 1))
	m.Add(core.C(0, 0))
	m.Add(core.C(2, 1))

	if m.Len() != 2 {
		t.Errorf("expected 2 slots after duplicate add, got %d", m.Len())
	}
	coords := m.Coords()
	if coords[0] != core.C(0, 0) || coords[1] != core.C(2, 1) {
		t.Errorf("Coords() not ordered: %v", coords)
	}
}

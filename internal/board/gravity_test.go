package board_test

import (
	"testing"

	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/core"
)

const e = board.Empty

func TestCompact(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]board.Identity
		expected string
		spawns   []int
		moves    int
	}{
		{
			name: "single gap",
			rows: [][]board.Identity{
				{1},
				{e},
				{2},
			},
			expected: ".\n1\n2",
			spawns:   []int{1},
			moves:    1,
		},
		{
			name: "order preserved",
			rows: [][]board.Identity{
				{3},
				{e},
				{2},
				{e},
				{1},
				{e},
			},
			expected: ".\n.\n.\n3\n2\n1",
			spawns:   []int{3},
			moves:    3,
		},
		{
			name: "columns independent",
			rows: [][]board.Identity{
				{1, e},
				{e, 4},
				{e, 5},
			},
			expected: ". .\n. 4\n1 5",
			spawns:   []int{2, 1},
			moves:    1,
		},
		{
			name: "already compact",
			rows: [][]board.Identity{
				{e, e},
				{2, e},
				{1, 3},
			},
			expected: ". .\n2 .\n1 3",
			spawns:   []int{1, 2},
			moves:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.rows...)
			plan := board.Compact(g)

			if got := g.String(); got != tt.expected {
				t.Errorf("after Compact got\n%s\nwant\n%s", got, tt.expected)
			}
			if len(plan.Moves) != tt.moves {
				t.Errorf("expected %d moves, got %d: %+v", tt.moves, len(plan.Moves), plan.Moves)
			}
			for x, n := range tt.spawns {
				if plan.Spawns[x] != n {
					t.Errorf("column %d: expected %d spawns, got %d", x, n, plan.Spawns[x])
				}
			}
		})
	}
}

func TestCompactIdempotent(t *testing.T) {
	g := mustGrid(t,
		[]board.Identity{e, 1, e},
		[]board.Identity{2, e, e},
		[]board.Identity{e, 3, 4},
	)

	board.Compact(g)
	settled := g.Clone()

	plan := board.Compact(g)
	if plan.Fallen() {
		t.Errorf("second Compact moved tiles: %+v", plan.Moves)
	}
	if !g.Equal(settled) {
		t.Errorf("second Compact changed the grid:\n%s\nwant\n%s", g, settled)
	}
}

func TestCompactMovesDescribeFall(t *testing.T) {
	g := mustGrid(t,
		[]board.Identity{7},
		[]board.Identity{e},
		[]board.Identity{e},
	)

	plan := board.Compact(g)
	if len(plan.Moves) != 1 {
		t.Fatalf("expected one move, got %d", len(plan.Moves))
	}
	mv := plan.Moves[0]
	if mv.From != core.C(0, 2) || mv.To != core.C(0, 0) || mv.Identity != 7 {
		t.Errorf("unexpected move %+v", mv)
	}
	if plan.SpawnCount() != 2 {
		t.Errorf("expected 2 spawns, got %d", plan.SpawnCount())
	}
}

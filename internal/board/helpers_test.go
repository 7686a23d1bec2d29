package board_test

import (
	"testing"

	"github.com/vovakirdan/match3/internal/board"
)

// mustGrid builds a grid from rows listed top first.
func mustGrid(t *testing.T, rows ...[]board.Identity) *board.Grid {
	t.Helper()
	g, err := board.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	return g
}

// scripted replays a fixed sequence of values, each reduced modulo n.
type scripted struct {
	values []int
	pos    int
}

func (s *scripted) Intn(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

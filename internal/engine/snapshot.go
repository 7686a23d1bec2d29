package engine

import "github.com/vovakirdan/match3/internal/board"

// Snapshot captures the engine state for determinism tests and display.
type Snapshot struct {
	State           State
	Combo           int
	Score           int
	HighScore       int
	GameOverPending bool
	Rows            [][]board.Identity // top row first
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:           e.state,
		Combo:           e.combo,
		Score:           e.scores.Current(),
		HighScore:       e.scores.High(),
		GameOverPending: e.gameOverPending,
		Rows:            e.grid.Rows(),
	}
}

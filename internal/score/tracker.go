// Package score keeps the combo-scaled score of a session.
package score

import (
	"errors"
	"fmt"
)

// ErrInvalidRatio is returned when a scoring ratio is not positive.
var ErrInvalidRatio = errors.New("score: ratios must be positive")

// Tracker accumulates the current score and remembers the score of the last
// finished game. It lives for the whole process so the high score survives
// new games; it is not persisted.
type Tracker struct {
	tileRatio  int
	comboRatio int
	current    int
	high       int
}

// New creates a tracker. Each cleared tile is worth tileRatio points,
// multiplied by combo*comboRatio.
func New(tileRatio, comboRatio int) (*Tracker, error) {
	if tileRatio <= 0 || comboRatio <= 0 {
		return nil, fmt.Errorf("%w: tile=%d combo=%d", ErrInvalidRatio, tileRatio, comboRatio)
	}
	return &Tracker{
		tileRatio:  tileRatio,
		comboRatio: comboRatio,
	}, nil
}

// Delta returns the points for clearing matchCount tiles at the given combo.
func (t *Tracker) Delta(matchCount, combo int) int {
	return (matchCount * t.tileRatio) * (combo * t.comboRatio)
}

// AddScore adds the points for one clear and returns them.
func (t *Tracker) AddScore(matchCount, combo int) int {
	delta := t.Delta(matchCount, combo)
	t.current += delta
	return delta
}

// ResetCurrentScore sets the current score to zero at the start of a game.
func (t *Tracker) ResetCurrentScore() {
	t.current = 0
}

// Finalize records the current score as the high score.
//
// The high score is overwritten even when the current score is lower.
func (t *Tracker) Finalize() {
	t.high = t.current
}

// Current returns the running score.
func (t *Tracker) Current() int {
	return t.current
}

// High returns the score recorded by the last Finalize.
func (t *Tracker) High() int {
	return t.high
}

package render

import (
	"fmt"

	"github.com/vovakirdan/match3/internal/engine"
	"github.com/vovakirdan/match3/internal/session"
)

// MoveMessage describes the result of a resolved move.
func MoveMessage(res engine.Resolution) string {
	switch {
	case res.Reverted:
		return "No match. Swap undone."
	case res.Passes > 1:
		return fmt.Sprintf("+%d points, %d tiles, combo x%d!", res.Score, res.Cleared, res.Passes)
	default:
		return fmt.Sprintf("+%d points, %d tiles.", res.Score, res.Cleared)
	}
}

// GameOverMessage describes how a game ended.
func GameOverMessage(sum session.Summary) string {
	return fmt.Sprintf("Game over (%s). Final score %d.", sum.Reason, sum.Score)
}

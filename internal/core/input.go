package core

import "time"

// Action represents a semantic player intent, abstracted from the text or
// keys that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionSelect         // pick a tile; a second adjacent pick swaps
	ActionSwap           // swap two explicit tiles
	ActionHint           // show a swap that would match
	ActionTick           // advance the round clock
	ActionShow           // redraw the board
	ActionRestart        // start a new game
	ActionQuit           // exit the session
	ActionHelp           // list commands
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSelect:
		return "Select"
	case ActionSwap:
		return "Swap"
	case ActionHint:
		return "Hint"
	case ActionTick:
		return "Tick"
	case ActionShow:
		return "Show"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Command is one parsed player input.
type Command struct {
	Action  Action
	Coords  []Coord // one for Select, two for Swap
	Seconds float64 // Tick duration
}

// Duration returns the tick length.
func (c Command) Duration() time.Duration {
	return time.Duration(c.Seconds * float64(time.Second))
}

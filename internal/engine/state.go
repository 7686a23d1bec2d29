package engine

// State is a step of the resolution state machine.
type State int

const (
	StateIdle State = iota
	StateSwapping
	StateMatching
	StateClearing
	StateDropping
	StateRefilling
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSwapping:
		return "swapping"
	case StateMatching:
		return "matching"
	case StateClearing:
		return "clearing"
	case StateDropping:
		return "dropping"
	case StateRefilling:
		return "refilling"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Resolving reports whether a swap resolution is in flight.
func (s State) Resolving() bool {
	return s != StateIdle && s != StateGameOver
}

package engine

import (
	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/core"
)

// Observer receives a notification for every pass of a resolution.
// Calls happen on the engine's goroutine after the grid has been updated and
// before the pass barrier is awaited.
type Observer interface {
	OnSwapped(s board.Swap)
	OnReverted(s board.Swap)
	OnCleared(coords []core.Coord, combo, delta int)
	OnDropped(moves []board.Move)
	OnRefilled(spawns []board.Spawn)
	OnGameOver(finalScore int)
}

// NopObserver ignores every event. Embed it to implement only some methods.
type NopObserver struct{}

func (NopObserver) OnSwapped(board.Swap)             {}
func (NopObserver) OnReverted(board.Swap)            {}
func (NopObserver) OnCleared([]core.Coord, int, int) {}
func (NopObserver) OnDropped([]board.Move)           {}
func (NopObserver) OnRefilled([]board.Spawn)         {}
func (NopObserver) OnGameOver(int)                   {}

// EventKind identifies a recorded event.
type EventKind int

const (
	EventSwapped EventKind = iota
	EventReverted
	EventCleared
	EventDropped
	EventRefilled
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSwapped:
		return "swapped"
	case EventReverted:
		return "reverted"
	case EventCleared:
		return "cleared"
	case EventDropped:
		return "dropped"
	case EventRefilled:
		return "refilled"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a flattened copy of one Observer call.
type Event struct {
	Kind   EventKind
	Swap   board.Swap
	Coords []core.Coord
	Combo  int
	Delta  int
	Moves  []board.Move
	Spawns []board.Spawn
	Score  int
}

// Recorder is an Observer that keeps every event in order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnSwapped(s board.Swap) {
	r.Events = append(r.Events, Event{Kind: EventSwapped, Swap: s})
}

func (r *Recorder) OnReverted(s board.Swap) {
	r.Events = append(r.Events, Event{Kind: EventReverted, Swap: s})
}

func (r *Recorder) OnCleared(coords []core.Coord, combo, delta int) {
	r.Events = append(r.Events, Event{Kind: EventCleared, Coords: coords, Combo: combo, Delta: delta})
}

func (r *Recorder) OnDropped(moves []board.Move) {
	r.Events = append(r.Events, Event{Kind: EventDropped, Moves: moves})
}

func (r *Recorder) OnRefilled(spawns []board.Spawn) {
	r.Events = append(r.Events, Event{Kind: EventRefilled, Spawns: spawns})
}

func (r *Recorder) OnGameOver(finalScore int) {
	r.Events = append(r.Events, Event{Kind: EventGameOver, Score: finalScore})
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []EventKind {
	kinds := make([]EventKind, len(r.Events))
	for i, ev := range r.Events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

// observers fans events out to several observers.
type observers []Observer

func (o observers) OnSwapped(s board.Swap) {
	for _, obs := range o {
		obs.OnSwapped(s)
	}
}

func (o observers) OnReverted(s board.Swap) {
	for _, obs := range o {
		obs.OnReverted(s)
	}
}

func (o observers) OnCleared(coords []core.Coord, combo, delta int) {
	for _, obs := range o {
		obs.OnCleared(coords, combo, delta)
	}
}

func (o observers) OnDropped(moves []board.Move) {
	for _, obs := range o {
		obs.OnDropped(moves)
	}
}

func (o observers) OnRefilled(spawns []board.Spawn) {
	for _, obs := range o {
		obs.OnRefilled(spawns)
	}
}

func (o observers) OnGameOver(finalScore int) {
	for _, obs := range o {
		obs.OnGameOver(finalScore)
	}
}

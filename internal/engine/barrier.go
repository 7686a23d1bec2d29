package engine

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/match3/internal/core"
)

// Phase names the kind of tile transition a pass asks the presentation for.
type Phase int

const (
	PhaseSwap Phase = iota
	PhaseRevert
	PhaseClear
	PhaseDrop
	PhaseRefill
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSwap:
		return "swap"
	case PhaseRevert:
		return "revert"
	case PhaseClear:
		return "clear"
	case PhaseDrop:
		return "drop"
	case PhaseRefill:
		return "refill"
	default:
		return "unknown"
	}
}

// Pass is the set of tiles whose transitions must all finish before the
// engine moves on.
type Pass struct {
	Phase Phase
	Tiles []core.Coord
}

// Barrier blocks the engine until every tile of a pass has finished its
// transition.
type Barrier interface {
	Await(ctx context.Context, pass Pass) error
}

// Instant completes every pass immediately. It is the headless mode used by
// tests, simulations and the text frontend.
type Instant struct{}

// Await returns at once.
func (Instant) Await(context.Context, Pass) error {
	return nil
}

// SignalBarrier waits for an explicit completion signal per tile.
//
// Each pass is published on Passes. The presentation animates the tiles and
// calls Complete for each of them, from any goroutine. Every tile is awaited
// by its own task and the tasks are joined before Await returns. Cancelling
// the context abandons the pass.
type SignalBarrier struct {
	passes chan Pass

	mu      sync.Mutex
	pending map[core.Coord]chan struct{}
}

// NewSignalBarrier creates a barrier whose pass channel holds up to buffer
// unread passes.
func NewSignalBarrier(buffer int) *SignalBarrier {
	return &SignalBarrier{
		passes: make(chan Pass, buffer),
	}
}

// Passes returns the channel on which passes are announced.
func (b *SignalBarrier) Passes() <-chan Pass {
	return b.passes
}

// Await publishes the pass and blocks until all its tiles are complete.
func (b *SignalBarrier) Await(ctx context.Context, pass Pass) error {
	if len(pass.Tiles) == 0 {
		return nil
	}

	waits := make(map[core.Coord]chan struct{}, len(pass.Tiles))
	for _, c := range pass.Tiles {
		waits[c] = make(chan struct{})
	}
	b.mu.Lock()
	b.pending = make(map[core.Coord]chan struct{}, len(waits))
	for c, done := range waits {
		b.pending[c] = done
	}
	b.mu.Unlock()
	defer b.clear()

	select {
	case b.passes <- pass:
	case <-ctx.Done():
		return fmt.Errorf("engine: %s pass not delivered: %w", pass.Phase, ctx.Err())
	}

	g, gctx := errgroup.WithContext(ctx)
	for c, done := range waits {
		c, done := c, done
		g.Go(func() error {
			select {
			case <-done:
				return nil
			case <-gctx.Done():
				return fmt.Errorf("engine: %s of tile %v not completed: %w", pass.Phase, c, gctx.Err())
			}
		})
	}
	return g.Wait()
}

// Complete signals that the tile at c finished its transition.
// It returns false when no pending tile matches c.
func (b *SignalBarrier) Complete(c core.Coord) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	done, ok := b.pending[c]
	if !ok {
		return false
	}
	delete(b.pending, c)
	close(done)
	return true
}

// CompleteAll signals every tile of a pass.
func (b *SignalBarrier) CompleteAll(pass Pass) {
	for _, c := range pass.Tiles {
		b.Complete(c)
	}
}

func (b *SignalBarrier) clear() {
	b.mu.Lock()
	b.pending = nil
	b.mu.Unlock()
}

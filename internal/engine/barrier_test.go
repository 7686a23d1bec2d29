package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/match3/internal/core"
)

type resolved struct {
	res Resolution
	err error
}

// drive completes every pass as soon as it is announced and returns the
// phases seen until the resolution finishes.
func drive(t *testing.T, e *Engine, b *SignalBarrier) ([]Phase, resolved) {
	t.Helper()
	done := make(chan resolved, 1)
	go func() {
		res, err := e.Resolve(context.Background())
		done <- resolved{res, err}
	}()

	var phases []Phase
	timeout := time.After(5 * time.Second)
	for {
		select {
		case p := <-b.Passes():
			phases = append(phases, p.Phase)
			if !b.Complete(p.Tiles[0]) {
				t.Errorf("Complete(%v) found no pending tile", p.Tiles[0])
			}
			b.CompleteAll(p)
		case r := <-done:
			return phases, r
		case <-timeout:
			t.Fatal("resolution did not finish")
		}
	}
}

func TestSignalBarrierJoinsEveryPass(t *testing.T) {
	b := NewSignalBarrier(0)
	e, _ := newChainEngine(t, WithBarrier(b))

	if err := e.ApplySwap(core.C(0, 3), core.C(1, 3)); err != nil {
		t.Fatalf("ApplySwap() failed: %v", err)
	}
	phases, r := drive(t, e, b)
	if r.err != nil {
		t.Fatalf("Resolve() failed: %v", r.err)
	}

	// Drops move nothing on this board, so their passes are empty and skipped.
	want := []Phase{PhaseSwap, PhaseClear, PhaseRefill, PhaseClear, PhaseRefill}
	if !reflect.DeepEqual(phases, want) {
		t.Errorf("phases = %v, want %v", phases, want)
	}
	if r.res.Score != 110 {
		t.Errorf("Score = %d, want 110", r.res.Score)
	}
}

func TestSignalBarrierRevertPass(t *testing.T) {
	b := NewSignalBarrier(0)
	e, _ := newChainEngine(t, WithBarrier(b))

	if err := e.ApplySwap(core.C(2, 0), core.C(3, 0)); err != nil {
		t.Fatalf("ApplySwap() failed: %v", err)
	}
	phases, r := drive(t, e, b)
	if r.err != nil {
		t.Fatalf("Resolve() failed: %v", r.err)
	}
	if !reflect.DeepEqual(phases, []Phase{PhaseSwap, PhaseRevert}) {
		t.Errorf("phases = %v", phases)
	}
	if !r.res.Reverted {
		t.Error("expected a reverted resolution")
	}
}

func TestSignalBarrierCancel(t *testing.T) {
	b := NewSignalBarrier(0)
	e, _ := newChainEngine(t, WithBarrier(b))

	if err := e.ApplySwap(core.C(0, 3), core.C(1, 3)); err != nil {
		t.Fatalf("ApplySwap() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := e.Step(ctx)
		errc <- err
	}()

	pass := <-b.Passes()
	if pass.Phase != PhaseSwap || len(pass.Tiles) != 2 {
		t.Fatalf("unexpected pass %+v", pass)
	}
	b.Complete(pass.Tiles[0]) // one tile done, the other never finishes
	cancel()

	err := <-errc
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Step() error = %v, want context.Canceled", err)
	}
	if e.State() != StateMatching || !e.IsAnimating() {
		t.Errorf("state after cancelled pass = %v, want matching", e.State())
	}

	// The resolution can be picked up again with a live context.
	_, r := drive(t, e, b)
	if r.err != nil {
		t.Fatalf("Resolve() failed: %v", r.err)
	}
	if r.res.Score != 110 || e.State() != StateIdle {
		t.Errorf("resumed resolution score=%d state=%v", r.res.Score, e.State())
	}
}

func TestSignalBarrierIgnoresUnknownTiles(t *testing.T) {
	b := NewSignalBarrier(1)
	if b.Complete(core.C(0, 0)) {
		t.Error("Complete() with nothing pending should return false")
	}
	if err := b.Await(context.Background(), Pass{Phase: PhaseDrop}); err != nil {
		t.Errorf("empty pass should not block: %v", err)
	}
}

func TestInstantBarrier(t *testing.T) {
	if err := (Instant{}).Await(context.Background(), Pass{Tiles: []core.Coord{core.C(0, 0)}}); err != nil {
		t.Errorf("Instant.Await() = %v", err)
	}
}

// Package engine drives the match-3 resolution cycle: swap, match, clear,
// drop, refill, and again until the board is stable. It owns the combo
// counter and reports score deltas to a score.Tracker.
//
// The engine is single-threaded. A driver calls ApplySwap and then Step (or
// Resolve) until the board is idle again. Every clear, drop and refill pass
// ends at a Barrier, which the presentation uses to hold the engine while it
// animates the affected tiles.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/score"
)

var (
	// ErrInvalidSwap is returned for swaps the engine refuses. Nothing is
	// mutated; callers are expected to ignore the request.
	ErrInvalidSwap = errors.New("engine: invalid swap")

	// ErrBusy is returned when an operation needs an idle board.
	ErrBusy = errors.New("engine: resolution in progress")

	// ErrGameOver is returned when the game has already ended.
	ErrGameOver = errors.New("engine: game over")
)

// Config holds the board shape and palette size.
type Config struct {
	Width     int
	Height    int
	TileTypes int
	Seed      int64 // used when no Source option is given
}

// Resolution summarises one swap from ApplySwap until the board is idle.
type Resolution struct {
	Swap     board.Swap
	Reverted bool // no match: the swap was undone
	Passes   int  // successful clear passes; equals the final combo
	Cleared  int  // tiles cleared over all passes
	Score    int  // points gained
	GameOver bool // a deferred game over was honoured at the end
}

// Engine is the board state machine. It is not safe for concurrent use.
type Engine struct {
	cfg     Config
	rng     board.Source
	scores  *score.Tracker
	barrier Barrier
	obs     observers
	logger  *log.Logger

	grid            *board.Grid
	state           State
	combo           int
	matches         *board.MatchSet
	current         Resolution
	gameOverPending bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithObserver adds an observer. Several observers are called in order.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.obs = append(e.obs, o)
	}
}

// WithBarrier sets the pass barrier. The default is Instant.
func WithBarrier(b Barrier) Option {
	return func(e *Engine) {
		e.barrier = b
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithSource replaces the seeded random source for layout and refills.
func WithSource(src board.Source) Option {
	return func(e *Engine) {
		e.rng = src
	}
}

// New creates an engine and deals the first board.
func New(cfg Config, scores *score.Tracker, opts ...Option) (*Engine, error) {
	e, err := newEngine(cfg, scores, opts)
	if err != nil {
		return nil, err
	}
	if err := e.deal(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewFromGrid creates an engine around an existing grid, typically a test
// fixture. The grid is used as is, matches included.
func NewFromGrid(g *board.Grid, tileTypes int, scores *score.Tracker, opts ...Option) (*Engine, error) {
	if tileTypes < board.MinTileTypes {
		return nil, fmt.Errorf("%w: %d", board.ErrTooFewTileTypes, tileTypes)
	}
	cfg := Config{Width: g.Width(), Height: g.Height(), TileTypes: tileTypes}
	e, err := newEngine(cfg, scores, opts)
	if err != nil {
		return nil, err
	}
	e.grid = g
	e.scores.ResetCurrentScore()
	return e, nil
}

func newEngine(cfg Config, scores *score.Tracker, opts []Option) (*Engine, error) {
	if scores == nil {
		return nil, errors.New("engine: score tracker is required")
	}
	e := &Engine{
		cfg:     cfg,
		scores:  scores,
		barrier: Instant{},
		logger:  log.New(io.Discard),
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	return e, nil
}

// deal replaces the grid with a fresh match-free layout and resets the
// per-game state. The high score is kept.
func (e *Engine) deal() error {
	g, err := board.Generate(e.cfg.Width, e.cfg.Height, e.cfg.TileTypes, e.rng)
	if err != nil {
		return fmt.Errorf("engine: cannot deal board: %w", err)
	}
	e.grid = g
	e.state = StateIdle
	e.combo = 0
	e.matches = nil
	e.current = Resolution{}
	e.gameOverPending = false
	e.scores.ResetCurrentScore()
	return nil
}

// NewGame discards the board and deals a new one. It is refused while a
// resolution is in flight.
func (e *Engine) NewGame() error {
	if e.state.Resolving() {
		return ErrBusy
	}
	if err := e.deal(); err != nil {
		return err
	}
	e.logger.Info("new game", "width", e.cfg.Width, "height", e.cfg.Height, "tile_types", e.cfg.TileTypes)
	return nil
}

// ApplySwap starts a resolution by exchanging two adjacent tiles.
// The exchange is speculative: if it makes no match the first Step undoes it.
func (e *Engine) ApplySwap(a, b core.Coord) error {
	switch {
	case e.state == StateGameOver:
		return fmt.Errorf("%w: %w", ErrInvalidSwap, ErrGameOver)
	case e.state.Resolving():
		return fmt.Errorf("%w: %w", ErrInvalidSwap, ErrBusy)
	case !a.Adjacent(b):
		return fmt.Errorf("%w: %v and %v are not adjacent", ErrInvalidSwap, a, b)
	}
	if err := e.grid.Swap(a, b); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSwap, err)
	}

	s := board.Swap{A: a, B: b}
	e.combo = 0
	e.current = Resolution{Swap: s}
	e.state = StateSwapping
	e.logger.Debug("swap", "a", a, "b", b)
	e.obs.OnSwapped(s)
	return nil
}

// Step runs the current phase and returns the state the engine moved to.
//
// Grid changes of a phase are applied before its barrier is awaited. If the
// barrier fails the engine has already moved on, and a later Step continues
// from there.
func (e *Engine) Step(ctx context.Context) (State, error) {
	switch e.state {
	case StateSwapping:
		e.state = StateMatching
		s := e.current.Swap
		return e.state, e.barrier.Await(ctx, Pass{Phase: PhaseSwap, Tiles: []core.Coord{s.A, s.B}})

	case StateMatching:
		return e.match(ctx)

	case StateClearing:
		return e.clear(ctx)

	case StateDropping:
		plan := board.Compact(e.grid)
		e.state = StateRefilling
		e.logger.Debug("dropped", "moved", len(plan.Moves), "empty", plan.SpawnCount())
		e.obs.OnDropped(plan.Moves)
		tiles := make([]core.Coord, len(plan.Moves))
		for i, mv := range plan.Moves {
			tiles[i] = mv.To
		}
		return e.state, e.barrier.Await(ctx, Pass{Phase: PhaseDrop, Tiles: tiles})

	case StateRefilling:
		spawns := board.Fill(e.grid, e.cfg.TileTypes, e.rng)
		e.state = StateMatching
		e.obs.OnRefilled(spawns)
		tiles := make([]core.Coord, len(spawns))
		for i, sp := range spawns {
			tiles[i] = sp.At
		}
		return e.state, e.barrier.Await(ctx, Pass{Phase: PhaseRefill, Tiles: tiles})
	}

	return e.state, nil
}

// match runs the detector and picks the next phase.
func (e *Engine) match(ctx context.Context) (State, error) {
	e.matches = board.FindMatches(e.grid)
	if !e.matches.Empty() {
		e.state = StateClearing
		return e.state, nil
	}

	if e.current.Passes == 0 {
		// Nothing matched after the player's swap: undo it.
		s := e.current.Swap
		if err := e.grid.Swap(s.A, s.B); err != nil {
			return e.state, fmt.Errorf("engine: cannot revert swap: %w", err)
		}
		e.current.Reverted = true
		e.logger.Debug("swap reverted", "a", s.A, "b", s.B)
		e.obs.OnReverted(s)
		err := e.barrier.Await(ctx, Pass{Phase: PhaseRevert, Tiles: []core.Coord{s.A, s.B}})
		e.finishResolution()
		return e.state, err
	}

	e.finishResolution()
	return e.state, nil
}

// clear empties the matched slots and scores them.
func (e *Engine) clear(ctx context.Context) (State, error) {
	coords := e.matches.Coords()
	for _, c := range coords {
		if err := e.grid.Set(c, board.Empty); err != nil {
			return e.state, fmt.Errorf("engine: cannot clear: %w", err)
		}
	}
	e.matches = nil
	e.combo++
	delta := e.scores.AddScore(len(coords), e.combo)

	e.current.Passes++
	e.current.Cleared += len(coords)
	e.current.Score += delta
	e.state = StateDropping

	e.logger.Debug("cleared", "pass", e.current.Passes, "tiles", len(coords), "combo", e.combo, "delta", delta)
	e.obs.OnCleared(coords, e.combo, delta)
	return e.state, e.barrier.Await(ctx, Pass{Phase: PhaseClear, Tiles: coords})
}

// finishResolution returns to Idle, or ends the game if that was requested
// while the resolution was running.
func (e *Engine) finishResolution() {
	e.combo = 0
	e.state = StateIdle
	if e.gameOverPending {
		e.current.GameOver = true
		e.endGame()
	}
}

// Resolve steps until the board is idle or the game is over.
func (e *Engine) Resolve(ctx context.Context) (Resolution, error) {
	for e.state.Resolving() {
		if _, err := e.Step(ctx); err != nil {
			return e.current, err
		}
	}
	return e.current, nil
}

// Swap applies a swap and resolves it completely.
func (e *Engine) Swap(ctx context.Context, a, b core.Coord) (Resolution, error) {
	if err := e.ApplySwap(a, b); err != nil {
		return Resolution{}, err
	}
	return e.Resolve(ctx)
}

// GameOver ends the game. When a resolution is running the request is
// deferred until the board is idle and GameOver returns false.
func (e *Engine) GameOver() bool {
	switch {
	case e.state == StateGameOver:
		return true
	case e.state.Resolving():
		e.gameOverPending = true
		e.logger.Debug("game over deferred", "state", e.state)
		return false
	}
	e.endGame()
	return true
}

func (e *Engine) endGame() {
	e.gameOverPending = false
	e.state = StateGameOver
	e.scores.Finalize()
	e.logger.Info("game over", "score", e.scores.Current(), "high", e.scores.High())
	e.obs.OnGameOver(e.scores.Current())
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// IsAnimating reports whether a resolution is in flight. Input must not be
// accepted while it is true.
func (e *Engine) IsAnimating() bool {
	return e.state.Resolving()
}

// IsGameOver reports whether the game has ended.
func (e *Engine) IsGameOver() bool {
	return e.state == StateGameOver
}

// GameOverPending reports whether a game over waits for the resolution.
func (e *Engine) GameOverPending() bool {
	return e.gameOverPending
}

// Combo returns the combo counter of the running resolution.
func (e *Engine) Combo() int {
	return e.combo
}

// Grid returns a copy of the board.
func (e *Engine) Grid() *board.Grid {
	return e.grid.Clone()
}

// Scores returns the tracker the engine reports to.
func (e *Engine) Scores() *score.Tracker {
	return e.scores
}

// Config returns the board configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Hint returns a swap that would match, if any.
func (e *Engine) Hint() (board.Swap, bool) {
	swaps := board.FindSwaps(e.grid)
	if len(swaps) == 0 {
		return board.Swap{}, false
	}
	return swaps[0], true
}

// HasMoves reports whether any swap on the board would match.
func (e *Engine) HasMoves() bool {
	return board.HasSwaps(e.grid)
}

// Package session runs one player's game: it wires the board engine, the
// score tracker and the round clock, and decides when the game ends.
package session

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/engine"
	"github.com/vovakirdan/match3/internal/score"
)

// ID uniquely identifies a session.
type ID string

// EndReason tells why a game ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndTimeUp
	EndNoMoves
	EndQuit
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndTimeUp:
		return "time up"
	case EndNoMoves:
		return "no moves left"
	case EndQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Config describes a session.
type Config struct {
	Board      engine.Config
	TileRatio  int
	ComboRatio int
	Duration   time.Duration // zero for an untimed round
}

// Summary is the outcome of a game.
type Summary struct {
	ID        ID
	Reason    EndReason
	Score     int
	HighScore int
	Moves     int // swaps that were not reverted
	Reverted  int
	LastCombo int // combo reached by the last move
	BestCombo int
	Elapsed   time.Duration
	Over      bool
}

// Session is a single-player game. It is not safe for concurrent use.
type Session struct {
	id     ID
	cfg    Config
	engine *engine.Engine
	scores *score.Tracker
	clock  *Clock
	logger *log.Logger

	started   bool
	reason    EndReason
	moves     int
	reverted  int
	lastCombo int
	bestCombo int
}

// Option configures a Session.
type Option func(*options)

type options struct {
	logger    *log.Logger
	engineOpt []engine.Option
}

// WithLogger sets the logger for the session and its engine.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithEngineOptions passes extra options to the engine, such as an observer
// or a barrier.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(o *options) {
		o.engineOpt = append(o.engineOpt, opts...)
	}
}

// New creates a session and deals its first board.
func New(cfg Config, opts ...Option) (*Session, error) {
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}

	scores, err := score.New(cfg.TileRatio, cfg.ComboRatio)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	id := ID(uuid.NewString())
	logger := o.logger.With("session", shortID(id))

	engOpts := append([]engine.Option{engine.WithLogger(logger)}, o.engineOpt...)
	eng, err := engine.New(cfg.Board, scores, engOpts...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	return &Session{
		id:     id,
		cfg:    cfg,
		engine: eng,
		scores: scores,
		clock:  NewClock(cfg.Duration),
		logger: logger,
	}, nil
}

// Start begins the round clock.
func (s *Session) Start() {
	s.started = true
	s.clock.Reset()
	s.logger.Info("game started",
		"width", s.cfg.Board.Width,
		"height", s.cfg.Board.Height,
		"tile_types", s.cfg.Board.TileTypes,
		"duration", s.cfg.Duration,
	)
}

// Swap plays one move and resolves it. When the board is left without any
// matching swap the game ends.
func (s *Session) Swap(ctx context.Context, a, b core.Coord) (engine.Resolution, error) {
	if err := s.ApplySwap(a, b); err != nil {
		return engine.Resolution{}, err
	}
	return s.Resolve(ctx)
}

// ApplySwap starts a move without resolving it. The engine is busy until
// Resolve returns; a frontend that animates passes runs Resolve on its own
// goroutine and leaves the session alone until then.
func (s *Session) ApplySwap(a, b core.Coord) error {
	if !s.started {
		s.Start()
	}
	return s.engine.ApplySwap(a, b)
}

// Resolve runs the move started by ApplySwap to completion and updates the
// move counters.
func (s *Session) Resolve(ctx context.Context) (engine.Resolution, error) {
	res, err := s.engine.Resolve(ctx)
	if err != nil {
		return res, err
	}

	s.lastCombo = res.Passes
	if res.Reverted {
		s.reverted++
	} else {
		s.moves++
		s.bestCombo = max(s.bestCombo, res.Passes)
	}
	s.logger.Debug("move resolved", "score", res.Score, "passes", res.Passes, "reverted", res.Reverted)

	switch {
	case res.GameOver:
		s.logEnd()
	case !s.engine.IsGameOver() && !s.engine.HasMoves():
		s.end(EndNoMoves)
	}
	return res, nil
}

// Tick advances the round clock by dt and reports whether the game is over.
// An expired clock ends the game once the board is idle.
func (s *Session) Tick(dt time.Duration) bool {
	if s.engine.IsGameOver() {
		return true
	}
	if !s.started {
		return false
	}
	s.clock.Advance(dt)
	if s.clock.Expired() {
		return s.end(EndTimeUp)
	}
	return false
}

// End finishes the game on the player's request.
func (s *Session) End() bool {
	return s.end(EndQuit)
}

func (s *Session) end(reason EndReason) bool {
	if s.reason == EndNone {
		s.reason = reason
	}
	over := s.engine.GameOver()
	if over {
		s.logEnd()
	}
	return over
}

func (s *Session) logEnd() {
	s.logger.Info("game ended", "reason", s.reason, "score", s.scores.Current(), "moves", s.moves)
}

// Restart deals a new board and resets the round. The high score is kept.
func (s *Session) Restart() error {
	if err := s.engine.NewGame(); err != nil {
		return fmt.Errorf("session: restart: %w", err)
	}
	s.reason = EndNone
	s.moves = 0
	s.reverted = 0
	s.lastCombo = 0
	s.bestCombo = 0
	s.Start()
	return nil
}

// IsGameOver reports whether the game has ended.
func (s *Session) IsGameOver() bool {
	return s.engine.IsGameOver()
}

// Hint returns a swap that would match, if any.
func (s *Session) Hint() (board.Swap, bool) {
	return s.engine.Hint()
}

// Summary returns the state of the game so far.
func (s *Session) Summary() Summary {
	return Summary{
		ID:        s.id,
		Reason:    s.reason,
		Score:     s.scores.Current(),
		HighScore: s.scores.High(),
		Moves:     s.moves,
		Reverted:  s.reverted,
		LastCombo: s.lastCombo,
		BestCombo: s.bestCombo,
		Elapsed:   s.clock.Elapsed(),
		Over:      s.engine.IsGameOver(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() ID {
	return s.id
}

// Engine returns the board engine.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// Scores returns the score tracker.
func (s *Session) Scores() *score.Tracker {
	return s.scores
}

// Clock returns the round clock.
func (s *Session) Clock() *Clock {
	return s.clock
}

func shortID(id ID) string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}

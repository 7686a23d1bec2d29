package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/engine"
	"github.com/vovakirdan/match3/internal/input"
	"github.com/vovakirdan/match3/internal/render"
	"github.com/vovakirdan/match3/internal/session"
)

// Frontend defaults.
const (
	DefaultTickRate   = 10 // clock ticks per second
	DefaultFrameDelay = 60 * time.Millisecond
	passFrames        = 4 // frames shown per pass; odd frames flash
)

// Options configures a Model. Zero values select the defaults.
type Options struct {
	TickRate   int
	FrameDelay time.Duration
	Logger     *log.Logger
}

// passMsg carries a pass published by the barrier.
type passMsg engine.Pass

// resolvedMsg reports the end of a move.
type resolvedMsg struct {
	res engine.Resolution
	err error
}

// Model is the Bubble Tea model for a match-3 session.
//
// A move is resolved on its own goroutine. The engine hands each pass to the
// model through the SignalBarrier and stays parked until the model completes
// the pass tiles, so the model reads the session only while the engine is
// idle or parked. Clock ticks that arrive during a move are applied once the
// move has settled.
type Model struct {
	sess    *session.Session
	barrier *engine.SignalBarrier
	sel     *input.Selection
	keys    KeyMap
	help    help.Model
	theme   render.Theme
	logger  *log.Logger
	ctx     context.Context
	cancel  context.CancelFunc

	tickRate   int
	frameDelay time.Duration

	cursor  core.Coord
	hint    *board.Swap
	message string

	resolving bool
	done      chan resolvedMsg
	view      render.View // last snapshot taken while the engine was parked
	pass      engine.Pass
	frame     int
	deferred  time.Duration
	quitting  bool
}

// NewModel creates a model for sess. The barrier must be the one installed
// in the session's engine.
func NewModel(ctx context.Context, sess *session.Session, barrier *engine.SignalBarrier, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	if opts.FrameDelay <= 0 {
		opts.FrameDelay = DefaultFrameDelay
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	ctx, cancel := context.WithCancel(ctx)

	cfg := sess.Engine().Config()
	return Model{
		sess:       sess,
		barrier:    barrier,
		sel:        input.NewSelection(cfg.Width, cfg.Height),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      render.DefaultTheme(),
		logger:     opts.Logger,
		ctx:        ctx,
		cancel:     cancel,
		tickRate:   opts.TickRate,
		frameDelay: opts.FrameDelay,
	}
}

// Init starts the round clock.
func (m Model) Init() tea.Cmd {
	m.sess.Start()
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case passMsg:
		return m.handlePass(engine.Pass(msg))

	case frameMsg:
		return m.handleFrame()

	case resolvedMsg:
		return m.handleResolved(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.resolving {
			// The remaining passes complete without animation.
			return m, nil
		}
		m.sess.End()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.resolving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(core.DirUp)
	case key.Matches(msg, m.keys.Down):
		m.move(core.DirDown)
	case key.Matches(msg, m.keys.Left):
		m.move(core.DirLeft)
	case key.Matches(msg, m.keys.Right):
		m.move(core.DirRight)
	case key.Matches(msg, m.keys.Cancel):
		m.sel.Clear()
		m.message = ""
	case key.Matches(msg, m.keys.Pick):
		return m.pick()
	case key.Matches(msg, m.keys.Hint):
		m.showHint()
	case key.Matches(msg, m.keys.Restart):
		m.restart()
	}

	return m, nil
}

func (m *Model) move(d core.Dir) {
	next := m.cursor.Step(d)
	cfg := m.sess.Engine().Config()
	if next.X < 0 || next.Y < 0 || next.X >= cfg.Width || next.Y >= cfg.Height {
		return
	}
	m.cursor = next
}

// pick selects the tile under the cursor and starts a move when it pairs
// with the previous selection.
func (m Model) pick() (tea.Model, tea.Cmd) {
	m.hint = nil
	sw, out := m.sel.Pick(m.sess.Engine(), m.cursor)
	switch out {
	case input.OutcomeIgnored:
		if m.sess.IsGameOver() {
			m.message = "The game is over. Press r to restart or q to quit."
		}
	case input.OutcomeSelected, input.OutcomeMoved:
		m.message = fmt.Sprintf("Selected %v. Pick an adjacent tile to swap.", m.cursor)
	case input.OutcomeDeselected:
		m.message = ""
	case input.OutcomePaired:
		return m.startSwap(sw)
	}
	return m, nil
}

func (m Model) startSwap(sw board.Swap) (tea.Model, tea.Cmd) {
	if err := m.sess.ApplySwap(sw.A, sw.B); err != nil {
		m.message = fmt.Sprintf("Cannot swap %v and %v.", sw.A, sw.B)
		m.logger.Debug("swap rejected", "err", err)
		return m, nil
	}
	m.message = ""
	m.view = render.SessionView(m.sess, nil)
	m.resolving = true

	done := make(chan resolvedMsg, 1)
	m.done = done
	sess, ctx := m.sess, m.ctx
	go func() {
		res, err := sess.Resolve(ctx)
		done <- resolvedMsg{res: res, err: err}
	}()
	return m, m.listen()
}

// listen waits for the next pass or for the end of the move.
func (m Model) listen() tea.Cmd {
	passes, done := m.barrier.Passes(), m.done
	return func() tea.Msg {
		select {
		case p := <-passes:
			return passMsg(p)
		case r := <-done:
			return r
		}
	}
}

func (m Model) handlePass(p engine.Pass) (tea.Model, tea.Cmd) {
	// The engine is parked in the barrier until this pass completes.
	m.view = render.SessionView(m.sess, nil)
	m.pass = p
	m.frame = 0
	if m.quitting {
		return m.completePass()
	}
	return m, frameCmd(m.frameDelay)
}

func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if len(m.pass.Tiles) == 0 {
		return m, nil
	}
	m.frame++
	if m.frame < passFrames && !m.quitting {
		return m, frameCmd(m.frameDelay)
	}
	return m.completePass()
}

func (m Model) completePass() (tea.Model, tea.Cmd) {
	for _, c := range m.pass.Tiles {
		if !m.barrier.Complete(c) {
			m.logger.Warn("tile not pending", "phase", m.pass.Phase, "tile", c)
		}
	}
	m.pass = engine.Pass{}
	m.frame = 0
	return m, m.listen()
}

func (m Model) handleResolved(r resolvedMsg) (tea.Model, tea.Cmd) {
	m.resolving = false
	m.done = nil
	m.pass = engine.Pass{}

	if r.err != nil {
		m.logger.Error("move failed", "err", r.err)
		m.message = r.err.Error()
	} else {
		m.message = render.MoveMessage(r.res)
	}
	if m.deferred > 0 {
		m.sess.Tick(m.deferred)
		m.deferred = 0
	}
	if m.sess.IsGameOver() {
		m.message += " " + render.GameOverMessage(m.sess.Summary())
	}

	if m.quitting {
		m.sess.End()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := tickInterval(m.tickRate)
	if m.resolving {
		m.deferred += dt
		return m, tickCmd(m.tickRate)
	}

	wasOver := m.sess.IsGameOver()
	if m.sess.Tick(dt) && !wasOver {
		m.sel.Clear()
		m.hint = nil
		m.message = render.GameOverMessage(m.sess.Summary())
	}
	return m, tickCmd(m.tickRate)
}

func (m *Model) showHint() {
	if sw, ok := m.sess.Hint(); ok {
		m.hint = &sw
		m.message = fmt.Sprintf("Try swapping %v with %v.", sw.A, sw.B)
	} else {
		m.message = "No moves left."
	}
}

func (m *Model) restart() {
	if err := m.sess.Restart(); err != nil {
		m.logger.Error("restart failed", "err", err)
		m.message = err.Error()
		return
	}
	m.sel.Clear()
	m.hint = nil
	m.message = "New game."
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting && !m.resolving {
		return ""
	}

	v := m.view
	if !m.resolving {
		v = render.SessionView(m.sess, nil)
	}
	if c, ok := m.sel.Selected(); ok {
		v.Selected = &c
	}
	cursor := m.cursor
	v.Cursor = &cursor
	v.Hint = m.hint
	v.Active = m.pass.Tiles
	v.Flash = m.frame%2 == 1
	v.HUD.Message = m.message

	return render.Styled(render.Board(v), m.theme) + "\n\n" + m.help.View(m.keys)
}

// Run plays the session in a full-screen program until the player quits and
// returns the final summary.
func Run(ctx context.Context, sess *session.Session, barrier *engine.SignalBarrier, opts Options) (session.Summary, error) {
	model := NewModel(ctx, sess, barrier, opts)
	defer model.cancel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return session.Summary{}, fmt.Errorf("tui: %w", err)
	}
	return sess.Summary(), nil
}

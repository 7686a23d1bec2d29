package tui

import (
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/engine"
	"github.com/vovakirdan/match3/internal/session"
)

func newTestModel(t *testing.T, duration time.Duration) Model {
	t.Helper()
	barrier := engine.NewSignalBarrier(1)
	sess, err := session.New(session.Config{
		Board:      engine.Config{Width: 8, Height: 8, TileTypes: 5, Seed: 5},
		TileRatio:  10,
		ComboRatio: 1,
		Duration:   duration,
	}, session.WithEngineOptions(engine.WithBarrier(barrier)))
	if err != nil {
		t.Fatalf("session.New() failed: %v", err)
	}

	m := NewModel(context.Background(), sess, barrier, Options{FrameDelay: time.Millisecond})
	t.Cleanup(m.cancel)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the clock")
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, k)
	}
	return m
}

// moveTo walks the cursor to c with the arrow keys.
func moveTo(t *testing.T, m Model, c core.Coord) Model {
	t.Helper()
	for m.cursor.X < c.X {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	for m.cursor.X > c.X {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	for m.cursor.Y < c.Y {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	for m.cursor.Y > c.Y {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != c {
		t.Fatalf("cursor = %v, want %v", m.cursor, c)
	}
	return m
}

// startMove picks a and then b and returns the command that follows the move.
func startMove(t *testing.T, m Model, a, b core.Coord) (Model, tea.Cmd) {
	t.Helper()
	m = moveTo(t, m, a)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = moveTo(t, m, b)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.resolving || cmd == nil {
		t.Fatalf("picking %v then %v did not start a move", a, b)
	}
	return m, cmd
}

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	got := make(chan tea.Msg, 1)
	go func() { got <- cmd() }()
	select {
	case msg := <-got:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("command did not finish")
		return nil
	}
}

// settle feeds the move's messages back into the model until it resolves.
// It returns the phases seen and the command returned for the last message.
func settle(t *testing.T, m Model, cmd tea.Cmd) (Model, []engine.Phase, tea.Cmd) {
	t.Helper()
	var phases []engine.Phase
	for {
		msg := run(t, cmd)
		if p, ok := msg.(passMsg); ok {
			phases = append(phases, p.Phase)
		}
		m, cmd = update(t, m, msg)
		if _, ok := msg.(resolvedMsg); ok {
			return m, phases, cmd
		}
	}
}

// nonMatching finds adjacent tiles whose swap makes no match.
func nonMatching(t *testing.T, g *board.Grid) board.Swap {
	t.Helper()
	g = g.Clone()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x+1 < g.Width(); x++ {
			a, b := core.C(x, y), core.C(x+1, y)
			if err := g.Swap(a, b); err != nil {
				t.Fatalf("Swap() failed: %v", err)
			}
			if board.FindMatches(g).Empty() {
				return board.Swap{A: a, B: b}
			}
			if err := g.Swap(a, b); err != nil {
				t.Fatalf("Swap() failed: %v", err)
			}
		}
	}
	t.Fatal("every swap matches")
	return board.Swap{}
}

func TestCursorStaysOnBoard(t *testing.T) {
	m := newTestModel(t, 0)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != core.C(0, 0) {
		t.Errorf("cursor left the board: %v", m.cursor)
	}

	m = press(t, m, runeKey('d'), runeKey('w'), tea.KeyMsg{Type: tea.KeyRight})
	if m.cursor != core.C(2, 1) {
		t.Errorf("cursor = %v, want (2,1)", m.cursor)
	}

	for i := 0; i < 20; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.cursor != core.C(7, 7) {
		t.Errorf("cursor = %v, want (7,7)", m.cursor)
	}
}

func TestPickSelectsAndClears(t *testing.T) {
	m := newTestModel(t, 0)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if c, ok := m.sel.Selected(); !ok || c != core.C(0, 0) {
		t.Fatalf("Selected() = %v, %v", c, ok)
	}
	if !strings.Contains(m.View(), "[") {
		t.Error("view does not mark the selection")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.sel.Selected(); ok {
		t.Error("esc should clear the selection")
	}
}

func TestMoveAnimatesEveryPass(t *testing.T) {
	m := newTestModel(t, 0)
	hint, ok := m.sess.Hint()
	if !ok {
		t.Fatal("seeded board has no move")
	}

	m, cmd := startMove(t, m, hint.A, hint.B)

	// Keys other than quit and help wait for the move.
	before := m.cursor
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, runeKey('r'))
	if m.cursor != before || m.message == "New game." {
		t.Error("input was handled while the move resolved")
	}

	m, phases, _ := settle(t, m, cmd)
	if len(phases) < 3 || phases[0] != engine.PhaseSwap || phases[1] != engine.PhaseClear {
		t.Fatalf("phases = %v, want swap then clear", phases)
	}
	if !slices.Contains(phases, engine.PhaseRefill) {
		t.Errorf("phases = %v, want a refill", phases)
	}
	if m.resolving || len(m.pass.Tiles) != 0 {
		t.Error("model still resolving after the move")
	}

	sum := m.sess.Summary()
	if sum.Moves != 1 || sum.Score < 30 {
		t.Errorf("summary %+v after one matching move", sum)
	}
	if !strings.Contains(m.message, "points") {
		t.Errorf("message = %q", m.message)
	}
}

func TestRevertedMoveAnimates(t *testing.T) {
	m := newTestModel(t, 0)
	sw := nonMatching(t, m.sess.Engine().Grid())
	before := m.sess.Engine().Grid().Clone()

	m, cmd := startMove(t, m, sw.A, sw.B)
	m, phases, _ := settle(t, m, cmd)

	want := []engine.Phase{engine.PhaseSwap, engine.PhaseRevert}
	if len(phases) != 2 || phases[0] != want[0] || phases[1] != want[1] {
		t.Errorf("phases = %v, want %v", phases, want)
	}
	if !m.sess.Engine().Grid().Equal(before) {
		t.Error("reverted move changed the board")
	}
	if m.message != "No match. Swap undone." {
		t.Errorf("message = %q", m.message)
	}
}

func TestPassFlashesBeforeCompleting(t *testing.T) {
	m := newTestModel(t, 0)
	hint, _ := m.sess.Hint()
	m, cmd := startMove(t, m, hint.A, hint.B)

	msg := run(t, cmd)
	p, ok := msg.(passMsg)
	if !ok || p.Phase != engine.PhaseSwap {
		t.Fatalf("first message = %#v, want the swap pass", msg)
	}
	m, _ = update(t, m, msg)
	if len(m.pass.Tiles) != 2 || m.frame != 0 {
		t.Fatalf("pass not being animated: %+v frame %d", m.pass, m.frame)
	}

	m, _ = update(t, m, frameMsg{})
	if !strings.Contains(m.View(), "Score 0") {
		t.Error("view during the move should show the snapshot")
	}
	for i := 1; i < passFrames-1; i++ {
		m, _ = update(t, m, frameMsg{})
	}
	if len(m.pass.Tiles) != 2 {
		t.Fatal("pass completed before its last frame")
	}

	m, cmd = update(t, m, frameMsg{})
	if len(m.pass.Tiles) != 0 {
		t.Error("pass not completed after its last frame")
	}
	settle(t, m, cmd)
}

func TestClockWaitsForMove(t *testing.T) {
	m := newTestModel(t, time.Minute)
	hint, _ := m.sess.Hint()
	m, cmd := startMove(t, m, hint.A, hint.B)

	m, tick := update(t, m, TickMsg(time.Now()))
	if tick == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.deferred != tickInterval(DefaultTickRate) {
		t.Errorf("deferred = %v", m.deferred)
	}

	m, _, _ = settle(t, m, cmd)
	if got := m.sess.Clock().Elapsed(); got != tickInterval(DefaultTickRate) {
		t.Errorf("Elapsed() = %v, want one tick", got)
	}
	if m.deferred != 0 {
		t.Errorf("deferred = %v after the move", m.deferred)
	}
}

func TestTicksEndRound(t *testing.T) {
	m := newTestModel(t, time.Second)

	for i := 0; i < DefaultTickRate; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	if m.sess.IsGameOver() {
		t.Fatal("round ended at the time limit")
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	if !m.sess.IsGameOver() {
		t.Fatal("round should end once the clock expires")
	}
	if !strings.Contains(m.message, "Game over (time up)") {
		t.Errorf("message = %q", m.message)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.message, "The game is over.") {
		t.Errorf("pick after game over: message = %q", m.message)
	}
}

func TestQuitWaitsForMove(t *testing.T) {
	m := newTestModel(t, 0)
	hint, _ := m.sess.Hint()
	m, cmd := startMove(t, m, hint.A, hint.B)

	m, quitCmd := update(t, m, runeKey('q'))
	if quitCmd != nil {
		t.Fatal("quit during a move should wait for it")
	}

	m, _, last := settle(t, m, cmd)
	if _, ok := run(t, last).(tea.QuitMsg); !ok {
		t.Error("program should quit once the move resolved")
	}
	sum := m.sess.Summary()
	if !sum.Over || sum.Reason != session.EndQuit || sum.Moves != 1 {
		t.Errorf("summary %+v", sum)
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestQuitWhenIdle(t *testing.T) {
	m := newTestModel(t, 0)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, ok := run(t, cmd).(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if !m.sess.IsGameOver() {
		t.Error("quit should end the game")
	}
}

func TestHintAndRestart(t *testing.T) {
	m := newTestModel(t, 0)

	m = press(t, m, runeKey('h'))
	if m.hint == nil || !strings.Contains(m.message, "Try swapping") {
		t.Fatalf("hint not shown: %q", m.message)
	}
	if !strings.Contains(m.View(), "<") {
		t.Error("view does not mark the hint")
	}

	m, cmd := startMove(t, m, m.hint.A, m.hint.B)
	if m.hint != nil {
		t.Error("hint should clear once a move starts")
	}
	m, _, _ = settle(t, m, cmd)

	m = press(t, m, runeKey('r'))
	if sum := m.sess.Summary(); sum.Score != 0 || sum.Moves != 0 {
		t.Errorf("summary after restart = %+v", sum)
	}
	if m.message != "New game." {
		t.Errorf("message = %q", m.message)
	}
}

func TestViewShowsHelp(t *testing.T) {
	m := newTestModel(t, 0)

	short := m.View()
	for _, want := range []string{"Score 0", "pick tile", "quit"} {
		if !strings.Contains(short, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(t, m, runeKey('?'))
	if !strings.Contains(m.View(), "move left") {
		t.Error("? should show the full help")
	}
}

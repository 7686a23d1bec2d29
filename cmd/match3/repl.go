package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/engine"
	"github.com/vovakirdan/match3/internal/input"
	"github.com/vovakirdan/match3/internal/render"
	"github.com/vovakirdan/match3/internal/session"
)

// repl plays a session from text commands. It serves scripted input and
// terminals where the full-screen frontend cannot run.
type repl struct {
	sess   *session.Session
	sel    *input.Selection
	parser *input.Parser
	out    io.Writer
	logger *log.Logger

	prompt bool
	styled bool
	theme  render.Theme

	hint    *board.Swap
	message string
}

func newREPL(sess *session.Session, out io.Writer, logger *log.Logger) *repl {
	cfg := sess.Engine().Config()
	return &repl{
		sess:   sess,
		sel:    input.NewSelection(cfg.Width, cfg.Height),
		parser: input.NewParser(),
		out:    out,
		logger: logger,
		theme:  render.DefaultTheme(),
	}
}

// run reads commands until quit or end of input.
func (r *repl) run(ctx context.Context, in io.Reader) error {
	r.sess.Start()
	r.draw()

	scanner := bufio.NewScanner(in)
	for {
		if r.prompt {
			fmt.Fprint(r.out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		quit, err := r.handleLine(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	r.sess.End()
	r.printSummary()
	return nil
}

// handleLine parses and executes one line.
func (r *repl) handleLine(ctx context.Context, line string) (bool, error) {
	cmd, err := r.parser.Parse(line)
	if err != nil {
		fmt.Fprintf(r.out, "%v (type 'help' for commands)\n", err)
		return false, nil
	}
	return r.handle(ctx, cmd)
}

// handle executes one command and reports whether the player quit.
func (r *repl) handle(ctx context.Context, cmd core.Command) (bool, error) {
	r.message = ""

	switch cmd.Action {
	case core.ActionHelp:
		fmt.Fprintln(r.out, input.Help())
		return false, nil

	case core.ActionQuit:
		r.sess.End()
		r.printSummary()
		return true, nil

	case core.ActionRestart:
		if err := r.sess.Restart(); err != nil {
			return false, err
		}
		r.sel.Clear()
		r.hint = nil
		r.message = "New game."

	case core.ActionSelect:
		r.hint = nil
		sw, out := r.sel.Pick(r.sess.Engine(), cmd.Coords[0])
		switch out {
		case input.OutcomeIgnored:
			r.message = r.ignoredMessage()
		case input.OutcomeSelected, input.OutcomeMoved:
			r.message = fmt.Sprintf("Selected %v. Pick an adjacent tile to swap.", cmd.Coords[0])
		case input.OutcomeDeselected:
			r.message = "Selection cleared."
		case input.OutcomePaired:
			if err := r.swap(ctx, sw.A, sw.B); err != nil {
				return false, err
			}
		}

	case core.ActionSwap:
		r.hint = nil
		r.sel.Clear()
		if err := r.swap(ctx, cmd.Coords[0], cmd.Coords[1]); err != nil {
			return false, err
		}

	case core.ActionHint:
		if sw, ok := r.sess.Hint(); ok {
			r.hint = &sw
			r.message = fmt.Sprintf("Try swapping %v with %v.", sw.A, sw.B)
		} else {
			r.message = "No moves left."
		}

	case core.ActionTick:
		if r.sess.Tick(cmd.Duration()) {
			r.message = render.GameOverMessage(r.sess.Summary())
		}
	}

	r.draw()
	return false, nil
}

// swap plays a move and describes its result.
func (r *repl) swap(ctx context.Context, a, b core.Coord) error {
	res, err := r.sess.Swap(ctx, a, b)
	switch {
	case errors.Is(err, engine.ErrGameOver):
		r.message = r.ignoredMessage()
		return nil
	case errors.Is(err, engine.ErrInvalidSwap):
		r.message = fmt.Sprintf("Cannot swap %v and %v: pick two neighbouring tiles on the board.", a, b)
		return nil
	case err != nil:
		return err
	}

	r.message = render.MoveMessage(res)
	if r.sess.IsGameOver() {
		r.message += " " + render.GameOverMessage(r.sess.Summary())
	}
	return nil
}

func (r *repl) ignoredMessage() string {
	if r.sess.IsGameOver() {
		return "The game is over. Type 'restart' or 'quit'."
	}
	return "That tile is not on the board."
}

func (r *repl) draw() {
	var selected *core.Coord
	if c, ok := r.sel.Selected(); ok {
		selected = &c
	}
	v := render.SessionView(r.sess, selected)
	v.Hint = r.hint
	v.HUD.Message = r.message

	scr := render.Board(v)
	if r.styled {
		fmt.Fprintln(r.out, render.Styled(scr, r.theme))
	} else {
		fmt.Fprintln(r.out, render.Plain(scr))
	}
}

func (r *repl) printSummary() {
	printSummary(r.out, r.logger, r.sess.Summary())
}

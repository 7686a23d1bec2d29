package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/engine"
	"github.com/vovakirdan/match3/internal/session"
	"github.com/vovakirdan/match3/internal/tui"
)

var flagLines bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive game",
	Long: `Start an interactive game.

On a terminal the board fills the screen:
  arrows/wasd  - Move the cursor
  enter/space  - Pick a tile; picking an adjacent tile next swaps them
  esc          - Clear the selection
  h            - Show a swap that would match
  r            - Start a new game (high score is kept)
  ?            - Show all keys
  q            - End the game and exit

When input is not a terminal, or with --lines, commands are read line by line:
  select X Y         - Pick a tile; picking an adjacent tile next swaps them
  swap X1 Y1 X2 Y2   - Swap two adjacent tiles
  hint               - Show a swap that would match
  tick SECONDS       - Let time pass on the round clock
  restart            - Start a new game (high score is kept)
  quit               - End the game and exit

Column X counts from the left, row Y from the bottom.

Examples:
  match3 play
  match3 play --difficulty easy
  match3 play --lines
  match3 play --seed 42 < moves.txt`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagLines, "lines", false, "Read text commands even on a terminal")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fail(err)
	}
	logger, err := newLogger()
	if err != nil {
		fail(err)
	}

	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if !flagLines && stdinTTY && stdoutTTY {
		runBoard(cmd, cfg, logger)
		return
	}

	sess, seed, err := newSession(cfg, logger)
	if err != nil {
		fail(err)
	}
	logger.Debug("session created", "id", sess.ID(), "seed", seed, "frontend", "lines")

	r := newREPL(sess, cmd.OutOrStdout(), logger)
	r.prompt = stdinTTY
	r.styled = stdoutTTY

	if err := r.run(cmd.Context(), cmd.InOrStdin()); err != nil {
		fail(err)
	}
}

// runBoard plays a full-screen game. Moves are animated pass by pass through
// a signal barrier.
func runBoard(cmd *cobra.Command, cfg config.Match3Config, logger *log.Logger) {
	barrier := engine.NewSignalBarrier(1)
	sess, seed, err := newSession(cfg, logger, session.WithEngineOptions(engine.WithBarrier(barrier)))
	if err != nil {
		fail(err)
	}
	logger.Debug("session created", "id", sess.ID(), "seed", seed, "frontend", "board")

	sum, err := tui.Run(cmd.Context(), sess, barrier, tui.Options{Logger: logger})
	if err != nil {
		fail(err)
	}
	printSummary(cmd.OutOrStdout(), logger, sum)
}

// printSummary prints the final result of a game.
func printSummary(out io.Writer, logger *log.Logger, sum session.Summary) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Score:      %d\n", sum.Score)
	fmt.Fprintf(out, "High score: %d\n", sum.HighScore)
	fmt.Fprintf(out, "Moves:      %d (%d undone)\n", sum.Moves, sum.Reverted)
	fmt.Fprintf(out, "Best combo: x%d\n", sum.BestCombo)
	logger.Info("session finished", "id", sum.ID, "score", sum.Score, "reason", sum.Reason)
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/engine"
	"github.com/vovakirdan/match3/internal/render"
	"github.com/vovakirdan/match3/internal/session"
)

var (
	flagMoves   int
	flagThink   float64
	flagVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the move finder play a seeded game",
	Long: `Plays a game without input. Each move is the first swap the move
finder reports. The game stops after --moves moves, when no move is left,
or when the round clock runs out.

Examples:
  match3 sim --seed 42
  match3 sim --seed 7 --moves 200 --think 1.5 -v`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagMoves, "moves", 50, "Maximum number of moves")
	simCmd.Flags().Float64Var(&flagThink, "think", 0, "Seconds of round time spent per move")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print every move")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fail(err)
	}
	logger, err := newLogger()
	if err != nil {
		fail(err)
	}

	rec := &engine.Recorder{}
	sess, seed, err := newSession(cfg, logger, session.WithEngineOptions(engine.WithObserver(rec)))
	if err != nil {
		fail(err)
	}
	sess.Start()

	think := time.Duration(flagThink * float64(time.Second))
	for move := 1; move <= flagMoves && !sess.IsGameOver(); move++ {
		hint, ok := sess.Hint()
		if !ok {
			break
		}
		rec.Reset()
		res, err := sess.Swap(cmd.Context(), hint.A, hint.B)
		if err != nil {
			fail(err)
		}
		if flagVerbose {
			fmt.Printf("%3d  swap %v %v  +%-4d combo x%d  events %v\n", move, hint.A, hint.B, res.Score, res.Passes, rec.Kinds())
		}
		sess.Tick(think)
	}
	if !sess.IsGameOver() {
		sess.End()
	}

	sum := sess.Summary()
	fmt.Println(render.Plain(render.Board(render.SessionView(sess, nil))))
	fmt.Println()
	fmt.Printf("Seed:       %d\n", seed)
	fmt.Printf("Ended:      %s\n", sum.Reason)
	fmt.Printf("Score:      %d\n", sum.Score)
	fmt.Printf("Moves:      %d\n", sum.Moves)
	fmt.Printf("Best combo: x%d\n", sum.BestCombo)
	if clock := sess.Clock(); clock.Timed() {
		fmt.Printf("Round time: %s of %s\n", sum.Elapsed, clock.Duration())
	} else {
		fmt.Printf("Round time: %s (untimed)\n", sum.Elapsed)
	}
}

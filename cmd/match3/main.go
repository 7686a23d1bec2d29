// match3 is a terminal match-3 game.
//
// Usage:
//
//	match3 play              - Play an interactive game
//	match3 sim               - Let the move finder play a seeded game
//	match3 config            - Print the effective configuration
//	match3 presets           - List difficulty presets
//
// Global flags:
//
//	--seed <value>         - Set RNG seed for reproducible boards
//	--config <path>        - Path to a custom config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--log-level <level>    - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/engine"
	"github.com/vovakirdan/match3/internal/session"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - swap tiles, line up three, chain combos",
	Long: `Match-3 is a tile-matching game for the terminal.

Swap two adjacent tiles to line up three or more of the same kind in a row
or column. Matched tiles are cleared, the tiles above fall down and new
tiles drop in. Every chain reaction raises the combo multiplier.

Available commands:
  play     - Play an interactive game
  sim      - Watch the move finder play a seeded game
  config   - Print the effective configuration
  presets  - List difficulty presets

Examples:
  match3 play
  match3 play --difficulty hard
  match3 sim --seed 42 --moves 100
  match3 config --config ./my-match3.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(presetsCmd)
}

// loadConfig loads the configuration and applies the difficulty flag.
func loadConfig() (config.Match3Config, config.Source, error) {
	cfg, src, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return cfg, src, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return cfg, src, err
		}
		config.ApplyMatch3Preset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, src, err
	}
	return cfg, src, nil
}

// newLogger creates the process logger. Logs go to stderr so they never mix
// with the board on stdout.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           level,
	}), nil
}

// newSession wires a session from the loaded configuration.
func newSession(cfg config.Match3Config, logger *log.Logger, opts ...session.Option) (*session.Session, int64, error) {
	seed := core.RuntimeConfig{Seed: flagSeed}.ResolveSeed()
	s, err := session.New(session.Config{
		Board: engine.Config{
			Width:     cfg.Board.Width,
			Height:    cfg.Board.Height,
			TileTypes: cfg.Board.TileTypes,
			Seed:      seed,
		},
		TileRatio:  cfg.Scoring.TileRatio,
		ComboRatio: cfg.Scoring.ComboRatio,
		Duration:   cfg.Round.Duration(),
	}, append([]session.Option{session.WithLogger(logger)}, opts...)...)
	return s, seed, err
}

// fail prints an error and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Width:     8,
			Height:    8,
			TileTypes: 6,
		},
		Scoring: ScoringConfig{
			TileRatio:  10,
			ComboRatio: 1,
		},
		Round: RoundConfig{
			DurationSeconds: 120,
		},
		Difficulty: DifficultyNormal,
	}
}

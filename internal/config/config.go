// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxTileTypes is the number of tile identities the board renderer draws
// with distinct glyphs (0-9 then a-z).
const MaxTileTypes = 36

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid configuration")

// Match3Config contains all configuration for a game.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Round      RoundConfig      `yaml:"round"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// BoardConfig defines the board shape and the number of tile types.
type BoardConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TileTypes int `yaml:"tile_types"`
}

// ScoringConfig defines how clears are scored.
// A clear of n tiles at combo c is worth n*tile_ratio * c*combo_ratio.
type ScoringConfig struct {
	TileRatio  int `yaml:"tile_ratio"`
	ComboRatio int `yaml:"combo_ratio"`
}

// RoundConfig defines the round clock.
type RoundConfig struct {
	DurationSeconds int `yaml:"duration_seconds"` // 0 = untimed
}

// Duration returns the round length.
func (r RoundConfig) Duration() time.Duration {
	return time.Duration(r.DurationSeconds) * time.Second
}

// Validate reports the first setting that cannot be played.
func (c Match3Config) Validate() error {
	switch {
	case c.Board.Width < 1 || c.Board.Height < 1:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	case c.Board.TileTypes < 3 || c.Board.TileTypes > MaxTileTypes:
		return fmt.Errorf("%w: tile_types must be between 3 and %d, got %d", ErrInvalid, MaxTileTypes, c.Board.TileTypes)
	case c.Scoring.TileRatio <= 0 || c.Scoring.ComboRatio <= 0:
		return fmt.Errorf("%w: scoring ratios must be positive, got %d and %d", ErrInvalid, c.Scoring.TileRatio, c.Scoring.ComboRatio)
	case c.Round.DurationSeconds < 0:
		return fmt.Errorf("%w: duration_seconds must not be negative, got %d", ErrInvalid, c.Round.DurationSeconds)
	}
	if c.Difficulty != "" {
		if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c Match3Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

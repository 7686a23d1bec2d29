package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned for a preset name that does not exist.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Preset describes what a difficulty preset changes.
// More tile types make matches rarer; a shorter round leaves less time.
type Preset struct {
	Name            DifficultyPreset
	TileTypes       int
	DurationSeconds int
	Description     string
}

var presets = []Preset{
	{DifficultyEasy, 5, 180, "five tile types, three minutes"},
	{DifficultyNormal, 6, 120, "six tile types, two minutes"},
	{DifficultyHard, 7, 60, "seven tile types, one minute"},
}

// Presets returns all difficulty presets from easiest to hardest.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// ParseDifficulty returns the preset with the given name.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range presets {
		if string(p.Name) == name {
			return p.Name, nil
		}
	}
	return "", fmt.Errorf("%w %q (want easy, normal or hard)", ErrUnknownDifficulty, name)
}

// ApplyMatch3Preset modifies the config based on a difficulty preset.
// The board size and scoring are left alone.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	for _, p := range presets {
		if p.Name == preset {
			cfg.Difficulty = p.Name
			cfg.Board.TileTypes = p.TileTypes
			cfg.Round.DurationSeconds = p.DurationSeconds
			return
		}
	}
}

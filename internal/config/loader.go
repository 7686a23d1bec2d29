package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source tells where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

const fileName = "match3.yaml"

// LoadMatch3 loads the game configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml -> ./configs/match3.yaml -> embedded default
//
// Unreadable or malformed files along the search path are skipped; only a
// custom path is required to load.
func LoadMatch3(customPath string) (Match3Config, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Match3Config{}, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if cfg, err := readFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, err := readFile(filepath.Join("configs", fileName)); err == nil {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg, err := decode(defaultMatch3YAML)
	if err != nil {
		return DefaultMatch3Config(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// readFile decodes a YAML file over the defaults, so missing keys keep
// their default values.
func readFile(path string) (Match3Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultMatch3Config(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// decode layers a YAML document over the defaults. A difficulty key applies
// its preset first, so tile_types and duration_seconds written in the same
// document still win over the preset. An unknown difficulty is left for
// Validate to report.
func decode(data []byte) (Match3Config, error) {
	cfg := DefaultMatch3Config()

	var head struct {
		Difficulty string `yaml:"difficulty"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return cfg, err
	}
	preset, presetErr := ParseDifficulty(head.Difficulty)
	if presetErr == nil {
		ApplyMatch3Preset(&cfg, preset)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if presetErr == nil {
		cfg.Difficulty = preset
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}

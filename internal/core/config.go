package core

import "time"

// RuntimeConfig contains process-level settings handed to a new game.
type RuntimeConfig struct {
	Seed int64 // RNG seed for deterministic boards; 0 means time-based
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

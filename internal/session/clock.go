package session

import "time"

// Clock measures the round time. A zero duration means the round is untimed
// and never expires.
type Clock struct {
	duration time.Duration
	elapsed  time.Duration
}

// NewClock creates a clock for a round of the given length.
func NewClock(duration time.Duration) *Clock {
	if duration < 0 {
		duration = 0
	}
	return &Clock{duration: duration}
}

// Advance adds dt to the elapsed time. Negative steps are ignored.
func (c *Clock) Advance(dt time.Duration) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// Reset starts the round again.
func (c *Clock) Reset() {
	c.elapsed = 0
}

// Timed reports whether the round has a time limit.
func (c *Clock) Timed() bool {
	return c.duration > 0
}

// Duration returns the round length.
func (c *Clock) Duration() time.Duration {
	return c.duration
}

// Elapsed returns the time played so far.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Remaining returns the time left, never below zero.
func (c *Clock) Remaining() time.Duration {
	if !c.Timed() || c.elapsed >= c.duration {
		return 0
	}
	return c.duration - c.elapsed
}

// Expired reports whether the elapsed time went past the duration.
func (c *Clock) Expired() bool {
	return c.Timed() && c.elapsed > c.duration
}

package sim

import "time"

// Clock measures wall-clock run time excluding paused spans, for the
// status bar. Single-owner like everything else in this package: the
// controller is the only writer.
type Clock struct {
	start       time.Time
	pauseStart  time.Time
	pausedTotal time.Duration
	paused      bool
}

// NewClock starts a running clock
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// Pause freezes elapsed time accumulation. Idempotent.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = time.Now()
}

// Resume continues elapsed time accumulation. Idempotent.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.pausedTotal += time.Since(c.pauseStart)
	c.paused = false
}

// Elapsed returns run time with paused spans subtracted
func (c *Clock) Elapsed() time.Duration {
	total := c.pausedTotal
	if c.paused {
		total += time.Since(c.pauseStart)
	}
	return time.Since(c.start) - total
}

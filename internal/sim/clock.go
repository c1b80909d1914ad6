package sim

import "time"

// Clock is the caller-owned simulated time. It only moves forward, and only
// while running.
type Clock struct {
	elapsed float64
	running bool
}

func (c *Clock) Elapsed() float64 { return c.elapsed }
func (c *Clock) Running() bool    { return c.running }

func (c *Clock) Start() { c.running = true }
func (c *Clock) Stop()  { c.running = false }

// Reset zeroes elapsed time and stops the clock.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.running = false
}

// Restart zeroes elapsed time without changing the running flag.
func (c *Clock) Restart() {
	c.elapsed = 0
}

// Advance adds a wall-clock delta while running. Negative deltas are
// ignored.
func (c *Clock) Advance(d time.Duration) float64 {
	if c.running && d > 0 {
		c.elapsed += d.Seconds()
	}
	return c.elapsed
}

// Package clock provides the logical simulation clock. Every timing window
// in the core (bounce cooldown, grace period, combo timeout) compares
// timestamps from this clock, never wall time, so a run is fully
// deterministic and replayable from a recorded input stream.
package clock

// Clock counts fixed-size simulation ticks.
type Clock struct {
	tick uint64
	dt   float64
}

// New creates a clock advancing dt seconds per tick.
func New(dt float64) *Clock {
	return &Clock{dt: dt}
}

// Advance moves the clock forward by one tick.
func (c *Clock) Advance() {
	c.tick++
}

// Now returns the current simulation time in seconds.
func (c *Clock) Now() float64 {
	return float64(c.tick) * c.dt
}

// Tick returns the current tick count.
func (c *Clock) Tick() uint64 {
	return c.tick
}

// DT returns the fixed tick duration in seconds.
func (c *Clock) DT() float64 {
	return c.dt
}

// Reset rewinds the clock to zero for a fresh run.
func (c *Clock) Reset() {
	c.tick = 0
}

package scene

import "time"

// Clock measures animation time since Start.
type Clock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
}

// NewClock returns a started clock.
func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	c := &Clock{now: now}
	c.Start()
	return c
}

// Start resets elapsed time to zero.
func (c *Clock) Start() {
	c.start = c.now()
	c.last = c.start
}

// Tick returns seconds since Start and seconds since the previous Tick.
func (c *Clock) Tick() (elapsed, dt float32) {
	t := c.now()
	elapsed = float32(t.Sub(c.start).Seconds())
	dt = float32(t.Sub(c.last).Seconds())
	c.last = t
	return elapsed, dt
}

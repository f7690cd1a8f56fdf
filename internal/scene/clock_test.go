package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockTick(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	c := newClock(func() time.Time { return now })

	now = base.Add(500 * time.Millisecond)
	elapsed, dt := c.Tick()
	assert.InDelta(t, 0.5, elapsed, 1e-6)
	assert.InDelta(t, 0.5, dt, 1e-6)

	now = base.Add(2 * time.Second)
	elapsed, dt = c.Tick()
	assert.InDelta(t, 2.0, elapsed, 1e-6)
	assert.InDelta(t, 1.5, dt, 1e-6)

	c.Start()
	now = now.Add(time.Second)
	elapsed, _ = c.Tick()
	assert.InDelta(t, 1.0, elapsed, 1e-6)
}

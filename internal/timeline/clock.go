package timeline

import "time"

// Clock is the open-loop playback clock: t=0 is anchored to the wall-clock
// moment playback was triggered, and song time is derived from the wall
// clock alone. Nothing is read back from the audio device, so drift is
// bounded only by the device's start latency (tens of milliseconds), which
// the design accepts.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock returns an unstarted clock.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Start anchors t=0 at the current instant.
func (c *Clock) Start() {
	c.start = c.now()
}

// Started reports whether Start has been called.
func (c *Clock) Started() bool {
	return !c.start.IsZero()
}

// Elapsed returns the current song time in seconds. Zero before Start.
func (c *Clock) Elapsed() float64 {
	if c.start.IsZero() {
		return 0
	}
	return c.now().Sub(c.start).Seconds()
}

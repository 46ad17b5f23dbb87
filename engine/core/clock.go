package core

import "time"

// Clock samples elapsed wall time between render frames. The host calls
// Delta once per frame and feeds the result into the simulation step.
type Clock struct {
	lastTime time.Time
}

// NewClock creates a clock anchored at the current time
func NewClock() *Clock {
	return &Clock{lastTime: time.Now()}
}

// Delta returns seconds since the previous call.
// Frame time is capped to avoid a spiral of death after a stall (window
// drag, suspend): one long frame must not turn into a huge catch-up step.
func (c *Clock) Delta() float64 {
	now := time.Now()
	dt := now.Sub(c.lastTime).Seconds()
	c.lastTime = now
	if dt > 0.25 {
		dt = 0.25
	}
	return dt
}

// Reset re-anchors the clock, discarding elapsed time. Called when the
// simulation resumes after a state where it was not stepping.
func (c *Clock) Reset() {
	c.lastTime = time.Now()
}

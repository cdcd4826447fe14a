package frame

import "time"

// Clock measures wall-clock time between frames.
type Clock struct {
	nominal time.Duration
	last    time.Time
}

// NewClock creates a clock whose first Delta reports one nominal frame.
func NewClock(fps int) *Clock {
	if fps <= 0 {
		fps = 60
	}
	return &Clock{nominal: time.Second / time.Duration(fps)}
}

// Delta returns the time since the previous call. Time going backwards
// yields zero.
func (c *Clock) Delta(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return c.nominal
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Nominal is the frame length at the configured rate.
func (c *Clock) Nominal() time.Duration { return c.nominal }

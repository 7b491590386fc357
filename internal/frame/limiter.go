// Package frame paces the viewer loop.
package frame

import "time"

// Limiter provides high-precision frame rate limiting
type Limiter struct {
	next time.Time
}

// NewLimiter creates a new limiter
func NewLimiter() *Limiter {
	return &Limiter{}
}

// Wait blocks until the next frame is due at fps frames per second. A
// non-positive fps disables the cap.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *Limiter) Wait(fps int) {
	if fps <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(fps)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}

// Clock measures the time between frames, capped so a stall does not turn
// into one huge growth step.
type Clock struct {
	last time.Time
	max  time.Duration
}

// NewClock creates a clock whose deltas never exceed maxStep.
func NewClock(maxStep time.Duration) *Clock {
	return &Clock{max: maxStep}
}

// Tick returns the seconds since the previous Tick (0 on the first call).
func (c *Clock) Tick() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := min(now.Sub(c.last), c.max)
	c.last = now
	return d.Seconds()
}

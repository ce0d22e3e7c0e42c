package input

import "time"

// Cooldown suppresses repeated activations inside a fixed window after a
// successful one. Suppressed attempts are dropped, never queued.
type Cooldown struct {
	Window time.Duration

	last   time.Time
	marked bool
}

// NewCooldown creates a cooldown with the given window.
func NewCooldown(window time.Duration) *Cooldown {
	return &Cooldown{Window: window}
}

// Allow reports whether an activation at now is outside the window.
func (c *Cooldown) Allow(now time.Time) bool {
	if !c.marked {
		return true
	}
	return now.Sub(c.last) >= c.Window
}

// Mark records a successful activation at now.
func (c *Cooldown) Mark(now time.Time) {
	c.last = now
	c.marked = true
}

// Reset forgets the last activation.
func (c *Cooldown) Reset() {
	c.marked = false
}

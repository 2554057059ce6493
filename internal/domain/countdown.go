package domain

import (
	"fmt"
	"time"
)

// DefaultFocusSeconds is the countdown length a fresh session starts with.
const DefaultFocusSeconds = 25 * 60

// Countdown is the focus timer. It counts whole seconds down to zero and
// stops itself there; it never goes negative and never resets on its own.
type Countdown struct {
	initial   int
	remaining int
	running   bool
}

// NewCountdown creates a stopped countdown of the given length.
// Non-positive durations fall back to DefaultFocusSeconds.
func NewCountdown(d time.Duration) Countdown {
	secs := int(d / time.Second)
	if secs <= 0 {
		secs = DefaultFocusSeconds
	}
	return Countdown{initial: secs, remaining: secs}
}

// Remaining returns the seconds left.
func (c Countdown) Remaining() int { return c.remaining }

// Initial returns the length Reset restores.
func (c Countdown) Initial() int { return c.initial }

// IsRunning reports whether the countdown advances on ticks.
func (c Countdown) IsRunning() bool { return c.running }

// Progress returns the elapsed fraction in [0, 1].
func (c Countdown) Progress() float64 {
	if c.initial == 0 {
		return 0
	}
	return float64(c.initial-c.remaining) / float64(c.initial)
}

// Start sets the countdown running. It is a no-op at zero.
func (c *Countdown) Start() {
	if c.remaining == 0 {
		return
	}
	c.running = true
}

// Pause stops the countdown without touching the remaining time.
func (c *Countdown) Pause() {
	c.running = false
}

// Toggle flips the running flag. Flipping on at zero settles straight back
// to stopped.
func (c *Countdown) Toggle() {
	c.running = !c.running
	c.settle()
}

// Reset restores the initial length. The running flag is left alone.
func (c *Countdown) Reset() {
	c.remaining = c.initial
}

// Tick advances one second. It returns true on the tick that brings the
// countdown to zero; that tick also stops it.
func (c *Countdown) Tick() bool {
	if !c.running || c.remaining == 0 {
		c.settle()
		return false
	}
	c.remaining--
	return c.settle()
}

// settle stops a running countdown that has hit zero.
func (c *Countdown) settle() bool {
	if c.running && c.remaining == 0 {
		c.running = false
		return true
	}
	return false
}

// FormatClock renders seconds as MM:SS. Minutes are zero-padded to two
// digits and are never truncated.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

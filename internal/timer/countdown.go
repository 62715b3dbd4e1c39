// Package timer implements the in-memory countdown used while cooking a
// step. Countdowns live only for the current cooking run and are abandoned
// when the process exits.
package timer

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Option configures a countdown.
type Option func(*Countdown)

// WithTickInterval sets how often the countdown decrements. Tests shorten it.
func WithTickInterval(d time.Duration) Option {
	return func(c *Countdown) {
		c.tickInterval = d
	}
}

// Countdown ticks a step duration down once per second. A paused countdown
// holds its remaining time until resumed or stopped.
type Countdown struct {
	label        string
	log          *zap.Logger
	tickInterval time.Duration

	mu        sync.Mutex
	remaining time.Duration
	running   bool
	paused    bool
	done      chan struct{}
	fired     func(label string)
}

// New creates a countdown for one step duration. fired is called once, from
// the tick goroutine, when the countdown reaches zero; it may be nil.
func New(label string, d time.Duration, fired func(label string), log *zap.Logger, opts ...Option) *Countdown {
	c := &Countdown{
		label:        label,
		log:          log,
		tickInterval: 1 * time.Second,
		remaining:    d,
		fired:        fired,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins ticking. Non-blocking; starting a running countdown is a no-op.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return
	}
	c.running = true
	c.paused = false
	c.done = make(chan struct{})

	go c.loop(c.done)

	c.log.Debug("countdown started",
		zap.String("label", c.label),
		zap.Duration("remaining", c.remaining))
}

// Remaining reports the time left.
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Running reports whether the countdown is ticking (paused still counts as
// running; a fired or stopped countdown does not).
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Pause holds the countdown at its current remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Resume continues a paused countdown.
func (c *Countdown) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
}

// Stop abandons the countdown without firing.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}
	c.running = false
	close(c.done)
}

func (c *Countdown) loop(done chan struct{}) {
	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if c.tick() {
				return
			}
		}
	}
}

// tick decrements once and reports whether the countdown finished.
func (c *Countdown) tick() bool {
	c.mu.Lock()
	if c.paused || !c.running {
		c.mu.Unlock()
		return !c.running
	}

	c.remaining -= c.tickInterval
	if c.remaining > 0 {
		c.mu.Unlock()
		return false
	}

	c.remaining = 0
	c.running = false
	fired := c.fired
	label := c.label
	c.mu.Unlock()

	c.log.Debug("countdown fired", zap.String("label", label))
	if fired != nil {
		fired(label)
	}
	return true
}

// FormatRemaining renders a remaining duration as "M:SS" for display.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

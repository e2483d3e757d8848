package timer

import (
	"sync"
	"time"
)

// Countdown is a single-shot timer armed for a fixed duration.
// Cancelling it reports how much of the duration was left, which is
// what lets a periodic loop preserve its cadence when work completes
// before the interval elapses. Safe for concurrent use.
type Countdown struct {
	mu       sync.Mutex
	deadline time.Time
	timer    *time.Timer
	ch       chan struct{}
	fired    bool
	stopped  bool
}

// Start arms a new countdown for d.
func Start(d time.Duration) *Countdown {
	c := &Countdown{
		deadline: time.Now().Add(d),
		ch:       make(chan struct{}, 1),
	}
	c.timer = time.AfterFunc(d, func() {
		c.mu.Lock()
		c.fired = true
		c.mu.Unlock()
		select {
		case c.ch <- struct{}{}:
		default:
		}
	})
	return c
}

// C returns a channel that receives once when the countdown elapses.
func (c *Countdown) C() <-chan struct{} {
	return c.ch
}

// Cancel stops the countdown and returns the unused remaining
// duration. If the countdown already fired (or was already cancelled),
// it returns zero and fired=true so the caller knows not to wait
// again.
func (c *Countdown) Cancel() (remaining time.Duration, fired bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fired || c.stopped {
		return 0, true
	}
	c.timer.Stop()
	c.stopped = true

	remaining = time.Until(c.deadline)
	if remaining < 0 {
		return 0, true
	}
	return remaining, false
}

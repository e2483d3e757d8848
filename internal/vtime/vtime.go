package vtime

import (
	"sync"
	"time"
)

// Source is the virtual time boundary: a readable notion of "now" that
// an external authority is permitted to correct.
type Source interface {
	// Now returns the current virtual time.
	Now() time.Time
	// SetNow applies an authoritative correction so that subsequent
	// reads continue from t.
	SetNow(t time.Time)
}

// Clock is a Source backed by the system clock with a mutable offset.
// The zero value reads system time unadjusted. Safe for concurrent use.
type Clock struct {
	mu     sync.RWMutex
	offset time.Duration
}

// NewClock returns a Clock with no initial offset.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns system time adjusted by the current offset.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Now().Add(c.offset)
}

// SetNow re-anchors the clock so that Now reads t at the moment of the
// call and continues advancing at system-clock rate from there.
func (c *Clock) SetNow(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = time.Until(t)
}

// Offset returns the current adjustment relative to the system clock.
func (c *Clock) Offset() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

// Manual is a Source that only moves when told to. Tests use it to
// pin timestamps without sleeping. Safe for concurrent use.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManual returns a Manual source starting at t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

// Now returns the pinned time.
func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetNow pins the time to t.
func (m *Manual) SetNow(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the pinned time forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

package clock

import "sync/atomic"

// LamportTime is a scalar logical timestamp. It respects the
// happened-before relation but cannot distinguish concurrency.
type LamportTime uint64

// Tick returns the timestamp for a local or send event: one past the
// current time. The result strictly exceeds the receiver.
func (t LamportTime) Tick() LamportTime {
	return t + 1
}

// Witness returns the timestamp after observing a remote timestamp:
// one past the maximum of the two. The result strictly exceeds both
// the receiver and the observed value, including when the observed
// value is stale (smaller than the receiver).
func (t LamportTime) Witness(observed LamportTime) LamportTime {
	if observed > t {
		return observed + 1
	}
	return t + 1
}

// LamportClock is a process-owned Lamport counter. The zero value is
// ready to use. Methods are safe for concurrent use, though a clock is
// expected to be driven by a single owning process.
type LamportClock struct {
	time uint64
}

// Time returns the current timestamp without advancing the clock.
func (c *LamportClock) Time() LamportTime {
	return LamportTime(atomic.LoadUint64(&c.time))
}

// Next advances the clock for a local or send event and returns the
// new timestamp.
func (c *LamportClock) Next() LamportTime {
	return LamportTime(atomic.AddUint64(&c.time, 1))
}

// Witness advances the clock past an observed remote timestamp and
// returns the new timestamp.
func (c *LamportClock) Witness(observed LamportTime) LamportTime {
	for {
		cur := atomic.LoadUint64(&c.time)
		next := uint64(LamportTime(cur).Witness(observed))
		if atomic.CompareAndSwapUint64(&c.time, cur, next) {
			return LamportTime(next)
		}
	}
}

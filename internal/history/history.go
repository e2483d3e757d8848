package history

import (
	"sync"
	"time"
)

// Round records one completed probe round-trip and the estimates it
// produced. Rounds are ephemeral: they live only in the in-memory log.
type Round struct {
	ClientSend  time.Time
	ServerSend  time.Time
	ClientRecv  time.Time
	RTT         time.Duration
	SmoothedRTT time.Duration
	Estimate    time.Time
}

// Log is a bounded, append-only log of rounds. When full, appending
// evicts the oldest entry. Safe for concurrent use.
type Log struct {
	mu     sync.RWMutex
	cap    int
	rounds []Round
}

// DefaultCapacity bounds a log created with capacity <= 0.
const DefaultCapacity = 128

// NewLog creates a log holding at most capacity rounds.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		cap:    capacity,
		rounds: make([]Round, 0, capacity),
	}
}

// Append records a completed round, evicting the oldest if the log is
// at capacity.
func (l *Log) Append(r Round) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.rounds) == l.cap {
		copy(l.rounds, l.rounds[1:])
		l.rounds = l.rounds[:len(l.rounds)-1]
	}
	l.rounds = append(l.rounds, r)
}

// Len returns the number of recorded rounds.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.rounds)
}

// Last returns the most recent round, if any.
func (l *Log) Last() (Round, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.rounds) == 0 {
		return Round{}, false
	}
	return l.rounds[len(l.rounds)-1], true
}

// Recent returns up to n of the most recent rounds, oldest first. The
// returned slice is a copy.
func (l *Log) Recent(n int) []Round {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n <= 0 || n > len(l.rounds) {
		n = len(l.rounds)
	}
	out := make([]Round, n)
	copy(out, l.rounds[len(l.rounds)-n:])
	return out
}

package clock

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNegativeCounter reports a vector clock entry with a negative
// counter. Internal operations never produce one; it can only enter
// through decoded wire data, and doing so is a caller contract
// violation.
var ErrNegativeCounter = errors.New("clock: negative counter")

// VectorClock maps a process id to that process's event counter.
// An id absent from the map has counter 0, so the mapping is
// conceptually open: ids are added lazily the first time they are
// incremented or merged in. Increment, Merge and Compare never mutate
// their operands; each process owns exactly one clock and only ever
// increments its own entry.
type VectorClock map[string]int64

// New creates a new empty vector clock.
func New() VectorClock {
	return make(VectorClock)
}

// Get returns the counter for the given process id, or 0 if absent.
// It never materializes the entry.
func (vc VectorClock) Get(id string) int64 {
	return vc[id]
}

// Set sets the counter for the given process id.
func (vc VectorClock) Set(id string, value int64) {
	vc[id] = value
}

// Copy creates a deep copy of the vector clock.
func (vc VectorClock) Copy() VectorClock {
	out := make(VectorClock, len(vc))
	for k, v := range vc {
		out[k] = v
	}
	return out
}

// Increment returns a new clock equal to vc except that the entry for
// id is one greater (0 if absent). vc is left untouched.
func (vc VectorClock) Increment(id string) VectorClock {
	out := vc.Copy()
	out[id]++
	return out
}

// Merge returns the componentwise maximum over the union of both key
// sets. Neither operand is mutated. Merge is commutative, associative
// and idempotent, and every component is monotonically non-decreasing
// under it.
func (vc VectorClock) Merge(other VectorClock) VectorClock {
	out := vc.Copy()
	for id, counter := range other {
		if out[id] < counter {
			out[id] = counter
		}
	}
	return out
}

// Ordering is the causal relationship between two vector clocks.
type Ordering int

const (
	// Before means every component is <= and at least one is strictly
	// less: the receiver causally precedes the argument.
	Before Ordering = iota
	// After means every component is >= and at least one is strictly
	// greater: the receiver causally follows the argument.
	After
	// Concurrent means neither clock dominates the other. Identical
	// clocks also compare Concurrent: two event histories with equal
	// vectors carry no causal relationship either way.
	Concurrent
)

// String returns the string representation of an Ordering.
func (o Ordering) String() string {
	switch o {
	case Before:
		return "BEFORE"
	case After:
		return "AFTER"
	case Concurrent:
		return "CONCURRENT"
	default:
		return "UNKNOWN"
	}
}

// Compare determines the causal order between vc and other. Both
// clocks are extended to the union of their key sets with absent
// entries read as 0; neither operand is mutated. Disjoint key sets and
// identical clocks both compare Concurrent.
func (vc VectorClock) Compare(other VectorClock) Ordering {
	var less, greater bool
	for id, v := range vc {
		if ov := other[id]; v < ov {
			less = true
		} else if v > ov {
			greater = true
		}
	}
	for id, ov := range other {
		if _, seen := vc[id]; seen {
			continue
		}
		if ov > 0 {
			less = true
		}
	}

	switch {
	case less && !greater:
		return Before
	case greater && !less:
		return After
	default:
		return Concurrent
	}
}

// Equal reports whether both clocks assign the same counter to every
// process id, reading absent entries as 0.
func (vc VectorClock) Equal(other VectorClock) bool {
	for id, v := range vc {
		if other[id] != v {
			return false
		}
	}
	for id, ov := range other {
		if _, seen := vc[id]; !seen && ov != 0 {
			return false
		}
	}
	return true
}

// Validate checks the domain invariant that every counter is
// non-negative. It returns ErrNegativeCounter wrapped with the
// offending id, or nil.
func (vc VectorClock) Validate() error {
	for id, v := range vc {
		if v < 0 {
			return fmt.Errorf("entry %q = %d: %w", id, v, ErrNegativeCounter)
		}
	}
	return nil
}

// String returns a deterministic string representation, with entries
// sorted by process id.
func (vc VectorClock) String() string {
	if len(vc) == 0 {
		return "{}"
	}

	keys := make([]string, 0, len(vc))
	for k := range vc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", k, vc[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Dominates returns true if vc happened after other.
func (vc VectorClock) Dominates(other VectorClock) bool {
	return vc.Compare(other) == After
}

// IsConcurrent returns true if vc and other are causally unrelated.
func (vc VectorClock) IsConcurrent(other VectorClock) bool {
	return vc.Compare(other) == Concurrent
}

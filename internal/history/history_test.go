package history

import (
	"testing"
	"time"
)

func TestLog_AppendAndLast(t *testing.T) {
	l := NewLog(4)

	if _, ok := l.Last(); ok {
		t.Error("Empty log should have no last round")
	}

	r := Round{RTT: 10 * time.Millisecond}
	l.Append(r)

	last, ok := l.Last()
	if !ok || last.RTT != 10*time.Millisecond {
		t.Errorf("Last = (%v, %v), want appended round", last, ok)
	}
	if l.Len() != 1 {
		t.Errorf("Len = %d, want 1", l.Len())
	}
}

func TestLog_EvictsOldest(t *testing.T) {
	l := NewLog(3)
	for i := 1; i <= 5; i++ {
		l.Append(Round{RTT: time.Duration(i) * time.Millisecond})
	}

	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}

	recent := l.Recent(0)
	want := []time.Duration{3 * time.Millisecond, 4 * time.Millisecond, 5 * time.Millisecond}
	for i, r := range recent {
		if r.RTT != want[i] {
			t.Errorf("Recent[%d].RTT = %v, want %v", i, r.RTT, want[i])
		}
	}
}

func TestLog_RecentIsCopy(t *testing.T) {
	l := NewLog(4)
	l.Append(Round{RTT: time.Millisecond})

	recent := l.Recent(1)
	recent[0].RTT = time.Hour

	last, _ := l.Last()
	if last.RTT != time.Millisecond {
		t.Error("Mutating Recent result should not affect the log")
	}
}

func TestLog_RecentSubset(t *testing.T) {
	l := NewLog(8)
	for i := 1; i <= 4; i++ {
		l.Append(Round{RTT: time.Duration(i) * time.Millisecond})
	}

	recent := l.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("Recent(2) returned %d rounds", len(recent))
	}
	if recent[0].RTT != 3*time.Millisecond || recent[1].RTT != 4*time.Millisecond {
		t.Errorf("Recent(2) = %v, want newest two oldest-first", recent)
	}
}

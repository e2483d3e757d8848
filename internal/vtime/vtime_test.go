package vtime

import (
	"testing"
	"time"
)

func TestClock_SetNow(t *testing.T) {
	c := NewClock()

	target := time.Now().Add(500 * time.Millisecond)
	c.SetNow(target)

	got := c.Now()
	diff := got.Sub(target)
	if diff < 0 {
		diff = -diff
	}
	if diff > 100*time.Millisecond {
		t.Errorf("Now after SetNow is off by %v", diff)
	}

	if off := c.Offset(); off < 300*time.Millisecond || off > 700*time.Millisecond {
		t.Errorf("Offset = %v, want roughly 500ms", off)
	}
}

func TestClock_ZeroValueTracksSystemTime(t *testing.T) {
	var c Clock
	diff := time.Since(c.Now())
	if diff < 0 {
		diff = -diff
	}
	if diff > 100*time.Millisecond {
		t.Errorf("Unadjusted clock diverges from system time by %v", diff)
	}
}

func TestManual(t *testing.T) {
	start := time.Unix(1000, 0)
	m := NewManual(start)

	if !m.Now().Equal(start) {
		t.Errorf("Now = %v, want %v", m.Now(), start)
	}

	m.Advance(3 * time.Second)
	if !m.Now().Equal(start.Add(3 * time.Second)) {
		t.Errorf("Now after Advance = %v", m.Now())
	}

	m.SetNow(time.Unix(2000, 0))
	if !m.Now().Equal(time.Unix(2000, 0)) {
		t.Errorf("Now after SetNow = %v", m.Now())
	}
}

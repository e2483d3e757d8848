package timesync

import (
	"testing"
	"time"
)

func TestEstimator_ConvergesMonotonically(t *testing.T) {
	e := NewEstimator(0.9)
	sample := 100 * time.Millisecond

	prev := e.RTT()
	for i := 0; i < 50; i++ {
		got := e.Observe(sample)
		if got <= prev && got != sample {
			t.Fatalf("round %d: estimate %v did not increase toward %v (prev %v)", i, got, sample, prev)
		}
		if got > sample {
			t.Fatalf("round %d: estimate %v overshot constant sample %v", i, got, sample)
		}
		prev = got
	}

	if diff := sample - prev; diff > 2*time.Millisecond {
		t.Errorf("estimate %v still %v away from sample after 50 rounds", prev, diff)
	}
}

func TestEstimator_WeightsHistory(t *testing.T) {
	e := NewEstimator(0.9)
	e.Observe(100 * time.Millisecond)

	// A transient spike should barely move the estimate.
	before := e.RTT()
	after := e.Observe(time.Second)
	moved := after - before
	if moved > 150*time.Millisecond {
		t.Errorf("single spike moved estimate by %v, smoothing too weak", moved)
	}
}

func TestEstimator_InvalidAlphaFallsBack(t *testing.T) {
	for _, alpha := range []float64{-0.5, 1.0, 2.0} {
		e := NewEstimator(alpha)
		// With DefaultAlpha = 0.9 the first observation of 100ms
		// smooths to 10ms. The arithmetic runs in float64 and the
		// result truncates back to a Duration, so allow a
		// sub-microsecond rounding slack.
		got := e.Observe(100 * time.Millisecond)
		diff := got - 10*time.Millisecond
		if diff < 0 {
			diff = -diff
		}
		if diff > time.Microsecond {
			t.Errorf("alpha %v: first observation = %v, want ~10ms under default smoothing", alpha, got)
		}
	}
}

func TestEstimator_EstimateNow(t *testing.T) {
	e := NewEstimator(0.5)
	e.Observe(20 * time.Millisecond) // rtt = 10ms

	serverSend := time.Unix(5000, 0)
	got := e.EstimateNow(serverSend)
	want := serverSend.Add(5 * time.Millisecond)
	if !got.Equal(want) {
		t.Errorf("EstimateNow = %v, want server time + rtt/2 = %v", got, want)
	}
}

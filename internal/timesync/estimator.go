package timesync

import "time"

// DefaultAlpha is the default EWMA smoothing factor: the weight of
// accumulated history relative to the newest sample.
const DefaultAlpha = 0.9

// Estimator smooths round-trip time samples with an exponentially
// weighted moving average and projects a reference timestamp forward
// by the estimated one-way delay. It is owned by a single synchronizer
// loop and is not safe for concurrent use.
type Estimator struct {
	alpha float64
	rtt   time.Duration
}

// NewEstimator creates an estimator with the given smoothing factor.
// Factors outside [0, 1) fall back to DefaultAlpha.
func NewEstimator(alpha float64) *Estimator {
	if alpha < 0 || alpha >= 1 {
		alpha = DefaultAlpha
	}
	return &Estimator{alpha: alpha}
}

// Observe folds a measured round-trip sample into the estimate and
// returns the new smoothed value. Skipped rounds must not call
// Observe.
func (e *Estimator) Observe(sample time.Duration) time.Duration {
	e.rtt = time.Duration(e.alpha*float64(e.rtt) + (1-e.alpha)*float64(sample))
	return e.rtt
}

// RTT returns the current smoothed round-trip estimate.
func (e *Estimator) RTT() time.Duration {
	return e.rtt
}

// EstimateNow projects the server's send timestamp forward by half the
// smoothed round-trip time: the assumed one-way delay from server to
// client.
func (e *Estimator) EstimateNow(serverSend time.Time) time.Time {
	return serverSend.Add(e.rtt / 2)
}

// Package timesync implements a client-driven request/response time
// synchronization protocol against a reference time source. A probe
// round measures round-trip time; an exponentially-weighted moving
// average smooths the measurements; the reference timestamp projected
// forward by half the smoothed round-trip approximates "now" at the
// client and is applied as an authoritative correction to the local
// virtual clock.
//
// Probe rounds that receive no reply within the bounded wait are
// skipped, not measured: they leave the estimator untouched and the
// round is retried. The periodic loop preserves its cadence by
// carrying over the unused remainder of the resynchronization interval
// when a round completes early.
package timesync

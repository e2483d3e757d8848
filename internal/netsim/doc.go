// Package netsim provides an in-memory network between a synchronizing
// client and a reference time server, with configurable per-direction
// delay, jitter and drop probability. Tests use it to exercise the
// synchronizer under message loss and latency without real sockets.
package netsim

// Package clock provides logical clocks for tracking causality between
// processes that communicate only by message passing: scalar Lamport
// clocks and vector clocks with a causal-order comparator. Clock values
// travel between processes by value inside messages, never by shared
// reference, so no operation here requires locking by its caller.
package clock

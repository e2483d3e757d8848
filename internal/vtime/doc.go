// Package vtime provides a process-local virtual time source: the
// system clock plus an adjustable offset. The synchronizer applies an
// authoritative correction to it after each completed probe round;
// everything else in the process reads time through it.
package vtime

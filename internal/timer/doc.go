// Package timer provides a countdown timer whose cancellation reports
// the unused remaining duration, so a caller can re-arm a shorter
// follow-up wait instead of restarting the full interval.
package timer

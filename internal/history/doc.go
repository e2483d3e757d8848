// Package history provides a bounded in-memory log of completed
// synchronization rounds. The synchronizer appends one entry per
// recalibration; the status surface reads recent entries to expose
// convergence behavior without persisting anything across restarts.
package history

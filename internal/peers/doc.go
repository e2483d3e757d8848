// Package peers implements a causal heartbeat exchange between nodes.
// Each node periodically sends a heartbeat stamped with its Lamport
// time and vector clock to a random peer; the receiver folds the stamp
// into its own clocks and answers with a stamp of its own. The tracker
// keeps the last stamp seen from every peer, so the causal relationship
// between any two peers' histories can be queried locally.
package peers

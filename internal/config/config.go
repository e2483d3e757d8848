package config

import (
	"fmt"
	"strings"
	"time"
)

// Peer represents a peer node in the cluster.
type Peer struct {
	ID   string
	Addr string
}

// Config holds the node configuration.
type Config struct {
	NodeID     string
	ListenAddr string
	Peers      []Peer

	// Upstream is the address of the reference time node this node
	// synchronizes against. Empty means the node serves its own clock
	// without correcting it.
	Upstream string

	// SyncInterval is the resynchronization cadence against Upstream.
	SyncInterval time.Duration
	// ProbeTimeout bounds the wait for each probe reply.
	ProbeTimeout time.Duration
	// Alpha is the RTT smoothing factor; zero picks the default.
	Alpha float64

	// HeartbeatInterval is the cadence of causal heartbeats to peers.
	HeartbeatInterval time.Duration
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.NodeID == "" {
		return fmt.Errorf("node ID cannot be empty")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address cannot be empty")
	}
	if c.SyncInterval < 0 || c.ProbeTimeout < 0 || c.HeartbeatInterval < 0 {
		return fmt.Errorf("intervals cannot be negative")
	}
	if c.Alpha < 0 || c.Alpha >= 1 {
		return fmt.Errorf("alpha must be in [0, 1), got %v", c.Alpha)
	}
	for _, p := range c.Peers {
		if p.ID == c.NodeID {
			return fmt.Errorf("peer list contains the local node %q", c.NodeID)
		}
	}
	return nil
}

// ParsePeers parses a comma-separated list of peers in the format:
// "id1=addr1,id2=addr2,id3=addr3"
func ParsePeers(peersStr string) ([]Peer, error) {
	if peersStr == "" {
		return []Peer{}, nil
	}

	parts := strings.Split(peersStr, ",")
	peers := make([]Peer, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid peer format: %s (expected id=addr)", part)
		}

		id := strings.TrimSpace(kv[0])
		addr := strings.TrimSpace(kv[1])

		if id == "" || addr == "" {
			return nil, fmt.Errorf("peer ID and address cannot be empty: %s", part)
		}

		peers = append(peers, Peer{
			ID:   id,
			Addr: addr,
		})
	}

	return peers, nil
}

package netsim

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"clocksync/internal/timesync"
	"clocksync/internal/vtime"
)

// Config configures fault injection for a simulated network.
type Config struct {
	// Delay is the fixed one-way latency applied in each direction.
	Delay time.Duration
	// Jitter adds a uniform random extra latency in [0, Jitter) per leg.
	Jitter time.Duration
	// DropRate is the per-leg probability of losing a message. A lost
	// leg means the probe never completes and the client's bounded
	// wait expires.
	DropRate float64
}

// Stats counts traffic through the network.
type Stats struct {
	Legs    int
	Dropped int
}

// Network is a simulated two-way link. Safe for concurrent use.
type Network struct {
	mu    sync.Mutex
	cfg   Config
	rng   *rand.Rand
	stats Stats
}

// NewNetwork creates a network with the given fault configuration and
// a deterministic RNG seed.
func NewNetwork(cfg Config, seed int64) *Network {
	return &Network{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// SetConfig swaps the fault configuration at runtime.
func (n *Network) SetConfig(cfg Config) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cfg = cfg
}

// Stats returns a snapshot of the traffic counters.
func (n *Network) Stats() Stats {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stats
}

// transit carries one message leg across the network: it either
// delivers after the configured delay or, when the leg is dropped,
// blocks until ctx expires the way a lost datagram would.
func (n *Network) transit(ctx context.Context) error {
	n.mu.Lock()
	cfg := n.cfg
	n.stats.Legs++
	dropped := cfg.DropRate > 0 && n.rng.Float64() < cfg.DropRate
	if dropped {
		n.stats.Dropped++
	}
	var extra time.Duration
	if cfg.Jitter > 0 {
		extra = time.Duration(n.rng.Int63n(int64(cfg.Jitter)))
	}
	n.mu.Unlock()

	if dropped {
		<-ctx.Done()
		return ctx.Err()
	}

	delay := cfg.Delay + extra
	if delay <= 0 {
		return nil
	}
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Server is a reference time source on the far side of the network.
// It answers each probe with the echoed client timestamp and its own
// clock reading at the moment of reply.
type Server struct {
	clock vtime.Source
}

// NewServer creates a reference server reading time from clock.
func NewServer(clock vtime.Source) *Server {
	return &Server{clock: clock}
}

// Respond builds the reply for one probe.
func (s *Server) Respond(req timesync.ProbeRequest) timesync.ProbeReply {
	return timesync.ProbeReply{
		ClientSend: req.ClientSend,
		ServerSend: s.clock.Now(),
	}
}

// Link connects a synchronizing client to a reference server through
// the simulated network. It implements timesync.Prober.
type Link struct {
	net *Network
	srv *Server
}

// NewLink creates a link crossing net to reach srv.
func NewLink(net *Network, srv *Server) *Link {
	return &Link{net: net, srv: srv}
}

// Probe carries the request leg, lets the server respond, and carries
// the reply leg back. Either leg may be delayed or dropped.
func (l *Link) Probe(ctx context.Context, req timesync.ProbeRequest) (timesync.ProbeReply, error) {
	if err := l.net.transit(ctx); err != nil {
		return timesync.ProbeReply{}, err
	}
	rep := l.srv.Respond(req)
	if err := l.net.transit(ctx); err != nil {
		return timesync.ProbeReply{}, err
	}
	return rep, nil
}

package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clocksync/internal/config"
	"clocksync/internal/node"
)

func main() {
	nodeID := flag.String("node-id", "", "Unique node identifier (required)")
	listen := flag.String("listen", ":50051", "Listen address")
	peersStr := flag.String("peers", "", "Comma-separated peers: id1=addr1,id2=addr2")
	upstream := flag.String("upstream", "", "Address of the reference time node (empty: serve own clock)")
	syncInterval := flag.Duration("sync-interval", 10*time.Second, "Resynchronization cadence")
	probeTimeout := flag.Duration("probe-timeout", 2*time.Second, "Per-probe reply timeout")
	alpha := flag.Float64("alpha", 0, "RTT smoothing factor in (0,1); 0 picks the default")
	heartbeatInterval := flag.Duration("heartbeat-interval", time.Second, "Causal heartbeat cadence")
	flag.Parse()

	peers, err := config.ParsePeers(*peersStr)
	if err != nil {
		log.Fatalf("Invalid peers: %v", err)
	}

	cfg := config.Config{
		NodeID:            *nodeID,
		ListenAddr:        *listen,
		Peers:             peers,
		Upstream:          *upstream,
		SyncInterval:      *syncInterval,
		ProbeTimeout:      *probeTimeout,
		Alpha:             *alpha,
		HeartbeatInterval: *heartbeatInterval,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	n := node.NewNode(cfg)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("[%s] Received %v, shutting down", cfg.NodeID, sig)
		n.Stop()
	}()

	if err := n.Start(); err != nil {
		log.Fatalf("[%s] Node failed: %v", cfg.NodeID, err)
	}
}

package node

import (
	"context"
	"fmt"
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"clocksync/internal/config"
	clocksyncpb "clocksync/internal/gen/api"
	"clocksync/internal/history"
	"clocksync/internal/peers"
	"clocksync/internal/timesync"
	"clocksync/internal/vtime"
)

// Node is a single clock node: it serves reference time and causal
// heartbeats over gRPC, and optionally synchronizes its own virtual
// clock against an upstream reference.
type Node struct {
	nodeID     string
	listenAddr string
	grpcServer *grpc.Server

	clock     *vtime.Clock
	hist      *history.Log
	sync      *timesync.Synchronizer // nil without an upstream
	tracker   *peers.Tracker
	clientMgr *ClientManager
}

// NewNode creates a new node instance from a validated configuration.
func NewNode(cfg config.Config) *Node {
	clk := vtime.NewClock()
	clientMgr := NewClientManager()

	tracker := peers.NewTracker(cfg.NodeID, cfg.HeartbeatInterval, 0)
	for _, p := range cfg.Peers {
		tracker.AddPeer(p.ID, p.Addr)
	}

	n := &Node{
		nodeID:     cfg.NodeID,
		listenAddr: cfg.ListenAddr,
		clock:      clk,
		hist:       history.NewLog(0),
		tracker:    tracker,
		clientMgr:  clientMgr,
	}

	if cfg.Upstream != "" {
		prober := &grpcProber{mgr: clientMgr, addr: cfg.Upstream}
		n.sync = timesync.New(cfg.NodeID, clk, prober, n.hist, timesync.Config{
			Interval:     cfg.SyncInterval,
			ProbeTimeout: cfg.ProbeTimeout,
			Alpha:        cfg.Alpha,
		})
	}

	return n
}

// Start starts the gRPC server and the background loops, then serves
// until Stop is called.
func (n *Node) Start() error {
	lis, err := net.Listen("tcp", n.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", n.listenAddr, err)
	}

	n.grpcServer = grpc.NewServer()

	server := NewServer(n.nodeID, n.clock, n.sync, n.tracker)
	clocksyncpb.RegisterTimeSyncServer(n.grpcServer, server)
	clocksyncpb.RegisterCausalServer(n.grpcServer, server)

	// Enable gRPC reflection for grpcurl
	reflection.Register(n.grpcServer)

	n.tracker.Start(n.sendHeartbeat)
	if n.sync != nil {
		n.sync.Start()
		log.Printf("[%s] Synchronizing against upstream", n.nodeID)
	}

	log.Printf("[%s] Starting node on %s", n.nodeID, n.listenAddr)

	if err := n.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop gracefully stops the node.
func (n *Node) Stop() {
	if n.sync != nil {
		n.sync.Close()
	}
	n.tracker.Stop()
	if n.grpcServer != nil {
		log.Printf("[%s] Stopping node", n.nodeID)
		n.grpcServer.GracefulStop()
	}
	n.clientMgr.Close()
}

// SyncStatus returns the synchronizer snapshot, or a zero status in
// the Idle state when the node has no upstream.
func (n *Node) SyncStatus() timesync.Status {
	if n.sync == nil {
		return timesync.Status{State: timesync.Idle}
	}
	return n.sync.Status()
}

// sendHeartbeat delivers a stamped heartbeat to the peer at addr and
// returns the peer's answering stamp.
func (n *Node) sendHeartbeat(ctx context.Context, addr string, hb peers.Heartbeat) (peers.Heartbeat, error) {
	client, err := n.clientMgr.GetCausalClient(addr)
	if err != nil {
		return peers.Heartbeat{}, err
	}

	ack, err := client.Ping(ctx, heartbeatToProto(hb))
	if err != nil {
		return peers.Heartbeat{}, err
	}
	return protoToHeartbeat(ack)
}

// grpcProber implements timesync.Prober over the TimeSync service.
type grpcProber struct {
	mgr  *ClientManager
	addr string
}

func (p *grpcProber) Probe(ctx context.Context, req timesync.ProbeRequest) (timesync.ProbeReply, error) {
	client, err := p.mgr.GetTimeSyncClient(p.addr)
	if err != nil {
		return timesync.ProbeReply{}, err
	}

	sent := timeToMicros(req.ClientSend)
	reply, err := client.Probe(ctx, &clocksyncpb.ProbeRequest{
		ClientSendUnixMicros: sent,
	})
	if err != nil {
		return timesync.ProbeReply{}, err
	}

	// The wire carries microseconds, so a faithful echo loses the
	// sub-microsecond part of ClientSend. Restore the original value
	// when the echo matches; a mismatch passes through untouched so
	// the synchronizer sees the violation.
	echoed := microsToTime(reply.ClientSendUnixMicros)
	if reply.ClientSendUnixMicros == sent {
		echoed = req.ClientSend
	}

	return timesync.ProbeReply{
		ClientSend: echoed,
		ServerSend: microsToTime(reply.ServerSendUnixMicros),
	}, nil
}

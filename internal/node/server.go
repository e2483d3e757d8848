package node

import (
	"context"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	clocksyncpb "clocksync/internal/gen/api"
	"clocksync/internal/peers"
	"clocksync/internal/timesync"
	"clocksync/internal/vtime"
)

// Server implements the TimeSync and Causal gRPC services.
type Server struct {
	clocksyncpb.UnimplementedTimeSyncServer
	clocksyncpb.UnimplementedCausalServer

	nodeID  string
	clock   vtime.Source
	sync    *timesync.Synchronizer // nil when this node has no upstream
	tracker *peers.Tracker
}

// NewServer creates a new gRPC server instance. sync may be nil for a
// node that serves reference time but does not synchronize itself.
func NewServer(nodeID string, clk vtime.Source, sync *timesync.Synchronizer, tracker *peers.Tracker) *Server {
	return &Server{
		nodeID:  nodeID,
		clock:   clk,
		sync:    sync,
		tracker: tracker,
	}
}

// Probe handles a time probe: echo the client's send timestamp and
// attach this node's virtual time, read as late as possible.
func (s *Server) Probe(ctx context.Context, req *clocksyncpb.ProbeRequest) (*clocksyncpb.ProbeReply, error) {
	return &clocksyncpb.ProbeReply{
		ClientSendUnixMicros: req.ClientSendUnixMicros,
		ServerSendUnixMicros: timeToMicros(s.clock.Now()),
	}, nil
}

// Status reports the synchronizer's state and current estimates.
func (s *Server) Status(ctx context.Context, req *clocksyncpb.SyncStatusRequest) (*clocksyncpb.SyncStatusReply, error) {
	if s.sync == nil {
		return &clocksyncpb.SyncStatusReply{State: timesync.Idle.String()}, nil
	}

	st := s.sync.Status()
	reply := &clocksyncpb.SyncStatusReply{
		State:                   st.State.String(),
		EstimatedRttMicros:      st.EstimatedRTT.Microseconds(),
		EstimatedTimeUnixMicros: timeToMicros(st.LastEstimate),
		Rounds:                  st.Rounds,
		Skipped:                 st.Skipped,
	}
	if st.Err != nil {
		reply.Error = st.Err.Error()
	}
	return reply, nil
}

// Ping handles a stamped heartbeat from a peer: fold it into the local
// clocks and answer with this node's own stamp.
func (s *Server) Ping(ctx context.Context, req *clocksyncpb.Heartbeat) (*clocksyncpb.Heartbeat, error) {
	hb, err := protoToHeartbeat(req)
	if err != nil {
		log.Printf("[%s] causal: rejecting heartbeat: %v", s.nodeID, err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	s.tracker.Observe(hb)
	return heartbeatToProto(s.tracker.Stamp()), nil
}

package node

import (
	"fmt"
	"time"

	"clocksync/internal/clock"
	clocksyncpb "clocksync/internal/gen/api"
	"clocksync/internal/peers"
)

// Timestamps cross the wire as microseconds since the Unix epoch. A
// zero value means "unset"; microsToTime maps it back to the zero
// time.Time so IsZero checks keep working on the receiving side.

func timeToMicros(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMicro()
}

func microsToTime(us int64) time.Time {
	if us == 0 {
		return time.Time{}
	}
	return time.UnixMicro(us)
}

// protoToVectorClock converts a protobuf VectorClock to the internal
// representation, rejecting negative counters.
func protoToVectorClock(pb *clocksyncpb.VectorClock) (clock.VectorClock, error) {
	if pb == nil {
		return nil, nil
	}
	vc := clock.New()
	for _, entry := range pb.Entries {
		if entry.Counter < 0 {
			return nil, fmt.Errorf("node %q has counter %d: %w", entry.NodeId, entry.Counter, clock.ErrNegativeCounter)
		}
		vc.Set(entry.NodeId, entry.Counter)
	}
	return vc, nil
}

// vectorClockToProto converts an internal clock.VectorClock to its
// protobuf form.
func vectorClockToProto(vc clock.VectorClock) *clocksyncpb.VectorClock {
	pb := &clocksyncpb.VectorClock{
		Entries: make([]*clocksyncpb.VectorClockEntry, 0, len(vc)),
	}
	for nodeID, counter := range vc {
		pb.Entries = append(pb.Entries, &clocksyncpb.VectorClockEntry{
			NodeId:  nodeID,
			Counter: counter,
		})
	}
	return pb
}

// protoToHeartbeat validates and converts a wire heartbeat.
func protoToHeartbeat(pb *clocksyncpb.Heartbeat) (peers.Heartbeat, error) {
	if pb == nil {
		return peers.Heartbeat{}, fmt.Errorf("empty heartbeat")
	}
	if pb.FromId == "" {
		return peers.Heartbeat{}, fmt.Errorf("heartbeat without sender id")
	}
	vc, err := protoToVectorClock(pb.Vector)
	if err != nil {
		return peers.Heartbeat{}, err
	}
	return peers.Heartbeat{
		FromID:  pb.FromId,
		Lamport: clock.LamportTime(pb.Lamport),
		Vector:  vc,
	}, nil
}

// heartbeatToProto converts an internal heartbeat to its wire form.
func heartbeatToProto(hb peers.Heartbeat) *clocksyncpb.Heartbeat {
	return &clocksyncpb.Heartbeat{
		FromId:  hb.FromID,
		Lamport: uint64(hb.Lamport),
		Vector:  vectorClockToProto(hb.Vector),
	}
}

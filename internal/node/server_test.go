package node

import (
	"context"
	"testing"
	"time"

	clocksyncpb "clocksync/internal/gen/api"
	"clocksync/internal/peers"
	"clocksync/internal/timesync"
	"clocksync/internal/vtime"
)

func newTestServer(t *testing.T) (*Server, *vtime.Manual) {
	t.Helper()
	clk := vtime.NewManual(time.UnixMicro(1_000_000))
	tracker := peers.NewTracker("n1", time.Second, 0)
	return NewServer("n1", clk, nil, tracker), clk
}

func TestServer_ProbeEchoesAndStamps(t *testing.T) {
	srv, clk := newTestServer(t)

	reply, err := srv.Probe(context.Background(), &clocksyncpb.ProbeRequest{
		ClientSendUnixMicros: 42,
	})
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if reply.ClientSendUnixMicros != 42 {
		t.Errorf("echo = %d, want 42", reply.ClientSendUnixMicros)
	}
	if got := reply.ServerSendUnixMicros; got != clk.Now().UnixMicro() {
		t.Errorf("server send = %d, want %d", got, clk.Now().UnixMicro())
	}
}

func TestServer_StatusWithoutSynchronizer(t *testing.T) {
	srv, _ := newTestServer(t)

	status, err := srv.Status(context.Background(), &clocksyncpb.SyncStatusRequest{})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.State != timesync.Idle.String() {
		t.Errorf("state = %s, want %s", status.State, timesync.Idle)
	}
	if status.Rounds != 0 || status.Error != "" {
		t.Errorf("unexpected status %+v", status)
	}
}

func TestServer_PingFoldsHeartbeat(t *testing.T) {
	srv, _ := newTestServer(t)

	ack, err := srv.Ping(context.Background(), &clocksyncpb.Heartbeat{
		FromId:  "n2",
		Lamport: 9,
		Vector: &clocksyncpb.VectorClock{
			Entries: []*clocksyncpb.VectorClockEntry{{NodeId: "n2", Counter: 4}},
		},
	})
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}

	if ack.FromId != "n1" {
		t.Errorf("ack from %s, want n1", ack.FromId)
	}
	if ack.Lamport <= 9 {
		t.Errorf("ack Lamport = %d, must exceed witnessed 9", ack.Lamport)
	}

	counters := make(map[string]int64)
	for _, e := range ack.Vector.Entries {
		counters[e.NodeId] = e.Counter
	}
	if counters["n2"] < 4 {
		t.Errorf("ack vector lost n2's history: %v", counters)
	}
	if counters["n1"] == 0 {
		t.Error("ack vector did not count the receive on n1")
	}
}

func TestServer_PingRejectsBadHeartbeats(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []*clocksyncpb.Heartbeat{
		nil,
		{Lamport: 1},
		{
			FromId: "n2",
			Vector: &clocksyncpb.VectorClock{
				Entries: []*clocksyncpb.VectorClockEntry{{NodeId: "n2", Counter: -1}},
			},
		},
	}
	for i, hb := range cases {
		if _, err := srv.Ping(context.Background(), hb); err == nil {
			t.Errorf("case %d: bad heartbeat accepted", i)
		}
	}
}

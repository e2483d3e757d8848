package it

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clocksyncpb "clocksync/internal/gen/api"
)

func TestSmoke_ProbeEchoesClientTime(t *testing.T) {
	binaryPath := "./clocksync"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test. Build with: go build -o clocksync ./cmd/clocksync")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	err = cluster.StartCluster(ctx)
	require.NoError(t, err, "Failed to start cluster")

	node1 := cluster.GetNode("n1")
	require.NotNil(t, node1)

	sent := time.Now().UnixMicro()
	probeCtx, probeCancel := context.WithTimeout(ctx, 10*time.Second)
	reply, err := node1.GetTimeClient().Probe(probeCtx, &clocksyncpb.ProbeRequest{
		ClientSendUnixMicros: sent,
	})
	probeCancel()
	require.NoError(t, err)
	assert.Equal(t, sent, reply.ClientSendUnixMicros, "Reply must echo the client send time")
	assert.NotZero(t, reply.ServerSendUnixMicros, "Reply must carry the server's time")
}

func TestSmoke_SynchronizerConverges(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	binaryPath := "./clocksync"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	err = cluster.StartCluster(ctx)
	require.NoError(t, err)

	node2 := cluster.GetNode("n2")
	require.NotNil(t, node2)

	// n2 probes n1 every 300ms; give it a few rounds.
	var status *clocksyncpb.SyncStatusReply
	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		statusCtx, statusCancel := context.WithTimeout(ctx, 5*time.Second)
		status, err = node2.GetTimeClient().Status(statusCtx, &clocksyncpb.SyncStatusRequest{})
		statusCancel()
		require.NoError(t, err)
		if status.Rounds >= 3 {
			break
		}
		time.Sleep(300 * time.Millisecond)
	}

	require.NotNil(t, status)
	assert.GreaterOrEqual(t, status.Rounds, uint64(3), "Synchronizer should have completed rounds")
	assert.Empty(t, status.Error, "Synchronizer should not have failed")
	assert.NotZero(t, status.EstimatedTimeUnixMicros, "Estimate should be populated")

	// Loopback RTT: the estimate should track n1's clock closely.
	drift := time.Now().UnixMicro() - status.EstimatedTimeUnixMicros
	if drift < 0 {
		drift = -drift
	}
	assert.Less(t, drift, int64(2*time.Second/time.Microsecond), "Estimate should be near real time")
}

func TestSmoke_HeartbeatsOrderAcrossNodes(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	binaryPath := "./clocksync"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	err = cluster.StartCluster(ctx)
	require.NoError(t, err)

	node1 := cluster.GetNode("n1")
	require.NotNil(t, node1)

	// Deliver a stamped heartbeat and check the ack causally follows.
	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	ack, err := node1.GetCausalClient().Ping(pingCtx, &clocksyncpb.Heartbeat{
		FromId:  "external",
		Lamport: 7,
		Vector: &clocksyncpb.VectorClock{
			Entries: []*clocksyncpb.VectorClockEntry{
				{NodeId: "external", Counter: 3},
			},
		},
	})
	pingCancel()
	require.NoError(t, err)

	assert.Equal(t, "n1", ack.FromId)
	assert.Greater(t, ack.Lamport, uint64(7), "Ack Lamport must exceed the witnessed time")

	counters := make(map[string]int64)
	for _, e := range ack.Vector.Entries {
		counters[e.NodeId] = e.Counter
	}
	assert.GreaterOrEqual(t, counters["external"], int64(3), "Ack vector must dominate the heartbeat")
	assert.Greater(t, counters["n1"], int64(0), "Ack must count the receive on n1")
}

func TestSmoke_NegativeCounterRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	binaryPath := "./clocksync"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	require.NoError(t, cluster.StartNode(ctx, "n1", 60061, ""))
	node1 := cluster.GetNode("n1")
	require.NotNil(t, node1)

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	_, err = node1.GetCausalClient().Ping(pingCtx, &clocksyncpb.Heartbeat{
		FromId:  "bad",
		Lamport: 1,
		Vector: &clocksyncpb.VectorClock{
			Entries: []*clocksyncpb.VectorClockEntry{
				{NodeId: "bad", Counter: -1},
			},
		},
	})
	pingCancel()
	require.Error(t, err, "Negative counters must be rejected at the boundary")
}

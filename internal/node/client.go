package node

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	clocksyncpb "clocksync/internal/gen/api"
)

// Connection timeout for dialing peers and the upstream reference.
const dialTimeout = 5 * time.Second

// ClientManager manages gRPC connections to peer nodes, one connection
// per address, shared by the TimeSync and Causal clients.
type ClientManager struct {
	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

// NewClientManager creates a new client manager.
func NewClientManager() *ClientManager {
	return &ClientManager{
		conns: make(map[string]*grpc.ClientConn),
	}
}

// conn returns the shared connection to addr, dialing if needed.
func (cm *ClientManager) conn(addr string) (*grpc.ClientConn, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if c, exists := cm.conns[addr]; exists {
		return c, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	conn, err := grpc.DialContext(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	cm.conns[addr] = conn
	return conn, nil
}

// GetTimeSyncClient returns a TimeSync client for the given address.
func (cm *ClientManager) GetTimeSyncClient(addr string) (clocksyncpb.TimeSyncClient, error) {
	conn, err := cm.conn(addr)
	if err != nil {
		return nil, err
	}
	return clocksyncpb.NewTimeSyncClient(conn), nil
}

// GetCausalClient returns a Causal client for the given address.
func (cm *ClientManager) GetCausalClient(addr string) (clocksyncpb.CausalClient, error) {
	conn, err := cm.conn(addr)
	if err != nil {
		return nil, err
	}
	return clocksyncpb.NewCausalClient(conn), nil
}

// Close closes all tracked connections.
func (cm *ClientManager) Close() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for addr, conn := range cm.conns {
		_ = conn.Close()
		delete(cm.conns, addr)
	}
}

package it

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	clocksyncpb "clocksync/internal/gen/api"
)

// Cluster represents a test cluster of clock nodes
type Cluster struct {
	nodes      []*Node
	logDir     string
	binaryPath string
	mu         sync.Mutex
}

// Node represents a single node in the test cluster
type Node struct {
	ID           string
	Addr         string
	Port         int
	cmd          *exec.Cmd
	logFile      *os.File
	timeClient   clocksyncpb.TimeSyncClient
	causalClient clocksyncpb.CausalClient
}

// NewCluster creates a new test cluster harness
func NewCluster(binaryPath string) (*Cluster, error) {
	logDir := filepath.Join(".local", "it-logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &Cluster{
		nodes:      make([]*Node, 0),
		logDir:     logDir,
		binaryPath: binaryPath,
	}, nil
}

// StartNode starts a single node in the cluster. upstream is the
// address of the reference node, empty for the reference itself.
func (c *Cluster) StartNode(ctx context.Context, nodeID string, port int, upstream string, extraArgs ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Build peer list from all existing nodes
	peerStr := ""
	for _, n := range c.nodes {
		if peerStr != "" {
			peerStr += ","
		}
		peerStr += fmt.Sprintf("%s=127.0.0.1:%d", n.ID, n.Port)
	}

	addr := fmt.Sprintf(":%d", port)
	logPath := filepath.Join(c.logDir, fmt.Sprintf("%s.log", nodeID))
	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	args := []string{
		"--node-id", nodeID,
		"--listen", addr,
		"--peers", peerStr,
		"--heartbeat-interval", "200ms",
	}
	if upstream != "" {
		args = append(args,
			"--upstream", upstream,
			"--sync-interval", "300ms",
			"--probe-timeout", "1s",
		)
	}
	args = append(args, extraArgs...)

	cmd := exec.CommandContext(ctx, c.binaryPath, args...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		logFile.Close()
		return fmt.Errorf("failed to start node %s: %w", nodeID, err)
	}

	// Connect gRPC client
	conn, err := grpc.Dial(
		fmt.Sprintf("127.0.0.1:%d", port),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		cmd.Process.Kill()
		logFile.Close()
		return fmt.Errorf("failed to dial node %s: %w", nodeID, err)
	}

	node := &Node{
		ID:           nodeID,
		Addr:         fmt.Sprintf("127.0.0.1:%d", port),
		Port:         port,
		cmd:          cmd,
		logFile:      logFile,
		timeClient:   clocksyncpb.NewTimeSyncClient(conn),
		causalClient: clocksyncpb.NewCausalClient(conn),
	}

	c.nodes = append(c.nodes, node)

	// Wait for node to be ready
	if err := c.waitForReady(ctx, node, 10*time.Second); err != nil {
		node.Stop()
		return fmt.Errorf("node %s failed to become ready: %w", nodeID, err)
	}

	return nil
}

// waitForReady waits for a node to answer a time probe
func (c *Cluster) waitForReady(ctx context.Context, node *Node, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if time.Now().After(deadline) {
				return fmt.Errorf("timeout waiting for node %s to be ready", node.ID)
			}

			probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			_, err := node.timeClient.Probe(probeCtx, &clocksyncpb.ProbeRequest{
				ClientSendUnixMicros: time.Now().UnixMicro(),
			})
			cancel()

			if err == nil {
				return nil
			}
		}
	}
}

// Stop stops all nodes in the cluster
func (c *Cluster) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, node := range c.nodes {
		node.Stop()
	}
	c.nodes = nil
}

// Stop stops a single node
func (n *Node) Stop() {
	if n.cmd != nil && n.cmd.Process != nil {
		n.cmd.Process.Kill()
		n.cmd.Wait()
	}
	if n.logFile != nil {
		n.logFile.Close()
	}
}

// GetTimeClient returns the TimeSync client for a node
func (n *Node) GetTimeClient() clocksyncpb.TimeSyncClient {
	return n.timeClient
}

// GetCausalClient returns the Causal client for a node
func (n *Node) GetCausalClient() clocksyncpb.CausalClient {
	return n.causalClient
}

// StartCluster starts a 3-node cluster: n1 serves reference time, n2
// and n3 synchronize against it.
func (c *Cluster) StartCluster(ctx context.Context) error {
	if c.binaryPath == "" {
		c.binaryPath = "./clocksync"
	}
	if _, err := os.Stat(c.binaryPath); os.IsNotExist(err) {
		return fmt.Errorf("binary not found at %s, build it first with 'go build -o clocksync ./cmd/clocksync'", c.binaryPath)
	}

	basePort := 60051
	refAddr := fmt.Sprintf("127.0.0.1:%d", basePort)

	for i := 1; i <= 3; i++ {
		nodeID := fmt.Sprintf("n%d", i)
		port := basePort + i - 1

		upstream := refAddr
		if i == 1 {
			upstream = ""
		}

		if err := c.StartNode(ctx, nodeID, port, upstream); err != nil {
			c.Stop()
			return fmt.Errorf("failed to start node %s: %w", nodeID, err)
		}
	}

	return nil
}

// GetNode returns a node by ID
func (c *Cluster) GetNode(nodeID string) *Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.nodes {
		if n.ID == nodeID {
			return n
		}
	}
	return nil
}

// KillNode kills a specific node
func (c *Cluster) KillNode(nodeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, node := range c.nodes {
		if node.ID == nodeID {
			if node.cmd != nil && node.cmd.Process != nil {
				if err := node.cmd.Process.Kill(); err != nil {
					return fmt.Errorf("failed to kill node %s: %w", nodeID, err)
				}
				node.cmd.Wait()
			}
			return nil
		}
	}
	return fmt.Errorf("node %s not found", nodeID)
}

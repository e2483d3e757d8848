package peers

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"clocksync/internal/clock"
)

// Heartbeat is the stamped payload exchanged between peers: the
// sender's id, its Lamport time and a full snapshot of its vector
// clock at send time.
type Heartbeat struct {
	FromID  string
	Lamport clock.LamportTime
	Vector  clock.VectorClock
}

// Peer is the tracker's view of one remote node.
type Peer struct {
	ID          string
	Addr        string
	LastLamport clock.LamportTime
	LastVector  clock.VectorClock
	LastSeen    time.Time
	Stale       bool
}

// SendFunc delivers a heartbeat to the peer at addr and returns the
// peer's answering stamp.
type SendFunc func(ctx context.Context, addr string, hb Heartbeat) (Heartbeat, error)

// Tracker owns this process's logical clocks and drives the periodic
// heartbeat exchange. Clock updates are applied strictly in the order
// the tracker processes its own send and receive events.
type Tracker struct {
	mu      sync.RWMutex
	localID string
	lamport clock.LamportClock
	vector  clock.VectorClock
	peers   map[string]*Peer

	interval   time.Duration
	staleAfter time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTracker creates a tracker for the local node. interval is the
// heartbeat cadence; a peer not heard from for staleAfter is marked
// stale (and revived by its next stamp).
func NewTracker(localID string, interval, staleAfter time.Duration) *Tracker {
	if interval <= 0 {
		interval = time.Second
	}
	if staleAfter <= 0 {
		staleAfter = 3 * interval
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Tracker{
		localID:    localID,
		vector:     clock.New(),
		peers:      make(map[string]*Peer),
		interval:   interval,
		staleAfter: staleAfter,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// AddPeer registers a peer for heartbeating.
func (t *Tracker) AddPeer(id, addr string) {
	if id == t.localID {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.peers[id]; !exists {
		t.peers[id] = &Peer{ID: id, Addr: addr, LastVector: clock.New()}
	}
}

// Start launches the heartbeat and staleness loops.
func (t *Tracker) Start(send SendFunc) {
	t.wg.Add(2)

	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-t.ctx.Done():
				return
			case <-ticker.C:
				t.heartbeat(send)
			}
		}
	}()

	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-t.ctx.Done():
				return
			case <-ticker.C:
				t.checkStale()
			}
		}
	}()
}

// Stop stops the loops and waits for them to exit.
func (t *Tracker) Stop() {
	t.cancel()
	t.wg.Wait()
}

// Stamp records a local send event and returns the heartbeat carrying
// the new clock values.
func (t *Tracker) Stamp() Heartbeat {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.vector = t.vector.Increment(t.localID)
	return Heartbeat{
		FromID:  t.localID,
		Lamport: t.lamport.Next(),
		Vector:  t.vector.Copy(),
	}
}

// Observe records a receive event for a stamp from a remote peer: the
// Lamport clock advances past the observed time and the vector clock
// merges the snapshot before counting the receive itself. The sender
// is tracked even when it was never registered as a peer.
func (t *Tracker) Observe(hb Heartbeat) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lamport.Witness(hb.Lamport)
	t.vector = t.vector.Merge(hb.Vector).Increment(t.localID)

	p, exists := t.peers[hb.FromID]
	if !exists {
		p = &Peer{ID: hb.FromID}
		t.peers[hb.FromID] = p
		log.Printf("[%s] peers: discovered %s", t.localID, hb.FromID)
	}
	p.LastLamport = hb.Lamport
	p.LastVector = hb.Vector.Copy()
	p.LastSeen = time.Now()
	if p.Stale {
		p.Stale = false
		log.Printf("[%s] peers: %s no longer stale", t.localID, hb.FromID)
	}
}

// Clocks returns the tracker's current Lamport time and a copy of its
// vector clock.
func (t *Tracker) Clocks() (clock.LamportTime, clock.VectorClock) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lamport.Time(), t.vector.Copy()
}

// Snapshot returns a copy of the tracked peers.
func (t *Tracker) Snapshot() []Peer {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Peer, 0, len(t.peers))
	for _, p := range t.peers {
		cp := *p
		cp.LastVector = p.LastVector.Copy()
		out = append(out, cp)
	}
	return out
}

// Frontier returns the causal frontier over the last stamps seen from
// all peers: the maximal set of observations no other dominates.
func (t *Tracker) Frontier() []clock.Stamp {
	t.mu.RLock()
	stamps := make([]clock.Stamp, 0, len(t.peers))
	for _, p := range t.peers {
		if len(p.LastVector) == 0 {
			continue
		}
		stamps = append(stamps, clock.Stamp{Owner: p.ID, Vector: p.LastVector.Copy()})
	}
	t.mu.RUnlock()

	return clock.Frontier(stamps)
}

// Order reports the causal relationship between the last stamps seen
// from two peers. ok is false if either peer has not stamped yet.
func (t *Tracker) Order(a, b string) (clock.Ordering, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	pa, okA := t.peers[a]
	pb, okB := t.peers[b]
	if !okA || !okB || len(pa.LastVector) == 0 || len(pb.LastVector) == 0 {
		return clock.Concurrent, false
	}
	return pa.LastVector.Compare(pb.LastVector), true
}

// heartbeat stamps a send event and delivers it to one random peer,
// folding the peer's answering stamp back in.
func (t *Tracker) heartbeat(send SendFunc) {
	t.mu.RLock()
	candidates := make([]*Peer, 0, len(t.peers))
	for _, p := range t.peers {
		if p.Addr != "" {
			candidates = append(candidates, p)
		}
	}
	t.mu.RUnlock()

	if len(candidates) == 0 {
		return
	}
	target := candidates[rand.Intn(len(candidates))]

	ctx, cancel := context.WithTimeout(t.ctx, t.interval)
	defer cancel()

	hb := t.Stamp()
	ack, err := send(ctx, target.Addr, hb)
	if err != nil {
		// Best effort: the staleness checker handles persistent silence.
		return
	}
	t.Observe(ack)
}

// checkStale marks peers that have gone quiet.
func (t *Tracker) checkStale() {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	for id, p := range t.peers {
		if p.Stale || p.LastSeen.IsZero() {
			continue
		}
		if now.Sub(p.LastSeen) > t.staleAfter {
			p.Stale = true
			log.Printf("[%s] peers: %s marked stale", t.localID, id)
		}
	}
}

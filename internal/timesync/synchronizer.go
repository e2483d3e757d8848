package timesync

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"clocksync/internal/history"
	"clocksync/internal/timer"
	"clocksync/internal/vtime"
)

// ErrProtocol reports a reply of unexpected shape where a probe reply
// was expected. The protocol between two cooperating participants is
// closed, so a mismatch indicates a logic error upstream and is fatal
// to the synchronizer rather than retried.
var ErrProtocol = errors.New("timesync: protocol violation")

// ProbeRequest is the client-to-server probe payload: the client's
// virtual time at the moment of sending.
type ProbeRequest struct {
	ClientSend time.Time
}

// ProbeReply is the server-to-client payload: the echoed client send
// time plus the server's own time at the moment of reply.
type ProbeReply struct {
	ClientSend time.Time
	ServerSend time.Time
}

// Prober performs one probe round-trip: send the request, wait for the
// matching reply. The wait is bounded by ctx; expiry surfaces as
// ctx.Err(). Implementations must not deliver replies from earlier,
// abandoned rounds.
type Prober interface {
	Probe(ctx context.Context, req ProbeRequest) (ProbeReply, error)
}

// State identifies what the synchronizer loop is currently doing.
type State int

const (
	// Idle: loop not running (never started, closed, or terminated by
	// a protocol violation).
	Idle State = iota
	// Probing: a probe is outstanding, waiting for reply or timeout.
	Probing
	// Recalibrating: applying a completed round to the estimates and
	// the local clock.
	Recalibrating
	// Paused: probing suspended by the pause control. Terminal; the
	// last computed estimates remain inspectable.
	Paused
)

// String returns the string representation of a State.
func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Probing:
		return "PROBING"
	case Recalibrating:
		return "RECALIBRATING"
	case Paused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// Status is a snapshot of the synchronizer for external inspection.
type Status struct {
	State        State
	EstimatedRTT time.Duration
	LastServer   time.Time
	LastEstimate time.Time
	Rounds       uint64
	Skipped      uint64
	Err          error
}

// Config holds the synchronizer tunables.
type Config struct {
	// Interval is the resynchronization cadence.
	Interval time.Duration
	// ProbeTimeout bounds the wait for each probe reply. A probe that
	// exceeds it is a skipped round, retried without touching the
	// estimator.
	ProbeTimeout time.Duration
	// Alpha is the EWMA smoothing factor; zero means DefaultAlpha.
	Alpha float64
}

// DefaultConfig returns the default synchronizer tunables.
func DefaultConfig() Config {
	return Config{
		Interval:     10 * time.Second,
		ProbeTimeout: 2 * time.Second,
		Alpha:        DefaultAlpha,
	}
}

// Synchronizer periodically probes a reference time source and
// recalibrates the local virtual clock. At most one probe and one
// cadence timer are outstanding at any time.
type Synchronizer struct {
	name   string
	cfg    Config
	clock  vtime.Source
	prober Prober
	hist   *history.Log // may be nil

	mu         sync.Mutex
	state      State
	est        *Estimator
	lastServer time.Time
	lastEst    time.Time
	rounds     uint64
	skipped    uint64
	err        error

	pause     chan chan struct{}
	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a synchronizer that corrects clock from the reference
// reachable through prober. hist may be nil. name tags log lines.
func New(name string, clock vtime.Source, prober Prober, hist *history.Log, cfg Config) *Synchronizer {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = DefaultConfig().ProbeTimeout
	}
	if cfg.Alpha == 0 {
		cfg.Alpha = DefaultAlpha
	}

	return &Synchronizer{
		name:   name,
		cfg:    cfg,
		clock:  clock,
		prober: prober,
		hist:   hist,
		state:  Idle,
		est:    NewEstimator(cfg.Alpha),
		pause:  make(chan chan struct{}),
		closed: make(chan struct{}),
	}
}

// Start launches the probe loop. The first probe fires immediately;
// subsequent probes follow the configured cadence.
func (s *Synchronizer) Start() {
	s.wg.Add(1)
	go s.run()
}

// Pause suspends all further probing and the periodic timer, then
// returns once the loop has acknowledged. The last computed estimates
// stay available through Status. Pausing is terminal for this run;
// there is no resume. Pause returns immediately if the loop already
// stopped.
func (s *Synchronizer) Pause() {
	ack := make(chan struct{})
	select {
	case s.pause <- ack:
		<-ack
	case <-s.closed:
	}
}

// Close stops the loop and waits for it to exit. Safe to call after
// Pause.
func (s *Synchronizer) Close() {
	s.closeOnce.Do(func() { close(s.closed) })
	s.wg.Wait()
}

// Status returns a snapshot of the synchronizer state and estimates.
func (s *Synchronizer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		State:        s.state,
		EstimatedRTT: s.est.RTT(),
		LastServer:   s.lastServer,
		LastEstimate: s.lastEst,
		Rounds:       s.rounds,
		Skipped:      s.skipped,
		Err:          s.err,
	}
}

func (s *Synchronizer) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// parkPaused moves the loop into its terminal Paused state and
// acknowledges the pause request. Pausing stops the loop for good, so
// closed is closed too; later Pause and Close calls return right away
// instead of waiting on a receiver that no longer exists.
func (s *Synchronizer) parkPaused(ack chan struct{}) {
	s.setState(Paused)
	close(ack)
	s.closeOnce.Do(func() { close(s.closed) })
}

func (s *Synchronizer) run() {
	defer s.wg.Done()

	for {
		// Arm the cadence timer before probing so a fast reply does
		// not shift the next round earlier.
		cd := timer.Start(s.cfg.Interval)
		s.setState(Probing)

		rep, rtt, ok := s.probeUntilReply()
		if !ok {
			cd.Cancel()
			return
		}

		s.setState(Recalibrating)
		s.recalibrate(rep, rtt)

		// Carry over the unused remainder of the interval so the next
		// probe keeps the original cadence.
		remaining, fired := cd.Cancel()
		if !fired {
			select {
			case <-time.After(remaining):
			case ack := <-s.pause:
				s.parkPaused(ack)
				return
			case <-s.closed:
				s.setState(Idle)
				return
			}
		}
	}
}

// probeUntilReply retries probe rounds until one completes. A timeout
// is a skipped round: no estimator update, immediate retry. ok=false
// means the loop must exit (paused, closed, or protocol violation).
func (s *Synchronizer) probeUntilReply() (ProbeReply, time.Duration, bool) {
	for {
		select {
		case ack := <-s.pause:
			s.parkPaused(ack)
			return ProbeReply{}, 0, false
		case <-s.closed:
			s.setState(Idle)
			return ProbeReply{}, 0, false
		default:
		}

		rep, rtt, err := s.probeOnce()
		if err == nil {
			return rep, rtt, true
		}
		if errors.Is(err, ErrProtocol) {
			log.Printf("[%s] timesync: %v; stopping", s.name, err)
			s.mu.Lock()
			s.err = err
			s.state = Idle
			s.mu.Unlock()
			// Unblock any waiting Pause or Close callers.
			s.closeOnce.Do(func() { close(s.closed) })
			return ProbeReply{}, 0, false
		}

		// Timed-out or undeliverable probe: skip the round and retry.
		s.mu.Lock()
		s.skipped++
		s.mu.Unlock()
	}
}

// probeOnce performs a single bounded probe round-trip.
func (s *Synchronizer) probeOnce() (ProbeReply, time.Duration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ProbeTimeout)
	defer cancel()

	t0 := s.clock.Now()
	rep, err := s.prober.Probe(ctx, ProbeRequest{ClientSend: t0})
	if err != nil {
		return ProbeReply{}, 0, err
	}
	t1 := s.clock.Now()

	if !rep.ClientSend.Equal(t0) {
		return ProbeReply{}, 0, fmt.Errorf("reply echoes %v, probe sent %v: %w", rep.ClientSend, t0, ErrProtocol)
	}
	if rep.ServerSend.IsZero() {
		return ProbeReply{}, 0, fmt.Errorf("reply carries no server time: %w", ErrProtocol)
	}

	return rep, t1.Sub(t0), nil
}

// recalibrate folds the completed round into the estimator and applies
// the new time estimate to the local clock.
func (s *Synchronizer) recalibrate(rep ProbeReply, rtt time.Duration) {
	s.mu.Lock()
	smoothed := s.est.Observe(rtt)
	estimate := s.est.EstimateNow(rep.ServerSend)
	s.lastServer = rep.ServerSend
	s.lastEst = estimate
	s.rounds++
	s.mu.Unlock()

	s.clock.SetNow(estimate)

	if s.hist != nil {
		s.hist.Append(history.Round{
			ClientSend:  rep.ClientSend,
			ServerSend:  rep.ServerSend,
			ClientRecv:  rep.ClientSend.Add(rtt),
			RTT:         rtt,
			SmoothedRTT: smoothed,
			Estimate:    estimate,
		})
	}
}

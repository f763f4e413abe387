package channel

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/northbound-labs/waitkit/log"
)

// Signal delivers OS signals enqueued in a FIFO. It wraps Go's portable
// os/signal plumbing (which already abstracts the POSIX signal-mask /
// Windows console-handler split) and adds the FIFO queue, close semantics
// and canonical signal naming. Platform-specific naming of realtime
// signals lives in signal_unix.go / signal_windows.go.
type Signal struct {
	base

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []int
	relay  chan os.Signal
	closed bool
	done   chan struct{}
}

// NewSignal builds a Signal channel that watches the given OS signals.
// Always includes an internal wake-up path so Close is orderly even while a
// worker is blocked in WaitFor.
func NewSignal(signals ...os.Signal) *Signal {
	s := &Signal{
		relay: make(chan os.Signal, 64),
		done:  make(chan struct{}),
	}
	s.base = newBase(Asynchronous)
	s.cond = sync.NewCond(&s.mu)
	signal.Notify(s.relay, signals...)
	go s.pump()
	return s
}

func (s *Signal) pump() {
	log.Channel.Infof("signal pump started for channel %s", s.ID())
	defer log.Channel.Infof("signal pump stopped for channel %s", s.ID())
	for {
		select {
		case sig, ok := <-s.relay:
			if !ok {
				return
			}
			n := signalNumber(sig)
			s.mu.Lock()
			s.queue = append(s.queue, n)
			s.cond.Broadcast()
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}

func signalNumber(sig os.Signal) int {
	if sn, ok := sig.(syscall.Signal); ok {
		return int(sn)
	}
	return -1
}

// Read pops the front signal number, if any.
func (s *Signal) Read() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return 0, false
	}
	n := s.queue[0]
	s.queue = s.queue[1:]
	return n, true
}

// ReadMaybe is the pointer-optional variant of Read.
func (s *Signal) ReadMaybe() *int {
	v, ok := s.Read()
	if !ok {
		return nil
	}
	return &v
}

// WaitFor blocks up to d until a signal is queued or the channel closes.
func (s *Signal) WaitFor(d time.Duration) bool {
	deadline := time.Now().Add(d)
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if s.closed || len(s.queue) > 0 {
			return true
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		condWaitTimeout(&s.mu, s.cond, remaining)
	}
}

// Close stops signal delivery, discards any signals still queued, and wakes
// all waiters in order.
func (s *Signal) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.markClosed() {
		return nil
	}
	s.closed = true
	s.queue = nil
	signal.Stop(s.relay)
	close(s.done)
	s.cond.Broadcast()
	return nil
}

var _ Typed[int] = (*Signal)(nil)

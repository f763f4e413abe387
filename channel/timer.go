package channel

import (
	"sync"
	"time"
)

// Timer delivers periodic ticks every interval, closing after count ticks if
// count is set (the zero value means unbounded). It is asynchronous: a
// blocking WaitFor is expected to suspend a dedicated worker goroutine.
type Timer struct {
	base

	mu        sync.Mutex
	cond      *sync.Cond
	interval  time.Duration
	nextTick  time.Time
	remaining int
	bounded   bool
	open      bool
}

// NewTimer builds a Timer with the given interval and an optional tick
// count; count <= 0 means unbounded.
func NewTimer(interval time.Duration, count int) *Timer {
	t := &Timer{
		base:      newBase(Asynchronous),
		interval:  interval,
		nextTick:  time.Now().Add(interval),
		remaining: count,
		bounded:   count > 0,
		open:      true,
	}
	t.cond = sync.NewCond(&t.mu)
	return t
}

// WaitFor blocks until a tick is due or d elapses, returning whether a tick
// (or closure) is ready.
func (t *Timer) WaitFor(d time.Duration) bool {
	deadline := time.Now().Add(d)
	t.mu.Lock()
	defer t.mu.Unlock()
	for {
		if !t.open {
			return true
		}
		now := time.Now()
		if !now.Before(t.nextTick) {
			return true
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		wait := t.nextTick.Sub(now)
		if wait > remaining {
			wait = remaining
		}
		condWaitTimeout(&t.mu, t.cond, wait)
	}
}

// Read consumes one due tick, advancing nextTick and decrementing the
// remaining count; it closes the channel once the count is exhausted.
// Returns false if the channel is already closed or no tick is due.
func (t *Timer) Read() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.open {
		return false
	}
	if time.Now().Before(t.nextTick) {
		return false
	}
	t.advanceLocked()
	return true
}

// Tick implements channel.Void.
func (t *Timer) Tick() bool { return t.Read() }

func (t *Timer) advanceLocked() {
	t.nextTick = t.nextTick.Add(t.interval)
	if t.bounded {
		t.remaining--
		if t.remaining <= 0 {
			t.closeLocked()
		}
	}
}

// Flush fast-forwards nextTick past now, consuming all elapsed ticks at
// once and returning how many were consumed.
func (t *Timer) Flush() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	consumed := 0
	now := time.Now()
	for t.open && !now.Before(t.nextTick) {
		t.advanceLocked()
		consumed++
	}
	return consumed
}

// Close marks the timer closed and wakes all waiters.
func (t *Timer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeLocked()
	return nil
}

func (t *Timer) closeLocked() {
	if !t.markClosed() {
		return
	}
	t.open = false
	t.cond.Broadcast()
}

var _ Void = (*Timer)(nil)

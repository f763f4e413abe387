// Package waiter defines the single timed-wait contract every blocking
// primitive in waitkit composes on top of. A Waiter exposes exactly one
// required operation, WaitFor; Poll, Wait and WaitUntil are derived from it.
package waiter

import "time"

// Waiter is a source of readiness events. Implementations are not required
// to carry any observable state beyond whatever makes WaitFor meaningful.
//
// Spurious wakeups are permitted: a true return from any of these methods is
// advisory. Callers must re-check whatever condition they were waiting on.
type Waiter interface {
	// WaitFor blocks for up to d, returning true if the waiter became ready
	// before the deadline. A zero or negative d means "poll": check
	// readiness once, without blocking.
	WaitFor(d time.Duration) bool
}

// Poll performs a non-blocking readiness check: WaitFor(0).
func Poll(w Waiter) bool {
	return w.WaitFor(0)
}

// PollAll polls every given Waiter once, without blocking, returning the
// subset that reported ready. Dispatch-independent: useful for tests and
// callers that want a one-shot readiness snapshot across several waiters
// without standing up a full Dispatch.
func PollAll(ws ...Waiter) []Waiter {
	var ready []Waiter
	for _, w := range ws {
		if Poll(w) {
			ready = append(ready, w)
		}
	}
	return ready
}

// WaitUntil blocks until w is ready or deadline passes, returning readiness.
func WaitUntil(w Waiter, deadline time.Time) bool {
	d := time.Until(deadline)
	return w.WaitFor(d)
}

// waitSlice caps each iteration of Wait so interrupts/signals and test
// harnesses can still make progress instead of blocking indefinitely inside
// a single WaitFor call.
const waitSlice = time.Second

// Wait blocks until w is ready, polling in one-second slices so the calling
// goroutine periodically yields.
func Wait(w Waiter) {
	for {
		if w.WaitFor(waitSlice) {
			return
		}
	}
}

// Base is an embeddable helper for types that want the derived Poll/Wait/
// WaitUntil methods attached directly, rather than calling the free
// functions above. Embedders must implement WaitFor themselves; Base only
// supplies the three derived methods via its Self indirection.
type Base struct {
	// Self must be set to the embedding type before any derived method is
	// called; it lets Base dispatch back to the concrete WaitFor override.
	Self Waiter
}

// Poll is WaitFor(0) on Self.
func (b Base) Poll() bool { return Poll(b.Self) }

// Wait blocks until Self is ready.
func (b Base) Wait() { Wait(b.Self) }

// WaitUntil blocks until Self is ready or deadline passes.
func (b Base) WaitUntil(deadline time.Time) bool { return WaitUntil(b.Self, deadline) }

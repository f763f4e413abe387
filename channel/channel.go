// Package channel provides the Channel family: typed and untyped message
// sources, queues, value slots, generators, stream buffers, timers and
// signal adapters, all implementing waiter.Waiter.
package channel

import (
	"sync"

	"github.com/gofrs/uuid"
	"go.uber.org/atomic"

	"github.com/northbound-labs/waitkit/waiter"
	"github.com/northbound-labs/waitkit/waiterrors"
)

var errAlreadyOwned = waiterrors.New(waiterrors.InvalidArgument, "channel already attached to a dispatch")

// SyncMode distinguishes channels a Dispatch can poll inline (Synchronous)
// from channels that require a dedicated worker goroutine (Asynchronous).
type SyncMode int

const (
	// Synchronous channels can be polled in zero time.
	Synchronous SyncMode = iota
	// Asynchronous channels may block indefinitely.
	Asynchronous
)

func (m SyncMode) String() string {
	if m == Asynchronous {
		return "asynchronous"
	}
	return "synchronous"
}

// ID uniquely identifies a Channel for the lifetime of a process. Dispatch
// uses it as the key of its task table and to correlate faults.
type ID = uuid.UUID

// NewID mints a fresh channel identifier.
func NewID() ID {
	id, err := uuid.NewV4()
	if err != nil {
		// uuid.NewV4 only fails if the entropy source itself fails; fall
		// back to the nil UUID rather than panicking a hot path.
		return uuid.UUID{}
	}
	return id
}

// Channel is the common contract every concrete channel type satisfies.
type Channel interface {
	waiter.Waiter

	// ID returns this channel's identity.
	ID() ID
	// SyncMode reports whether this channel is Synchronous or Asynchronous.
	// It is fixed for the lifetime of the channel.
	SyncMode() SyncMode
	// Closed reports whether Close has been called. Monotonic: once true,
	// always true.
	Closed() bool
	// Close marks the channel closed. Idempotent. After Close returns, all
	// further reads yield "closed" and all waits return immediately.
	Close() error
}

// Owner is the narrow, dispatch-only interface a Channel exposes for
// attach/detach bookkeeping. It stands in for the C++ original's friend
// relationship between Channel and Dispatch: any package can see these
// methods, but only the dispatch package is expected to call them, and the
// invariant they enforce (at most one owner) is checked here, not there.
type Owner interface {
	// AttachOwner records owner as this channel's current Dispatch. It
	// fails if the channel already has an owner.
	AttachOwner(owner ID) error
	// DetachOwner clears the current owner, if any. Safe to call when
	// unowned.
	DetachOwner()
}

// base implements the bookkeeping shared by every concrete channel: an
// identity, a sync mode, the monotonic closed flag, and the single-owner
// invariant. Concrete channels embed base and add payload-specific state
// and locking of their own.
type base struct {
	id     ID
	mode   SyncMode
	closed atomic.Bool

	ownerMu sync.Mutex
	owner   *ID
}

func newBase(mode SyncMode) base {
	id := NewID()
	return base{id: id, mode: mode}
}

func (b *base) ID() ID              { return b.id }
func (b *base) SyncMode() SyncMode  { return b.mode }
func (b *base) Closed() bool        { return b.closed.Load() }
func (b *base) markClosed() bool    { return b.closed.CAS(false, true) }

func (b *base) AttachOwner(owner ID) error {
	b.ownerMu.Lock()
	defer b.ownerMu.Unlock()
	if b.owner != nil {
		return errAlreadyOwned
	}
	b.owner = &owner
	return nil
}

func (b *base) DetachOwner() {
	b.ownerMu.Lock()
	defer b.ownerMu.Unlock()
	b.owner = nil
}

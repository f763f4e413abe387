// Package dispatch implements the controller that binds channels to user
// callbacks and runs them to completion under well-defined failure
// semantics: a channel closing cleanly, or a callback raising, both
// surface as a Fault from Run.
package dispatch

import (
	"runtime"
	"sync"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/atomic"

	"github.com/northbound-labs/waitkit/channel"
	"github.com/northbound-labs/waitkit/log"
	"github.com/northbound-labs/waitkit/waiter"
	"github.com/northbound-labs/waitkit/waiterrors"
)

// Fault is the {channel, optional error} record Run surfaces when a channel
// closes (Err == nil) or its callback raises (Err != nil). Empty is set
// when there is nothing left to dispatch — the {None, None} case.
//
// CorrelationID identifies the logical attach this fault came from,
// independent of the channel's own identity, so a long-running process can
// log and trace faults across restarts even after the channel itself is
// gone.
type Fault struct {
	ChannelID     channel.ID
	CorrelationID channel.ID
	Empty         bool
	Err           error
}

const (
	wakeMin = time.Microsecond
	wakeMax = time.Millisecond
)

// task is the common shape every Add* variant builds: a synchronous poll
// step (used by the main sweep) and an async run loop (used by a dedicated
// worker goroutine). Exactly one is used, matching the channel's SyncMode.
type task struct {
	id   channel.ID
	mode channel.SyncMode
	ch   channel.Channel

	// pollOnce is called by the synchronous sweep. It returns whether a
	// callback fired this pass and, if the task is now done, the Fault
	// that ended it.
	pollOnce func() (fired bool, done *Fault)

	// runAsync is called once by a dedicated worker goroutine; it loops
	// until the channel closes or the callback raises, then returns the
	// terminal Fault.
	runAsync func() *Fault
}

// Dispatch multiplexes many heterogeneous channels onto user callbacks.
type Dispatch struct {
	id channel.ID

	mu         sync.Mutex
	syncTasks  []*task // stable insertion order, per the sweep contract.
	asyncChans map[channel.ID]channel.Channel

	wg conc.WaitGroup

	faultMu sync.Mutex
	faults  []Fault

	wake       atomic.Duration
	pendingOps atomic.Int64 // count of attached channels remaining, sync + async.

	stopped atomic.Bool
}

// New builds an empty Dispatch.
func New() *Dispatch {
	d := &Dispatch{
		id:         channel.NewID(),
		asyncChans: make(map[channel.ID]channel.Channel),
	}
	d.wake.Store(wakeMin)
	return d
}

func (d *Dispatch) attach(ch channel.Channel) error {
	if owner, ok := ch.(channel.Owner); ok {
		if err := owner.AttachOwner(d.id); err != nil {
			return waiterrors.Wrap(waiterrors.InvalidArgument, err, "channel already attached to a dispatch")
		}
	}
	d.pendingOps.Inc()
	return nil
}

func (d *Dispatch) detach(ch channel.Channel) {
	if owner, ok := ch.(channel.Owner); ok {
		owner.DetachOwner()
	}
	d.pendingOps.Dec()
}

func (d *Dispatch) pushFault(f Fault) {
	d.faultMu.Lock()
	d.faults = append(d.faults, f)
	d.faultMu.Unlock()
}

func (d *Dispatch) popFault() (Fault, bool) {
	d.faultMu.Lock()
	defer d.faultMu.Unlock()
	if len(d.faults) == 0 {
		return Fault{}, false
	}
	f := d.faults[0]
	d.faults = d.faults[1:]
	return f, true
}

// invoke runs cb, converting a panic into a CallbackFault-kind error rather
// than crashing the sweep or the owning worker goroutine.
func invoke(cb func()) error {
	var catcher panics.Catcher
	catcher.Try(cb)
	if r := catcher.Recovered(); r != nil {
		return waiterrors.Wrap(waiterrors.CallbackFault, r.AsError(), "dispatch callback panicked")
	}
	return nil
}

func (d *Dispatch) addTask(ch channel.Channel, t *task) error {
	if d.stopped.Load() {
		return waiterrors.New(waiterrors.InvalidArgument, "dispatch already stopped")
	}
	if err := d.attach(ch); err != nil {
		return err
	}
	if ch.SyncMode() == channel.Synchronous {
		d.mu.Lock()
		d.syncTasks = append(d.syncTasks, t)
		d.mu.Unlock()
		return nil
	}
	d.mu.Lock()
	d.asyncChans[ch.ID()] = ch
	d.mu.Unlock()
	d.wg.Go(func() {
		fault := t.runAsync()
		// Queue the fault before detaching, so Run never sees zero attached
		// channels while this worker's terminal fault is still unpublished.
		if fault != nil {
			d.pushFault(*fault)
		}
		d.detach(ch)
		d.mu.Lock()
		delete(d.asyncChans, ch.ID())
		d.mu.Unlock()
	})
	return nil
}

// Add attaches a Typed[T] channel: cb is invoked with each value
// successfully read.
func Add[T any](d *Dispatch, ch channel.Typed[T], cb func(T)) error {
	corr := channel.NewID()
	pollOnce := func() (bool, *Fault) {
		if ch.Closed() {
			return true, &Fault{ChannelID: ch.ID(), CorrelationID: corr}
		}
		if !ch.WaitFor(0) {
			return false, nil
		}
		v, ok := ch.Read()
		if !ok {
			return false, nil
		}
		if err := invoke(func() { cb(v) }); err != nil {
			return true, &Fault{ChannelID: ch.ID(), CorrelationID: corr, Err: err}
		}
		return true, nil
	}
	runAsync := func() *Fault {
		log.Dispatch.Infof("worker started for channel %s (correlation %s)", ch.ID(), corr)
		defer log.Dispatch.Infof("worker exited for channel %s (correlation %s)", ch.ID(), corr)
		for {
			waiter.Wait(ch)
			if ch.Closed() {
				return &Fault{ChannelID: ch.ID(), CorrelationID: corr}
			}
			v, ok := ch.Read()
			if !ok {
				continue
			}
			if err := invoke(func() { cb(v) }); err != nil {
				log.Dispatch.Warnf("callback fault on channel %s (correlation %s): %v", ch.ID(), corr, err)
				return &Fault{ChannelID: ch.ID(), CorrelationID: corr, Err: err}
			}
		}
	}
	return d.addTask(ch, &task{id: ch.ID(), mode: ch.SyncMode(), ch: ch, pollOnce: pollOnce, runAsync: runAsync})
}

// AddVoid attaches a Void channel: cb is invoked once per readiness tick.
func AddVoid(d *Dispatch, ch channel.Void, cb func()) error {
	corr := channel.NewID()
	pollOnce := func() (bool, *Fault) {
		if ch.Closed() {
			return true, &Fault{ChannelID: ch.ID(), CorrelationID: corr}
		}
		if !ch.WaitFor(0) {
			return false, nil
		}
		if !ch.Tick() {
			return false, nil
		}
		if err := invoke(cb); err != nil {
			return true, &Fault{ChannelID: ch.ID(), CorrelationID: corr, Err: err}
		}
		return true, nil
	}
	runAsync := func() *Fault {
		log.Dispatch.Infof("worker started for channel %s (correlation %s)", ch.ID(), corr)
		defer log.Dispatch.Infof("worker exited for channel %s (correlation %s)", ch.ID(), corr)
		for {
			waiter.Wait(ch)
			if ch.Closed() {
				return &Fault{ChannelID: ch.ID(), CorrelationID: corr}
			}
			if !ch.Tick() {
				continue
			}
			if err := invoke(cb); err != nil {
				log.Dispatch.Warnf("callback fault on channel %s (correlation %s): %v", ch.ID(), corr, err)
				return &Fault{ChannelID: ch.ID(), CorrelationID: corr, Err: err}
			}
		}
	}
	return d.addTask(ch, &task{id: ch.ID(), mode: ch.SyncMode(), ch: ch, pollOnce: pollOnce, runAsync: runAsync})
}

// AddStream attaches a Stream channel: cb is invoked per Append, and may
// consume or retain the accumulated bytes via the *[]byte it receives.
func AddStream(d *Dispatch, ch channel.Stream, cb func(*[]byte)) error {
	buf := new([]byte)
	corr := channel.NewID()
	pollOnce := func() (bool, *Fault) {
		if ch.Closed() {
			return true, &Fault{ChannelID: ch.ID(), CorrelationID: corr}
		}
		if !ch.WaitFor(0) {
			return false, nil
		}
		n, err := ch.Append(buf)
		if err != nil {
			return true, &Fault{ChannelID: ch.ID(), CorrelationID: corr, Err: waiterrors.Wrap(waiterrors.Io, err, "stream append failed")}
		}
		if n == 0 {
			return false, nil
		}
		if err := invoke(func() { cb(buf) }); err != nil {
			return true, &Fault{ChannelID: ch.ID(), CorrelationID: corr, Err: err}
		}
		return true, nil
	}
	runAsync := func() *Fault {
		log.Dispatch.Infof("worker started for channel %s (correlation %s)", ch.ID(), corr)
		defer log.Dispatch.Infof("worker exited for channel %s (correlation %s)", ch.ID(), corr)
		for {
			waiter.Wait(ch)
			if ch.Closed() {
				return &Fault{ChannelID: ch.ID(), CorrelationID: corr}
			}
			n, err := ch.Append(buf)
			if err != nil {
				log.Dispatch.Warnf("stream append fault on channel %s (correlation %s): %v", ch.ID(), corr, err)
				return &Fault{ChannelID: ch.ID(), CorrelationID: corr, Err: waiterrors.Wrap(waiterrors.Io, err, "stream append failed")}
			}
			if n == 0 {
				continue
			}
			if err := invoke(func() { cb(buf) }); err != nil {
				log.Dispatch.Warnf("callback fault on channel %s (correlation %s): %v", ch.ID(), corr, err)
				return &Fault{ChannelID: ch.ID(), CorrelationID: corr, Err: err}
			}
		}
	}
	return d.addTask(ch, &task{id: ch.ID(), mode: ch.SyncMode(), ch: ch, pollOnce: pollOnce, runAsync: runAsync})
}

// Run sweeps synchronous channels and waits on asynchronous-worker faults
// until one Fault is available (or nothing remains attached), returning it.
// The wake interval used between idle sweeps starts at 1µs and doubles on
// each idle pass up to a 1ms cap, resetting to the minimum as soon as any
// callback fires.
func (d *Dispatch) Run() Fault {
	for {
		if f, ok := d.popFault(); ok {
			d.finishFault(f)
			return f
		}
		if d.pendingOps.Load() == 0 {
			return Fault{Empty: true}
		}

		fired := d.sweepSync()

		if f, ok := d.popFault(); ok {
			d.finishFault(f)
			return f
		}

		if fired {
			d.wake.Store(wakeMin)
			runtime.Gosched()
			continue
		}

		cur := d.wake.Load()
		time.Sleep(cur)
		next := cur * 2
		if next > wakeMax {
			next = wakeMax
		}
		d.wake.Store(next)
	}
}

// sweepSync polls every synchronous channel once, in stable insertion
// order, invoking callbacks and queuing any fault it finds.
func (d *Dispatch) sweepSync() bool {
	d.mu.Lock()
	tasks := append([]*task(nil), d.syncTasks...)
	d.mu.Unlock()

	fired := false
	for _, t := range tasks {
		ok, done := t.pollOnce()
		if ok {
			fired = true
		}
		if done != nil {
			d.removeSyncTask(t)
			d.detach(t.ch)
			d.pushFault(*done)
		}
	}
	return fired
}

func (d *Dispatch) removeSyncTask(target *task) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, t := range d.syncTasks {
		if t == target {
			d.syncTasks = append(d.syncTasks[:i], d.syncTasks[i+1:]...)
			return
		}
	}
}

func (d *Dispatch) finishFault(f Fault) {
	// Hook point kept symmetrical with channel detachment; detach happens
	// where the fault is produced: before it is queued in the sync sweep,
	// and right after it is queued in an async worker.
	if f.Err != nil {
		log.Dispatch.Warnf("dispatch %s surfacing fault on channel %s (correlation %s): %v", d.id, f.ChannelID, f.CorrelationID, f.Err)
	} else if !f.Empty {
		log.Dispatch.Infof("dispatch %s surfacing close on channel %s (correlation %s)", d.id, f.ChannelID, f.CorrelationID)
	}
}

// Stop closes every attached channel, then drains faults by looping Run
// until nothing remains attached.
func (d *Dispatch) Stop() []Fault {
	d.stopped.Store(true)
	log.Dispatch.Infof("dispatch %s stopping", d.id)

	d.mu.Lock()
	closing := make([]channel.Channel, 0, len(d.syncTasks)+len(d.asyncChans))
	for _, t := range d.syncTasks {
		closing = append(closing, t.ch)
	}
	for _, ch := range d.asyncChans {
		closing = append(closing, ch)
	}
	d.mu.Unlock()
	for _, ch := range closing {
		_ = ch.Close()
	}

	var drained []Fault
	for {
		f := d.Run()
		if f.Empty {
			break
		}
		drained = append(drained, f)
	}
	d.wg.Wait()
	log.Dispatch.Infof("dispatch %s stopped, drained %d fault(s)", d.id, len(drained))
	return drained
}

// Close is an alias for Stop, for callers that prefer an io.Closer-shaped
// API.
func (d *Dispatch) Close() error {
	d.Stop()
	return nil
}

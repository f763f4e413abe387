package channel

import (
	"sync"
	"time"

	"github.com/northbound-labs/waitkit/waiter"
)

// Buffer is an unbounded byte buffer with a self-compacting read offset:
// once the offset reaches half the buffer's length, the consumed prefix is
// erased, keeping amortised cost O(1) per byte. Asynchronous.
type Buffer struct {
	base

	mu        sync.Mutex
	cond      *sync.Cond
	data      []byte
	offset    int
	blockSize int
	closed    bool
}

// NewBuffer builds an empty Buffer with the default 64 KiB block size.
func NewBuffer() *Buffer {
	b := &Buffer{
		base:      newBase(Asynchronous),
		blockSize: defaultBlockSize,
	}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// BlockSize returns the current per-Append read ceiling.
func (b *Buffer) BlockSize() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.blockSize
}

// SetBlockSize changes the per-Append read ceiling.
func (b *Buffer) SetBlockSize(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blockSize = n
}

// Write appends p to the buffer and wakes a waiter if data becomes
// readable.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return 0, nil
	}
	b.data = append(b.data, p...)
	if b.readableLocked() > 0 {
		b.cond.Broadcast()
	}
	return len(p), nil
}

func (b *Buffer) readableLocked() int {
	return len(b.data) - b.offset
}

// compactLocked erases the consumed prefix once the offset reaches half the
// buffer length, amortising the cost of repeated reads.
func (b *Buffer) compactLocked() {
	if b.offset == 0 {
		return
	}
	if b.offset*2 < len(b.data) {
		return
	}
	b.data = append(b.data[:0], b.data[b.offset:]...)
	b.offset = 0
}

// Read copies up to len(buf) unread bytes into buf.
func (b *Buffer) Read(buf []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := copy(buf, b.data[b.offset:])
	b.offset += n
	b.compactLocked()
	return n, nil
}

// Append reads up to BlockSize bytes and appends them to *dst.
func (b *Buffer) Append(dst *[]byte) (int, error) {
	buf := make([]byte, b.BlockSize())
	n, err := b.Read(buf)
	if n > 0 {
		*dst = append(*dst, buf[:n]...)
	}
	return n, err
}

// ReadAll loops, appending to *dst, until the channel closes.
func (b *Buffer) ReadAll(dst *[]byte) error {
	for {
		n, err := b.Append(dst)
		if err != nil {
			return err
		}
		if n == 0 {
			if b.Closed() {
				return nil
			}
			waiter.Wait(b)
		}
	}
}

// WaitFor blocks up to d until readable data exists or the channel closes.
func (b *Buffer) WaitFor(d time.Duration) bool {
	deadline := time.Now().Add(d)
	b.mu.Lock()
	defer b.mu.Unlock()
	for {
		if b.closed || b.readableLocked() > 0 {
			return true
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		condWaitTimeout(&b.mu, b.cond, remaining)
	}
}

// Close clears the buffer and wakes all waiters.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.markClosed() {
		return nil
	}
	b.closed = true
	b.data = nil
	b.offset = 0
	b.cond.Broadcast()
	return nil
}

var _ Stream = (*Buffer)(nil)

package channel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/northbound-labs/waitkit/channel"
)

// fakeSocket is a minimal stand-in for the network-boundary contract the
// spec leaves unspecified beyond Channel semantics: synchronous, pollable,
// reporting a ready-kind without consuming it.
type fakeSocket struct {
	mu     chan struct{}
	kind   string
	closed bool
	id     channel.ID
}

func newFakeSocket() *fakeSocket {
	return &fakeSocket{mu: make(chan struct{}, 1), kind: "bytes", id: channel.NewID()}
}

func (f *fakeSocket) ID() channel.ID             { return f.id }
func (f *fakeSocket) SyncMode() channel.SyncMode { return channel.Synchronous }
func (f *fakeSocket) Closed() bool               { return f.closed }
func (f *fakeSocket) Close() error               { f.closed = true; return nil }
func (f *fakeSocket) ReadyKind() string          { return f.kind }
func (f *fakeSocket) WaitFor(time.Duration) bool { return f.closed || f.kind != "" }

func TestSocketContractSatisfiesChannel(t *testing.T) {
	t.Parallel()
	var s channel.Socket = newFakeSocket()
	assert.Equal(t, "bytes", s.ReadyKind())
	assert.False(t, s.Closed())
	assert.NoError(t, s.Close())
	assert.True(t, s.Closed())
	assert.True(t, s.WaitFor(0))
}

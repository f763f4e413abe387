package channel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/northbound-labs/waitkit/channel"
)

func TestValueCoalescesIdenticalWrites(t *testing.T) {
	t.Parallel()
	v := channel.NewValue[int]()
	for i := 0; i < 5; i++ {
		v.Write(42)
	}
	got, ok := v.Read()
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	_, ok = v.Read()
	assert.False(t, ok, "second read with no new write should report nothing pending")
}

func TestValueReadOnlyOnUpdate(t *testing.T) {
	t.Parallel()
	v := channel.NewValue[string]()
	_, ok := v.Read()
	assert.False(t, ok)

	v.Write("a")
	got, ok := v.Read()
	assert.True(t, ok)
	assert.Equal(t, "a", got)
}

func TestValueWaitForWakesOnClose(t *testing.T) {
	t.Parallel()
	v := channel.NewValue[int]()
	done := make(chan bool, 1)
	go func() { done <- v.WaitFor(time.Second) }()
	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, v.Close())
	select {
	case ready := <-done:
		assert.True(t, ready)
	case <-time.After(time.Second):
		t.Fatal("WaitFor did not wake on Close")
	}
}

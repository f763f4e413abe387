package channel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/northbound-labs/waitkit/channel"
)

func TestQueueFIFOOrdering(t *testing.T) {
	t.Parallel()
	q := channel.NewQueue[int]()
	for i := 1; i <= 10; i++ {
		q.Write(i)
	}
	var got []int
	for {
		v, ok := q.Read()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, got)
}

func TestQueueWaitForBlocksUntilWrite(t *testing.T) {
	t.Parallel()
	q := channel.NewQueue[string]()
	done := make(chan bool, 1)
	go func() { done <- q.WaitFor(time.Second) }()
	time.Sleep(10 * time.Millisecond)
	q.Write("hello")
	select {
	case ready := <-done:
		assert.True(t, ready)
	case <-time.After(time.Second):
		t.Fatal("WaitFor did not wake on Write")
	}
	v, ok := q.Read()
	assert.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestQueueWritersNeverBlock(t *testing.T) {
	t.Parallel()
	q := channel.NewQueue[int]()
	deadline := time.Now().Add(time.Second)
	for i := 0; i < 100000; i++ {
		q.Write(i)
	}
	assert.True(t, time.Now().Before(deadline))
}

func TestQueueCloseWakesWaiters(t *testing.T) {
	t.Parallel()
	q := channel.NewQueue[int]()
	done := make(chan bool, 1)
	go func() { done <- q.WaitFor(time.Second) }()
	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, q.Close())
	select {
	case ready := <-done:
		assert.True(t, ready)
	case <-time.After(time.Second):
		t.Fatal("WaitFor did not wake on Close")
	}
}

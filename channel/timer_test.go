package channel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/northbound-labs/waitkit/channel"
)

func TestTimerDeliversBoundedTicks(t *testing.T) {
	t.Parallel()
	timer := channel.NewTimer(time.Millisecond, 5)
	count := 0
	for !timer.Closed() {
		if timer.WaitFor(100 * time.Millisecond) {
			if timer.Tick() {
				count++
			} else if timer.Closed() {
				break
			}
		}
	}
	assert.Equal(t, 5, count)
	assert.True(t, timer.Closed())
}

func TestTimerFlushConsumesElapsedTicksAtOnce(t *testing.T) {
	t.Parallel()
	timer := channel.NewTimer(time.Millisecond, 0)
	time.Sleep(20 * time.Millisecond)
	n := timer.Flush()
	assert.GreaterOrEqual(t, n, 10)
}

func TestTimerCloseWakesWaiters(t *testing.T) {
	t.Parallel()
	timer := channel.NewTimer(time.Hour, 0)
	done := make(chan bool, 1)
	go func() { done <- timer.WaitFor(time.Second) }()
	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, timer.Close())
	select {
	case ready := <-done:
		assert.True(t, ready)
	case <-time.After(time.Second):
		t.Fatal("WaitFor did not wake on Close")
	}
	assert.True(t, timer.Closed())
}

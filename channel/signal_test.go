//go:build unix

package channel_test

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/northbound-labs/waitkit/channel"
)

func TestSignalDeliversQueuedSignal(t *testing.T) {
	sig := channel.NewSignal(syscall.SIGUSR1)
	defer sig.Close()

	assert.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))

	assert.True(t, sig.WaitFor(time.Second))
	n, ok := sig.Read()
	assert.True(t, ok)
	assert.Equal(t, int(syscall.SIGUSR1), n)
}

func TestSignalNameCanonicalForm(t *testing.T) {
	assert.Equal(t, "SIGINT", channel.SignalName(int(syscall.SIGINT)))
}

func TestSignalCloseIsOrderly(t *testing.T) {
	sig := channel.NewSignal(syscall.SIGUSR2)
	assert.NoError(t, sig.Close())
	assert.True(t, sig.Closed())
	assert.True(t, sig.WaitFor(0))
}

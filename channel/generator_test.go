package channel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/northbound-labs/waitkit/channel"
)

func TestGeneratorInvokesThunkPerRead(t *testing.T) {
	t.Parallel()
	n := 0
	gen := channel.NewGenerator(func() int {
		n++
		return n
	})
	assert.True(t, gen.WaitFor(0))
	v, ok := gen.Read()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = gen.Read()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestGeneratorCloseDropsThunk(t *testing.T) {
	t.Parallel()
	gen := channel.NewGenerator(func() int { return 7 })
	assert.NoError(t, gen.Close())
	_, ok := gen.Read()
	assert.False(t, ok)
	assert.True(t, gen.Closed())
}

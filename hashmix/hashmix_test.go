package hashmix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMix64Deterministic(t *testing.T) {
	t.Parallel()
	a := Mix64([]byte("hello"))
	b := Mix64([]byte("hello"))
	assert.Equal(t, a, b)
}

func TestMix64DistinguishesInput(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, Mix64([]byte("hello")), Mix64([]byte("world")))
}

func TestMixWordsOrderSensitive(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, MixWords(1, 2), MixWords(2, 1))
}

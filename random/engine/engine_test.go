package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLCG32Deterministic(t *testing.T) {
	t.Parallel()
	a := NewLCG32(1)
	b := NewLCG32(1)
	for i := 0; i < 8; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestLCG64SuccessiveOutputsDiffer(t *testing.T) {
	t.Parallel()
	e := NewLCG64(42)
	first := e.Next()
	second := e.Next()
	assert.NotEqual(t, first, second)
}

func TestLCG128AdvancesBothHalves(t *testing.T) {
	t.Parallel()
	e := NewLCG128(1, 2)
	hi1, lo1 := e.Next()
	hi2, lo2 := e.Next()
	assert.False(t, hi1 == hi2 && lo1 == lo2)
}

func TestSquirrelIsBijectiveByIndex(t *testing.T) {
	t.Parallel()
	a := Squirrel64(10, 99)
	b := Squirrel64(10, 99)
	c := Squirrel64(11, 99)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSquirrelEngineIsDeterministicGivenSeed(t *testing.T) {
	t.Parallel()
	a := NewSquirrelEngine(7)
	b := NewSquirrelEngine(7)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestPCG64BitIdenticalAcrossInstancesGivenSameSeed(t *testing.T) {
	t.Parallel()
	a := NewPCG64(1, 2, 3, 4)
	b := NewPCG64(1, 2, 3, 4)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestPCG64DXSMDiffersFromPlainPCG64(t *testing.T) {
	t.Parallel()
	plain := NewPCG64(1, 2, 3, 4)
	dxsm := NewPCG64DXSM(1, 2, 3, 4)
	assert.NotEqual(t, plain.Next(), dxsm.Next())
}

func TestXoshiro256SSDeterministicAndNonZero(t *testing.T) {
	t.Parallel()
	a := NewXoshiro256SS(1, 2, 3, 4)
	b := NewXoshiro256SS(1, 2, 3, 4)
	var sum uint64
	for i := 0; i < 10; i++ {
		va, vb := a.Next(), b.Next()
		require.Equal(t, va, vb)
		sum |= va
	}
	assert.NotZero(t, sum)
}

func TestXoshiro256SSExpandsShortSeeds(t *testing.T) {
	t.Parallel()
	a := NewXoshiro256SS(1)
	b := NewXoshiro256SS(1)
	assert.Equal(t, a.Next(), b.Next())
}

func TestXoshiro256SSStateSnapshotsAsBinary256(t *testing.T) {
	t.Parallel()
	e := NewXoshiro256SS(9, 9, 9, 9)
	e.Next()
	state := e.State()
	assert.Len(t, state.Hex(), 64)
	assert.NotEqual(t, state.Hex(), state.Xor(state).Hex())
}

func TestSourceBridgesToMathRand(t *testing.T) {
	t.Parallel()
	src := NewSource(NewXoshiro256SS(1, 2, 3, 4))
	r := rand.New(src)
	v := r.Uint64()
	assert.NotZero(t, v)
}

func TestSeedFromDeviceReturnsRequestedWordCount(t *testing.T) {
	t.Parallel()
	words, err := SeedFromDevice(4)
	require.NoError(t, err)
	assert.Len(t, words, 4)
}

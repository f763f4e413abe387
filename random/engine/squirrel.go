package engine

// Squirrel32 and Squirrel64 are bijective hash-style mixers suitable for
// indexed RNG: unlike the sequential LCGs above, next(i) depends only on
// the index i and a seed, so any index can be computed independently
// (useful for parallel streams or reproducible per-slot randomness).
// Constants follow the public-domain SquirrelNoise5 bit-noise function.

const (
	squirrelBitNoise1 = 0xD2A80A3F
	squirrelBitNoise2 = 0xA884F197
	squirrelBitNoise3 = 0x6C736F4B
	squirrelBitNoise4 = 0xB79F3ABB
	squirrelBitNoise5 = 0x1B56C4F5
)

// Squirrel32 computes the mixer for index i under seed, producing a
// 32-bit output.
func Squirrel32(index uint32, seed uint32) uint32 {
	mangled := index * squirrelBitNoise1
	mangled += seed
	mangled ^= mangled >> 9
	mangled += squirrelBitNoise2
	mangled ^= mangled >> 11
	mangled *= squirrelBitNoise3
	mangled ^= mangled >> 13
	mangled += squirrelBitNoise4
	mangled ^= mangled >> 15
	mangled *= squirrelBitNoise5
	mangled ^= mangled >> 17
	return mangled
}

// Squirrel64 extends the same mixer to a 64-bit index and output by
// running the 32-bit mixer over both halves of the index and the
// accumulated state, then folding the results together.
func Squirrel64(index uint64, seed uint64) uint64 {
	lo := Squirrel32(uint32(index), uint32(seed))
	hi := Squirrel32(uint32(index>>32)^lo, uint32(seed>>32)^lo)
	return uint64(hi)<<32 | uint64(lo)
}

// SquirrelEngine adapts Squirrel32/64 to a stateful Next()-style engine by
// treating an internal counter as the index.
type SquirrelEngine struct {
	seed    uint64
	counter uint64
}

func NewSquirrelEngine(seed uint64) *SquirrelEngine {
	return &SquirrelEngine{seed: seed}
}

func (e *SquirrelEngine) Seed(seed uint64) { e.seed = seed; e.counter = 0 }

func (e *SquirrelEngine) Next() uint64 {
	v := Squirrel64(e.counter, e.seed)
	e.counter++
	return v
}

func (*SquirrelEngine) Min() uint64 { return 0 }
func (*SquirrelEngine) Max() uint64 { return ^uint64(0) }

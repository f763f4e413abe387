package engine

import (
	"math/bits"

	"github.com/northbound-labs/waitkit/fixedbinary"
)

// Xoshiro256SS is the xoshiro256** generator: 256 bits of state as four
// 64-bit words, scrambled output via the "starstar" scrambler.
type Xoshiro256SS struct {
	s [4]uint64
}

// NewXoshiro256SS seeds from one, two or four 64-bit words; fewer than
// four words are expanded via SplitMix64, matching every engine's seeding
// contract above.
func NewXoshiro256SS(seeds ...uint64) *Xoshiro256SS {
	words := ExpandWords(4, seeds...)
	var e Xoshiro256SS
	copy(e.s[:], words)
	return &e
}

// Next returns the next 64-bit output and advances the state.
func (e *Xoshiro256SS) Next() uint64 {
	result := bits.RotateLeft64(e.s[1]*5, 7) * 9

	t := e.s[1] << 17

	e.s[2] ^= e.s[0]
	e.s[3] ^= e.s[1]
	e.s[1] ^= e.s[2]
	e.s[0] ^= e.s[3]

	e.s[2] ^= t

	e.s[3] = bits.RotateLeft64(e.s[3], 45)

	return result
}

func (*Xoshiro256SS) Min() uint64 { return 0 }
func (*Xoshiro256SS) Max() uint64 { return ^uint64(0) }

// State returns the current 256-bit state packed into a Binary256, for
// callers that want to snapshot, compare, or log the generator's state as
// a single fixed-width value rather than four loose words.
func (e *Xoshiro256SS) State() fixedbinary.Binary256 {
	return fixedbinary.Binary256FromWords(e.s[0], e.s[1], e.s[2], e.s[3])
}

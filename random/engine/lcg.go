package engine

import "math/bits"

// LCG32 is a 32-bit linear-congruential generator using the Numerical
// Recipes constants, chosen for a documented full-period lattice.
type LCG32 struct{ state uint32 }

func NewLCG32(seed uint32) *LCG32 { return &LCG32{state: seed} }

func (e *LCG32) Seed(seed uint32) { e.state = seed }

func (e *LCG32) Next() uint32 {
	e.state = e.state*1664525 + 1013904223
	return e.state
}

func (*LCG32) Min() uint32 { return 0 }
func (*LCG32) Max() uint32 { return ^uint32(0) }

// LCG64 is a 64-bit linear-congruential generator using the MMIX/Knuth
// constants.
type LCG64 struct{ state uint64 }

func NewLCG64(seed uint64) *LCG64 { return &LCG64{state: seed} }

func (e *LCG64) Seed(seed uint64) { e.state = seed }

func (e *LCG64) Next() uint64 {
	e.state = e.state*6364136223846793005 + 1442695040888963407
	return e.state
}

func (*LCG64) Min() uint64 { return 0 }
func (*LCG64) Max() uint64 { return ^uint64(0) }

// LCG128 is a 128-bit linear-congruential generator using the PCG family's
// 128-bit multiplier/increment constants, output as the full 128-bit state
// split into two 64-bit words (hi, lo).
type LCG128 struct {
	hi, lo uint64
}

// lcg128Mul{Hi,Lo} and lcg128Inc{Hi,Lo} are the PCG 128-bit LCG constants,
// split into 64-bit halves (most significant first).
const (
	lcg128MulHi = 2549297995355413924
	lcg128MulLo = 4865540595714422341
	lcg128IncHi = 6364136223846793005
	lcg128IncLo = 1442695040888963407
)

func NewLCG128(seedHi, seedLo uint64) *LCG128 { return &LCG128{hi: seedHi, lo: seedLo} }

func (e *LCG128) Seed(seedHi, seedLo uint64) { e.hi, e.lo = seedHi, seedLo }

// Next advances state = state*MUL + INC (mod 2^128) and returns the new
// state as (hi, lo).
func (e *LCG128) Next() (hi, lo uint64) {
	// 128-bit multiply: (hi*2^64+lo) * (mulHi*2^64+mulLo) mod 2^128.
	loHi, loLo := bits.Mul64(e.lo, lcg128MulLo)
	crossHi := e.lo*lcg128MulHi + e.hi*lcg128MulLo
	mulHiWord := loHi + crossHi

	sumLo, carry := bits.Add64(loLo, lcg128IncLo, 0)
	sumHi, _ := bits.Add64(mulHiWord, lcg128IncHi, carry)

	e.lo, e.hi = sumLo, sumHi
	return e.hi, e.lo
}

func (*LCG128) Min() (hi, lo uint64) { return 0, 0 }
func (*LCG128) Max() (hi, lo uint64) { return ^uint64(0), ^uint64(0) }

package engine

import "math/bits"

// PCG64 is a 128-bit-state linear-congruential generator whose output
// function (XSL-RR: xor-shift-low, random-rotate) derives a well-mixed
// 64-bit word from the 128-bit state, per O'Neill's PCG family.
type PCG64 struct {
	lcg LCG128
}

// NewPCG64 seeds the generator from a 128-bit seed and a 128-bit stream
// selector (the sequence constant), following the PCG initialisation
// contract: state = 0, advance once with the stream's increment, add the
// seed, advance again. Next always advances with the fixed default
// increment, so the stream selector affects only the starting state.
func NewPCG64(seedHi, seedLo, streamHi, streamLo uint64) *PCG64 {
	e := &PCG64{}
	e.lcg.hi, e.lcg.lo = 0, 0
	incHi, incLo := streamHi<<1|streamLo>>63, streamLo<<1|1
	e.lcg.hi, e.lcg.lo = lcgStep(e.lcg.hi, e.lcg.lo, incHi, incLo)
	e.lcg.hi, e.lcg.lo = addWide(e.lcg.hi, e.lcg.lo, seedHi, seedLo)
	e.lcg.hi, e.lcg.lo = lcgStep(e.lcg.hi, e.lcg.lo, incHi, incLo)
	return e
}

func lcgStep(hi, lo, incHi, incLo uint64) (uint64, uint64) {
	loHi, loLo := bits.Mul64(lo, lcg128MulLo)
	crossHi := lo*lcg128MulHi + hi*lcg128MulLo
	mulHi := loHi + crossHi
	sumLo, carry := bits.Add64(loLo, incLo, 0)
	sumHi, _ := bits.Add64(mulHi, incHi, carry)
	return sumHi, sumLo
}

func addWide(aHi, aLo, bHi, bLo uint64) (uint64, uint64) {
	sumLo, carry := bits.Add64(aLo, bLo, 0)
	sumHi, _ := bits.Add64(aHi, bHi, carry)
	return sumHi, sumLo
}

// Next advances the state and returns the XSL-RR output.
func (e *PCG64) Next() uint64 {
	e.lcg.hi, e.lcg.lo = lcgStep(e.lcg.hi, e.lcg.lo, lcg128IncHi, lcg128IncLo)
	xored := e.lcg.hi ^ e.lcg.lo
	rotation := uint(e.lcg.hi >> 58) // top 6 bits select the rotation amount
	return bits.RotateLeft64(xored, -int(rotation))
}

func (*PCG64) Min() uint64 { return 0 }
func (*PCG64) Max() uint64 { return ^uint64(0) }

// PCG64DXSM is the "double xorshift multiply" output-function variant,
// preferred over plain PCG64 for generating very long parallel streams
// without the rotation's lattice artefacts.
type PCG64DXSM struct {
	lcg LCG128
}

const dxsmMultiplier = 0xDA942042E4DD58B5

func NewPCG64DXSM(seedHi, seedLo, streamHi, streamLo uint64) *PCG64DXSM {
	base := NewPCG64(seedHi, seedLo, streamHi, streamLo)
	return &PCG64DXSM{lcg: base.lcg}
}

func (e *PCG64DXSM) Next() uint64 {
	e.lcg.hi, e.lcg.lo = lcgStep(e.lcg.hi, e.lcg.lo, lcg128IncHi, lcg128IncLo)
	hi, lo := e.lcg.hi, e.lcg.lo
	hi ^= hi >> 32
	hi *= dxsmMultiplier
	hi ^= hi >> 48
	hi *= (lo | 1)
	return hi
}

func (*PCG64DXSM) Min() uint64 { return 0 }
func (*PCG64DXSM) Max() uint64 { return ^uint64(0) }

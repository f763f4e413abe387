// Package fixedbinary implements unsigned modular integers of an exact bit
// width N. Go has no const generics, so N is a runtime constructor argument
// rather than a type parameter: Binary picks a single uint64 fast path for
// widths up to 64 bits and a bits-and-blooms/bitset-backed limb path for
// wider values.
package fixedbinary

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/northbound-labs/waitkit/hashmix"
	"github.com/northbound-labs/waitkit/waiterrors"
)

// maxWidth bounds N to the kilobit range practical for a software bignum.
const maxWidth = 8192

// Binary is an unsigned integer of exactly Bits() bits. Every bit outside
// [0, Bits()) is always zero; arithmetic is modulo 2^Bits().
type Binary struct {
	bits  int
	small uint64      // used when bits <= 64
	large *bitset.BitSet // used when bits > 64; large.Len() == uint(bits)
}

// New returns the zero value of width bits. Panics if bits is out of
// [1, maxWidth] — a constructor-time programmer error, not a runtime one.
func New(bits int) Binary {
	if bits < 1 || bits > maxWidth {
		panic(waiterrors.New(waiterrors.InvalidArgument, "fixedbinary: bit width out of range"))
	}
	b := Binary{bits: bits}
	if bits > 64 {
		b.large = bitset.New(uint(bits))
	}
	return b
}

// FromUint64 builds a Binary of the given width from a uint64, truncating
// or zero-extending as needed.
func FromUint64(bits int, v uint64) Binary {
	b := New(bits)
	b.setUint64(v)
	return b
}

func (b *Binary) setUint64(v uint64) {
	if b.bits <= 64 {
		b.small = v & smallMask(b.bits)
		return
	}
	b.large = bitset.New(uint(b.bits))
	for i := 0; i < 64 && i < b.bits; i++ {
		if v&(1<<uint(i)) != 0 {
			b.large.Set(uint(i))
		}
	}
}

// FromLimbs builds a Binary of the given width from 64-bit limbs given
// most-significant first, for widths beyond a single machine word.
func FromLimbs(bits int, limbsMSBFirst []uint64) Binary {
	b := New(bits)
	n := len(limbsMSBFirst)
	for i, limb := range limbsMSBFirst {
		base := (n - 1 - i) * 64
		for j := 0; j < 64; j++ {
			bitIndex := base + j
			if bitIndex >= bits {
				continue
			}
			if limb&(1<<uint(j)) != 0 {
				b.setBit(bitIndex)
			}
		}
	}
	return b
}

func smallMask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(bits)) - 1
}

// Bits reports the fixed bit width N.
func (b Binary) Bits() int { return b.bits }

// isSmall reports whether this value uses the single-word fast path.
func (b Binary) isSmall() bool { return b.bits <= 64 }

func (b *Binary) setBit(i int) {
	if b.isSmall() {
		b.small |= 1 << uint(i)
		return
	}
	b.large.Set(uint(i))
}

func (b Binary) testBit(i int) bool {
	if i < 0 || i >= b.bits {
		return false
	}
	if b.isSmall() {
		return b.small&(1<<uint(i)) != 0
	}
	return b.large.Test(uint(i))
}

// clone returns an independent copy (bitset.BitSet is a pointer type).
func (b Binary) clone() Binary {
	out := Binary{bits: b.bits, small: b.small}
	if b.large != nil {
		out.large = b.large.Clone()
	}
	return out
}

// Uint64 truncates the value to the low 64 bits.
func (b Binary) Uint64() uint64 {
	if b.isSmall() {
		return b.small
	}
	var v uint64
	for i := 0; i < 64 && i < b.bits; i++ {
		if b.large.Test(uint(i)) {
			v |= 1 << uint(i)
		}
	}
	return v
}

// FitsIn reports whether the value fits in an unsigned integer of width
// target bits without truncation.
func (b Binary) FitsIn(targetBits int) bool {
	return b.SignificantBits() <= targetBits
}

// SignificantBits returns the position of the highest set bit plus one, or
// 0 for the zero value.
func (b Binary) SignificantBits() int {
	if b.isSmall() {
		v := b.small
		n := 0
		for v != 0 {
			n++
			v >>= 1
		}
		return n
	}
	highest := -1
	for i, e := 0, uint(b.bits); uint(i) < e; i++ {
		if b.large.Test(uint(i)) {
			highest = i
		}
	}
	return highest + 1
}

// IsZero reports whether every bit is clear.
func (b Binary) IsZero() bool {
	if b.isSmall() {
		return b.small == 0
	}
	return b.large.None()
}

// Equal reports bitwise equality; both operands must share the same width.
func (b Binary) Equal(other Binary) bool {
	mustMatchWidth(b, other)
	if b.isSmall() {
		return b.small == other.small
	}
	return b.large.Equal(other.large)
}

// Cmp returns -1, 0 or 1 comparing b and other as unsigned integers of the
// same width.
func (b Binary) Cmp(other Binary) int {
	mustMatchWidth(b, other)
	if b.isSmall() {
		switch {
		case b.small < other.small:
			return -1
		case b.small > other.small:
			return 1
		default:
			return 0
		}
	}
	for i := b.bits - 1; i >= 0; i-- {
		a, c := b.large.Test(uint(i)), other.large.Test(uint(i))
		if a == c {
			continue
		}
		if a {
			return 1
		}
		return -1
	}
	return 0
}

func mustMatchWidth(a, b Binary) {
	if a.bits != b.bits {
		panic(waiterrors.New(waiterrors.InvalidArgument, "fixedbinary: operand width mismatch"))
	}
}

// Hash returns an unsigned-integer-of-width-N hash, stable for equal
// values and width.
func (b Binary) Hash() uint64 {
	if b.isSmall() {
		return b.small
	}
	return hashmix.MixWords(append(b.toWords(), uint64(b.bits))...)
}

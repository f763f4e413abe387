package fixedbinary

import (
	"math/bits"

	"github.com/northbound-labs/waitkit/waiterrors"
)

// toWords extracts the value as little-endian 64-bit limbs, one per 64 bits
// of width (rounded up), for schoolbook arithmetic.
func (b Binary) toWords() []uint64 {
	n := (b.bits + 63) / 64
	words := make([]uint64, n)
	if b.isSmall() {
		words[0] = b.small
		return words
	}
	for i := 0; i < b.bits; i++ {
		if b.large.Test(uint(i)) {
			words[i/64] |= 1 << uint(i%64)
		}
	}
	return words
}

func fromWords(bits_ int, words []uint64) Binary {
	out := New(bits_)
	if out.isSmall() {
		v := uint64(0)
		if len(words) > 0 {
			v = words[0]
		}
		out.small = v & smallMask(bits_)
		return out
	}
	for wi, w := range words {
		for j := 0; j < 64; j++ {
			bitIndex := wi*64 + j
			if bitIndex >= bits_ {
				break
			}
			if w&(1<<uint(j)) != 0 {
				out.large.Set(uint(bitIndex))
			}
		}
	}
	return out
}

// maskTopWord clears bits at or beyond bits_ in the most significant word.
func maskTopWord(words []uint64, bits_ int) {
	n := len(words)
	if n == 0 {
		return
	}
	topBits := bits_ - (n-1)*64
	if topBits >= 64 {
		return
	}
	words[n-1] &= (uint64(1) << uint(topBits)) - 1
}

// Add returns (b + other) mod 2^Bits(), using ripple-carry limb addition.
func (b Binary) Add(other Binary) Binary {
	mustMatchWidth(b, other)
	if b.isSmall() {
		return FromUint64(b.bits, (b.small+other.small)&smallMask(b.bits))
	}
	aw, ow := b.toWords(), other.toWords()
	out := make([]uint64, len(aw))
	var carry uint64
	for i := range aw {
		out[i], carry = bits.Add64(aw[i], ow[i], carry)
	}
	maskTopWord(out, b.bits)
	return fromWords(b.bits, out)
}

// Sub returns (b - other) mod 2^Bits(), using ripple-borrow limb
// subtraction.
func (b Binary) Sub(other Binary) Binary {
	mustMatchWidth(b, other)
	if b.isSmall() {
		return FromUint64(b.bits, (b.small-other.small)&smallMask(b.bits))
	}
	aw, ow := b.toWords(), other.toWords()
	out := make([]uint64, len(aw))
	var borrow uint64
	for i := range aw {
		out[i], borrow = bits.Sub64(aw[i], ow[i], borrow)
	}
	maskTopWord(out, b.bits)
	return fromWords(b.bits, out)
}

// Neg returns the two's-complement negation, i.e. 2^Bits() - b.
func (b Binary) Neg() Binary {
	return New(b.bits).Sub(b)
}

// Inc returns b + 1.
func (b Binary) Inc() Binary { return b.Add(FromUint64(b.bits, 1)) }

// Dec returns b - 1.
func (b Binary) Dec() Binary { return b.Sub(FromUint64(b.bits, 1)) }

// Mul returns (b * other) mod 2^Bits(), using schoolbook multiplication
// with limb-carry propagation.
func (b Binary) Mul(other Binary) Binary {
	mustMatchWidth(b, other)
	if b.isSmall() {
		return FromUint64(b.bits, (b.small*other.small)&smallMask(b.bits))
	}
	aw, ow := b.toWords(), other.toWords()
	n := len(aw)
	full := make([]uint64, 2*n)
	for i := 0; i < n; i++ {
		if aw[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(aw[i], ow[j])
			sum, c1 := bits.Add64(full[i+j], lo, 0)
			sum, c2 := bits.Add64(sum, carry, 0)
			full[i+j] = sum
			carry = hi + c1 + c2
		}
		for k := i + n; carry != 0; k++ {
			sum, c := bits.Add64(full[k], carry, 0)
			full[k] = sum
			carry = c
		}
	}
	out := full[:n]
	maskTopWord(out, b.bits)
	return fromWords(b.bits, out)
}

// Div returns b / other, using shift-and-subtract long division over the
// aligned bit width. Division by zero panics, matching integer division's
// undefined behaviour in Go itself; callers that need an error instead
// should check IsZero first.
func (b Binary) Div(other Binary) Binary {
	q, _ := b.divmod(other)
	return q
}

// Mod returns b % other; see Div for the division-by-zero caveat.
func (b Binary) Mod(other Binary) Binary {
	_, r := b.divmod(other)
	return r
}

func (b Binary) divmod(other Binary) (Binary, Binary) {
	mustMatchWidth(b, other)
	if other.IsZero() {
		panic(waiterrors.New(waiterrors.InvalidArgument, "fixedbinary: division by zero"))
	}
	if b.isSmall() {
		q := b.small / other.small
		r := b.small % other.small
		return FromUint64(b.bits, q), FromUint64(b.bits, r)
	}
	quotient := New(b.bits)
	remainder := New(b.bits)
	for i := b.bits - 1; i >= 0; i-- {
		remainder = remainder.Shl(1)
		if b.testBit(i) {
			remainder = remainder.Or(FromUint64(b.bits, 1))
		}
		if remainder.Cmp(other) >= 0 {
			remainder = remainder.Sub(other)
			quotient.setBit(i)
		}
	}
	return quotient, remainder
}

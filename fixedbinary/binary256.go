package fixedbinary

import (
	"encoding/hex"

	"github.com/holiman/uint256"
)

// Binary256 is a hand-specialised 256-bit fast path, backed directly by
// holiman/uint256.Int instead of the generic bit-level Binary machinery.
// It exists for callers that statically know they want exactly 256 bits —
// notably the Xoshiro256** engine's state words — and want native-speed
// arithmetic rather than the portable bit-by-bit path Binary falls back to
// for any width above 64.
type Binary256 struct {
	v uint256.Int
}

// NewBinary256 returns the zero value.
func NewBinary256() Binary256 { return Binary256{} }

// Binary256FromUint64 builds a Binary256 from a single 64-bit word.
func Binary256FromUint64(v uint64) Binary256 {
	return Binary256{v: *uint256.NewInt(v)}
}

// Binary256FromWords builds a Binary256 from four 64-bit words given
// most-significant first.
func Binary256FromWords(w3, w2, w1, w0 uint64) Binary256 {
	var out uint256.Int
	out.SetBytes(wordsToBytes(w3, w2, w1, w0))
	return Binary256{v: out}
}

func wordsToBytes(w3, w2, w1, w0 uint64) []byte {
	buf := make([]byte, 32)
	putBE(buf[0:8], w3)
	putBE(buf[8:16], w2)
	putBE(buf[16:24], w1)
	putBE(buf[24:32], w0)
	return buf
}

func putBE(dst []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

// Bits is always 256.
func (Binary256) Bits() int { return 256 }

// Add returns b + other mod 2^256.
func (b Binary256) Add(other Binary256) Binary256 {
	var out uint256.Int
	out.Add(&b.v, &other.v)
	return Binary256{v: out}
}

// Sub returns b - other mod 2^256.
func (b Binary256) Sub(other Binary256) Binary256 {
	var out uint256.Int
	out.Sub(&b.v, &other.v)
	return Binary256{v: out}
}

// Mul returns b * other mod 2^256.
func (b Binary256) Mul(other Binary256) Binary256 {
	var out uint256.Int
	out.Mul(&b.v, &other.v)
	return Binary256{v: out}
}

// Xor returns the bitwise XOR of b and other.
func (b Binary256) Xor(other Binary256) Binary256 {
	var out uint256.Int
	out.Xor(&b.v, &other.v)
	return Binary256{v: out}
}

// Or returns the bitwise OR of b and other.
func (b Binary256) Or(other Binary256) Binary256 {
	var out uint256.Int
	out.Or(&b.v, &other.v)
	return Binary256{v: out}
}

// And returns the bitwise AND of b and other.
func (b Binary256) And(other Binary256) Binary256 {
	var out uint256.Int
	out.And(&b.v, &other.v)
	return Binary256{v: out}
}

// Rotl rotates left by k bits, wrapping modulo 256.
func (b Binary256) Rotl(k uint) Binary256 {
	k %= 256
	var left, right uint256.Int
	left.Lsh(&b.v, k)
	right.Rsh(&b.v, 256-k)
	var out uint256.Int
	out.Or(&left, &right)
	return Binary256{v: out}
}

// Uint64 returns the low 64 bits.
func (b Binary256) Uint64() uint64 { return b.v.Uint64() }

// Hex renders the value as a zero-padded 64-digit hex string.
func (b Binary256) Hex() string {
	buf := b.v.Bytes32()
	return hex.EncodeToString(buf[:])
}

// Dec renders the value in base 10.
func (b Binary256) Dec() string { return b.v.Dec() }

package fixedbinary

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/northbound-labs/waitkit/waiterrors"
)

// Bin renders the value as a fixed-width binary string, zero-padded to
// Bits() digits.
func (b Binary) Bin() string {
	var sb strings.Builder
	sb.Grow(b.bits)
	for i := b.bits - 1; i >= 0; i-- {
		if b.testBit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Hex renders the value as a fixed-width hex string, zero-padded to
// ceil(Bits()/4) digits.
func (b Binary) Hex() string {
	const digits = "0123456789abcdef"
	width := (b.bits + 3) / 4
	out := make([]byte, width)
	for i := 0; i < width; i++ {
		var nibble byte
		base := i * 4
		for j := 0; j < 4; j++ {
			if b.testBit(base + j) {
				nibble |= 1 << uint(j)
			}
		}
		out[width-1-i] = digits[nibble]
	}
	return string(out)
}

// toBigInt bridges to math/big so Dec can hand off to
// shopspring/decimal.NewFromBigInt for exact base-10 rendering — the
// canonical way to construct a decimal.Decimal from an arbitrary-precision
// integer, not a stand-in for the library itself.
func (b Binary) toBigInt() *big.Int {
	words := b.toWords()
	result := new(big.Int)
	word := new(big.Int)
	for i := len(words) - 1; i >= 0; i-- {
		result.Lsh(result, 64)
		word.SetUint64(words[i])
		result.Or(result, word)
	}
	return result
}

// Dec renders the value as a fixed-width base-10 string, zero-padded to
// DigitsBase10(Bits()) digits, computed exactly via shopspring/decimal
// rather than float64 so it stays correct at kilobit widths.
func (b Binary) Dec() string {
	d := decimal.NewFromBigInt(b.toBigInt(), 0)
	s := d.String()
	width := DigitsBase10(b.bits)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// Parse reads a Binary of the given width from s in the given base
// (2, 10 or 16). An optional "0b" prefix is accepted for base 2 and an
// optional "0x" prefix for base 16 (in any other base those characters are
// read as digits, so a zero-padded hex string such as "0b" parses as 11);
// "'" digit separators are ignored; the empty string (after stripping
// prefix/separators) is rejected.
func Parse(bits int, s string, base int) (Binary, error) {
	s = strings.ReplaceAll(s, "'", "")
	switch {
	case base == 2 && (strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B")):
		s = s[2:]
	case base == 16 && (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")):
		s = s[2:]
	}
	if s == "" {
		return Binary{}, waiterrors.New(waiterrors.InvalidArgument, "fixedbinary: empty string")
	}

	result := New(bits)
	baseVal := FromUint64(bits, uint64(base))
	for _, r := range s {
		digit, err := digitValue(r)
		if err != nil || digit >= base {
			return Binary{}, waiterrors.New(waiterrors.InvalidArgument, "fixedbinary: invalid digit for base")
		}
		result = result.Mul(baseVal).Add(FromUint64(bits, uint64(digit)))
	}
	return result, nil
}

func digitValue(r rune) (int, error) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), nil
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, nil
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, nil
	default:
		return 0, waiterrors.New(waiterrors.InvalidArgument, "fixedbinary: invalid digit")
	}
}

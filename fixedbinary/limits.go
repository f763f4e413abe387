package fixedbinary

import "math"

// Digits is the number of value-bits of precision (the bit width itself,
// for an unsigned integer).
func Digits(bits int) int { return bits }

// Radix is always 2 for this type.
const Radix = 2

// DigitsBase10 approximates how many base-10 digits are needed to render
// every value of the given bit width, N*log10(2) rounded up.
func DigitsBase10(bits int) int {
	return int(math.Ceil(float64(bits) * math.Log10(2)))
}

// Max returns the all-ones value of the given width (bitwise complement of
// zero).
func Max(bits int) Binary {
	return New(bits).Not()
}

// Min and Lowest both return the zero value of the given width — the
// minimum representable value for an unsigned type either way.
func Min(bits int) Binary    { return New(bits) }
func Lowest(bits int) Binary { return New(bits) }

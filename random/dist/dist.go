// Package dist implements the statistical distributions layered on top of
// the random/engine generators: Bernoulli, Uniform (integer and real),
// log-uniform, Normal, log-normal and Poisson, each exposing pdf/cdf/ccdf
// and the usual moments, plus a shopspring/decimal-exact variant of the
// moments for distributions whose parameters admit an exact rational
// answer (avoiding float drift across platforms).
package dist

import "golang.org/x/exp/constraints"

// Source is anything that can produce uniformly-distributed 64-bit words;
// every random/engine generator satisfies it.
type Source interface {
	Next() uint64
}

// unitFloat maps a raw 64-bit draw to a float64 in [0, 1).
func unitFloat(src Source) float64 {
	const mantissaBits = 53
	return float64(src.Next()>>(64-mantissaBits)) / float64(uint64(1)<<mantissaBits)
}

func clampFloat[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

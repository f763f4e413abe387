package dist

import "github.com/northbound-labs/waitkit/waiterrors"

// Bernoulli is a single trial with success probability P, expressible
// either as a float in [0, 1] or as a rational numerator/denominator
// (NewBernoulliRational), matching the "rational or float p" contract.
type Bernoulli struct {
	p float64
}

// NewBernoulli builds a Bernoulli distribution from a float probability.
func NewBernoulli(p float64) (Bernoulli, error) {
	if p < 0 || p > 1 {
		return Bernoulli{}, waiterrors.New(waiterrors.InvalidArgument, "dist: bernoulli p out of [0,1]")
	}
	return Bernoulli{p: p}, nil
}

// NewBernoulliRational builds a Bernoulli distribution from num/den.
func NewBernoulliRational(num, den int64) (Bernoulli, error) {
	if den == 0 {
		return Bernoulli{}, waiterrors.New(waiterrors.InvalidArgument, "dist: bernoulli denominator zero")
	}
	return NewBernoulli(float64(num) / float64(den))
}

// P returns the success probability.
func (b Bernoulli) P() float64 { return b.p }

// Sample draws true with probability P.
func (b Bernoulli) Sample(src Source) bool {
	return unitFloat(src) < b.p
}

// Pmf is the probability of outcome x (true/false).
func (b Bernoulli) Pmf(x bool) float64 {
	if x {
		return b.p
	}
	return 1 - b.p
}

// Cdf is P(X <= x) for x in {false=0, true=1}.
func (b Bernoulli) Cdf(x bool) float64 {
	if !x {
		return 1 - b.p
	}
	return 1
}

func (b Bernoulli) Ccdf(x bool) float64 { return 1 - b.Cdf(x) }

func (b Bernoulli) Mean() float64     { return b.p }
func (b Bernoulli) Variance() float64 { return b.p * (1 - b.p) }
func (b Bernoulli) SD() float64       { return sqrt(b.Variance()) }

func (b Bernoulli) Skewness() float64 {
	q := 1 - b.p
	return (q - b.p) / sqrt(b.p*q)
}

func (b Bernoulli) Kurtosis() float64 {
	q := 1 - b.p
	return (1 - 6*b.p*q) / (b.p * q)
}

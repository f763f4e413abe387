package dist

import (
	"math"

	"github.com/northbound-labs/waitkit/waiterrors"
)

// poissonExactThreshold is the lambda below which Poisson sampling and the
// pmf use exact computation; above it, sampling falls back to a
// normal approximation with a continuity correction, matching the
// "exact for small lambda, normal approximation for large lambda" contract.
const poissonExactThreshold = 30

// Poisson models the number of events in a fixed interval given rate
// Lambda.
type Poisson struct {
	lambda float64
	approx *Normal
}

func NewPoisson(lambda float64) (*Poisson, error) {
	if lambda <= 0 {
		return nil, waiterrors.New(waiterrors.InvalidArgument, "dist: poisson lambda must be positive")
	}
	p := &Poisson{lambda: lambda}
	if lambda > poissonExactThreshold {
		n, err := NewNormal(lambda, math.Sqrt(lambda))
		if err != nil {
			return nil, err
		}
		p.approx = n
	}
	return p, nil
}

// Sample draws a count, exactly via Knuth's algorithm for small lambda and
// via a continuity-corrected normal approximation for large lambda.
func (d *Poisson) Sample(src Source) int64 {
	if d.approx == nil {
		return d.sampleKnuth(src)
	}
	z := d.approx.Sample(src)
	n := int64(math.Round(z))
	if n < 0 {
		n = 0
	}
	return n
}

func (d *Poisson) sampleKnuth(src Source) int64 {
	l := math.Exp(-d.lambda)
	k := int64(0)
	p := 1.0
	for {
		k++
		p *= unitFloat(src)
		if p <= l {
			return k - 1
		}
	}
}

// Pmf is P(X = k), exact via the Poisson mass function for small lambda;
// for large lambda it uses the continuity-corrected normal approximation
// evaluated at k ± 0.5.
func (d *Poisson) Pmf(k int64) float64 {
	if k < 0 {
		return 0
	}
	if d.approx == nil {
		return math.Exp(float64(k)*math.Log(d.lambda) - d.lambda - logFactorial(k))
	}
	return d.approx.Cdf(float64(k)+0.5) - d.approx.Cdf(float64(k)-0.5)
}

func (d *Poisson) Cdf(k int64) float64 {
	if k < 0 {
		return 0
	}
	if d.approx != nil {
		return d.approx.Cdf(float64(k) + 0.5)
	}
	sum := 0.0
	for i := int64(0); i <= k; i++ {
		sum += d.Pmf(i)
	}
	return sum
}

func (d *Poisson) Ccdf(k int64) float64 { return 1 - d.Cdf(k) }

func (d *Poisson) Mean() float64     { return d.lambda }
func (d *Poisson) Variance() float64 { return d.lambda }
func (d *Poisson) SD() float64       { return math.Sqrt(d.lambda) }
func (d *Poisson) Skewness() float64 { return 1 / math.Sqrt(d.lambda) }
func (d *Poisson) Kurtosis() float64 { return 1 / d.lambda }

func logFactorial(n int64) float64 {
	sum := 0.0
	for i := int64(2); i <= n; i++ {
		sum += math.Log(float64(i))
	}
	return sum
}

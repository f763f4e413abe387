package dist

import (
	"math"

	"github.com/northbound-labs/waitkit/waiterrors"
)

// Normal is a Gaussian distribution with mean Mu and standard deviation
// Sigma, sampled via the Box-Muller transform.
type Normal struct {
	mu, sigma float64

	haveSpare bool
	spare     float64
}

func NewNormal(mu, sigma float64) (*Normal, error) {
	if sigma <= 0 {
		return nil, waiterrors.New(waiterrors.InvalidArgument, "dist: normal sigma must be positive")
	}
	return &Normal{mu: mu, sigma: sigma}, nil
}

// Sample draws one value via the trigonometric Box-Muller transform,
// caching the paired second value for the next call.
func (d *Normal) Sample(src Source) float64 {
	if d.haveSpare {
		d.haveSpare = false
		return d.mu + d.sigma*d.spare
	}
	u1 := unitFloat(src)
	for u1 == 0 {
		u1 = unitFloat(src)
	}
	u2 := unitFloat(src)
	radius := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2
	z0 := radius * math.Cos(theta)
	z1 := radius * math.Sin(theta)
	d.spare = z1
	d.haveSpare = true
	return d.mu + d.sigma*z0
}

func (d *Normal) Pdf(x float64) float64 {
	z := (x - d.mu) / d.sigma
	return math.Exp(-0.5*z*z) / (d.sigma * math.Sqrt(2*math.Pi))
}

func (d *Normal) Cdf(x float64) float64 {
	z := (x - d.mu) / (d.sigma * math.Sqrt2)
	return 0.5 * (1 + math.Erf(z))
}

func (d *Normal) Ccdf(x float64) float64 { return 1 - d.Cdf(x) }

// Quantile is the inverse CDF via the erfinv-based closed form.
func (d *Normal) Quantile(p float64) float64 {
	return d.mu + d.sigma*math.Sqrt2*math.Erfinv(2*p-1)
}

func (d *Normal) Mean() float64     { return d.mu }
func (d *Normal) Variance() float64 { return d.sigma * d.sigma }
func (d *Normal) SD() float64       { return d.sigma }
func (d *Normal) Skewness() float64 { return 0 }
func (d *Normal) Kurtosis() float64 { return 0 }

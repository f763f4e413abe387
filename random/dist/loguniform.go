package dist

import (
	"math"

	"github.com/northbound-labs/waitkit/waiterrors"
)

// LogUniform is a distribution whose logarithm is uniform over
// [log(lo), log(hi)], i.e. the probability mass decays proportionally to
// 1/x across the range rather than being flat.
type LogUniform struct {
	lo, hi       float64
	logLo, logHi float64
}

func NewLogUniform(lo, hi float64) (LogUniform, error) {
	if lo <= 0 || hi < lo {
		return LogUniform{}, waiterrors.New(waiterrors.InvalidArgument, "dist: log_uniform requires 0 < lo <= hi")
	}
	return LogUniform{lo: lo, hi: hi, logLo: math.Log(lo), logHi: math.Log(hi)}, nil
}

func (d LogUniform) Sample(src Source) float64 {
	u := unitFloat(src)
	return math.Exp(d.logLo + u*(d.logHi-d.logLo))
}

func (d LogUniform) Pdf(x float64) float64 {
	if x < d.lo || x > d.hi {
		return 0
	}
	return 1 / (x * (d.logHi - d.logLo))
}

func (d LogUniform) Cdf(x float64) float64 {
	switch {
	case x < d.lo:
		return 0
	case x > d.hi:
		return 1
	default:
		return (math.Log(x) - d.logLo) / (d.logHi - d.logLo)
	}
}

func (d LogUniform) Ccdf(x float64) float64 { return 1 - d.Cdf(x) }

func (d LogUniform) Quantile(p float64) float64 {
	return math.Exp(d.logLo + p*(d.logHi-d.logLo))
}

// Mean and Variance use the closed form for a log-uniform (reciprocal)
// distribution.
func (d LogUniform) Mean() float64 {
	return (d.hi - d.lo) / (d.logHi - d.logLo)
}

func (d LogUniform) Variance() float64 {
	span := d.logHi - d.logLo
	m := d.Mean()
	return (d.hi*d.hi-d.lo*d.lo)/(2*span) - m*m
}

func (d LogUniform) SD() float64 { return sqrt(d.Variance()) }

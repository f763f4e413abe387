package dist

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northbound-labs/waitkit/random/engine"
)

func TestUniformIntEmpiricalMeanAndVariance(t *testing.T) {
	t.Parallel()
	u, err := NewUniformInt(1, 10)
	require.NoError(t, err)
	src := engine.NewXoshiro256SS(1, 2, 3, 4)

	const n = 200000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := float64(u.Sample(src))
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean

	assert.InDelta(t, u.Mean(), mean, 0.1)
	assert.InDelta(t, u.Variance(), variance, 0.3)
}

func TestUniformIntExactMoments(t *testing.T) {
	t.Parallel()
	u, err := NewUniformInt(1, 10)
	require.NoError(t, err)
	assert.True(t, u.MeanExact().Equal(decimal.RequireFromString("5.5")))
	assert.True(t, u.VarianceExact().Equal(decimal.RequireFromString("8.25")))
}

func TestBernoulliMoments(t *testing.T) {
	t.Parallel()
	b, err := NewBernoulli(0.25)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, b.Mean(), 1e-9)
	assert.InDelta(t, 0.1875, b.Variance(), 1e-9)
}

func TestBernoulliRational(t *testing.T) {
	t.Parallel()
	b, err := NewBernoulliRational(1, 4)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, b.P(), 1e-9)
}

func TestNormalCdfSymmetricAroundMean(t *testing.T) {
	t.Parallel()
	n, err := NewNormal(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, n.Cdf(0), 1e-9)
	assert.InDelta(t, 1-n.Cdf(1), n.Ccdf(1), 1e-9)
}

func TestNormalQuantileInvertsCdf(t *testing.T) {
	t.Parallel()
	n, err := NewNormal(2, 3)
	require.NoError(t, err)
	p := n.Cdf(4)
	x := n.Quantile(p)
	assert.InDelta(t, 4, x, 1e-6)
}

func TestNormalSampleMeanConverges(t *testing.T) {
	t.Parallel()
	n, err := NewNormal(5, 2)
	require.NoError(t, err)
	src := engine.NewXoshiro256SS(11, 22, 33, 44)
	var sum float64
	const trials = 50000
	for i := 0; i < trials; i++ {
		sum += n.Sample(src)
	}
	assert.InDelta(t, 5, sum/trials, 0.1)
}

func TestLogUniformCdfBounds(t *testing.T) {
	t.Parallel()
	d, err := NewLogUniform(1, math.E)
	require.NoError(t, err)
	assert.InDelta(t, 0, d.Cdf(1), 1e-9)
	assert.InDelta(t, 1, d.Cdf(math.E), 1e-9)
}

func TestLogNormalPositiveSupport(t *testing.T) {
	t.Parallel()
	d, err := NewLogNormal(0, 1, false)
	require.NoError(t, err)
	src := engine.NewXoshiro256SS(5, 6, 7, 8)
	for i := 0; i < 100; i++ {
		assert.Greater(t, d.Sample(src), 0.0)
	}
}

func TestPoissonSmallLambdaExact(t *testing.T) {
	t.Parallel()
	p, err := NewPoisson(3)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, p.Mean(), 1e-9)
	assert.InDelta(t, 3.0, p.Variance(), 1e-9)
	total := 0.0
	for k := int64(0); k < 50; k++ {
		total += p.Pmf(k)
	}
	assert.InDelta(t, 1.0, total, 1e-6)
}

func TestPoissonLargeLambdaUsesApproximation(t *testing.T) {
	t.Parallel()
	p, err := NewPoisson(500)
	require.NoError(t, err)
	src := engine.NewXoshiro256SS(1, 1, 1, 1)
	var sum float64
	const trials = 20000
	for i := 0; i < trials; i++ {
		sum += float64(p.Sample(src))
	}
	assert.InDelta(t, 500, sum/trials, 10)
}

func TestUniformRealQuantileInvertsCdf(t *testing.T) {
	t.Parallel()
	u, err := NewUniformReal(2, 8)
	require.NoError(t, err)
	x := u.Quantile(u.Cdf(5))
	assert.InDelta(t, 5, x, 1e-9)
}

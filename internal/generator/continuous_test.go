package generator

import (
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthgen/domain/dataset"
	"synthgen/domain/scenario"
)

func TestNormalParams(t *testing.T) {
	for i := 0; i < 4; i++ {
		mean, stdDev := NormalParams(i, scenario.VarianceEqual)
		assert.Equal(t, 50.0, mean)
		assert.Equal(t, 10.0, stdDev)
	}

	for i := 0; i < 4; i++ {
		mean, stdDev := NormalParams(i, scenario.VarianceUnequal)
		assert.Equal(t, 50.0+10.0*float64(i), mean)
		assert.Equal(t, 10.0+5.0*float64(i), stdDev)
	}
}

func TestGammaParams(t *testing.T) {
	for i := 0; i < 4; i++ {
		shape, scale := GammaParams(i, scenario.VarianceEqual)
		assert.Equal(t, 2.0, shape)
		assert.Equal(t, 10.0, scale)
	}

	for i := 0; i < 4; i++ {
		shape, scale := GammaParams(i, scenario.VarianceUnequal)
		assert.Equal(t, 2.0+0.5*float64(i), shape)
		assert.Equal(t, 10.0+5.0*float64(i), scale)
	}
}

func groupMetrics(t *testing.T, ds *dataset.Dataset, group string) []float64 {
	t.Helper()
	var out []float64
	for _, row := range ds.GroupRows(group) {
		f, ok := row.Metric.Float64()
		require.True(t, ok, "continuous metric must be numeric")
		out = append(out, f)
	}
	return out
}

func TestContinuous_NormalEqualVariance(t *testing.T) {
	cfg := scenario.Config{
		MetricType:         scenario.MetricContinuous,
		Shape:              scenario.ShapeNormal,
		Variance:           scenario.VarianceEqual,
		NumGroups:          4,
		SampleSizePerGroup: 1000,
		GroupPrefix:        "Group",
	}

	ds, err := New(42).Generate(cfg)
	require.NoError(t, err)

	// Every group draws from Normal(50, 10); tolerances are a few standard
	// errors at n=1000.
	for _, group := range ds.Groups() {
		values := groupMetrics(t, ds, group)

		mean, err := stats.Mean(values)
		require.NoError(t, err)
		assert.InDelta(t, 50.0, mean, 1.5, "group %s mean", group)

		stdDev, err := stats.StandardDeviationSample(values)
		require.NoError(t, err)
		assert.InDelta(t, 10.0, stdDev, 1.5, "group %s stddev", group)
	}
}

func TestContinuous_NormalUnequalVariance(t *testing.T) {
	cfg := scenario.Config{
		MetricType:         scenario.MetricContinuous,
		Shape:              scenario.ShapeNormal,
		Variance:           scenario.VarianceUnequal,
		NumGroups:          4,
		SampleSizePerGroup: 1000,
		GroupPrefix:        "Group",
	}

	ds, err := New(42).Generate(cfg)
	require.NoError(t, err)

	for i, group := range ds.Groups() {
		values := groupMetrics(t, ds, group)

		wantMean := 50.0 + 10.0*float64(i)
		wantStdDev := 10.0 + 5.0*float64(i)

		mean, err := stats.Mean(values)
		require.NoError(t, err)
		assert.InDelta(t, wantMean, mean, 3.0, "group %s mean", group)

		stdDev, err := stats.StandardDeviationSample(values)
		require.NoError(t, err)
		assert.InDelta(t, wantStdDev, stdDev, 3.0, "group %s stddev", group)
	}
}

func TestContinuous_GammaEqualVariance(t *testing.T) {
	cfg := scenario.Config{
		MetricType:         scenario.MetricContinuous,
		Shape:              scenario.ShapeSkewed,
		Variance:           scenario.VarianceEqual,
		NumGroups:          2,
		SampleSizePerGroup: 1000,
		GroupPrefix:        "Group",
	}

	ds, err := New(42).Generate(cfg)
	require.NoError(t, err)

	for _, group := range ds.Groups() {
		values := groupMetrics(t, ds, group)

		// Gamma(shape=2, scale=10): mean = shape*scale = 20.
		mean, err := stats.Mean(values)
		require.NoError(t, err)
		assert.InDelta(t, 20.0, mean, 2.5, "group %s mean", group)

		// Gamma draws are strictly positive and right-skewed: the mean sits
		// above the median.
		median, err := stats.Median(values)
		require.NoError(t, err)
		assert.Greater(t, mean, median, "group %s should be right-skewed", group)

		min, err := stats.Min(values)
		require.NoError(t, err)
		assert.Greater(t, min, 0.0, "group %s gamma draws must be positive", group)
	}
}

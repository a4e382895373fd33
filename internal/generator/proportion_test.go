package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthgen/domain/scenario"
)

func TestSuccessProbability(t *testing.T) {
	assert.Equal(t, 0.3, SuccessProbability(0))
	assert.Equal(t, 0.5, SuccessProbability(1))
	assert.InDelta(t, 0.7, SuccessProbability(2), 1e-12)
	assert.Equal(t, 0.9, SuccessProbability(3))
	// Capped beyond the fourth group.
	assert.Equal(t, 0.9, SuccessProbability(4))
	assert.Equal(t, 0.9, SuccessProbability(10))
}

func TestProportion_EmpiricalRates(t *testing.T) {
	cfg := scenario.Config{
		MetricType:         scenario.MetricProportion,
		NumGroups:          4,
		SampleSizePerGroup: 1000,
		GroupPrefix:        "Group",
	}

	ds, err := New(42).Generate(cfg)
	require.NoError(t, err)
	require.Equal(t, 4000, ds.Len())

	for i, group := range ds.Groups() {
		rows := ds.GroupRows(group)
		successes := 0
		for _, row := range rows {
			f, ok := row.Metric.Float64()
			require.True(t, ok)
			require.Contains(t, []float64{0, 1}, f, "proportion outcomes are 0/1")
			if f == 1 {
				successes++
			}
		}

		rate := float64(successes) / float64(len(rows))
		assert.InDelta(t, SuccessProbability(i), rate, 0.05, "group %s", group)
	}
}

func TestProportion_RatesIncreaseAcrossGroups(t *testing.T) {
	cfg := scenario.Config{
		MetricType:         scenario.MetricProportion,
		NumGroups:          2,
		SampleSizePerGroup: 1000,
		GroupPrefix:        "Group",
	}

	ds, err := New(7).Generate(cfg)
	require.NoError(t, err)

	rates := make([]float64, 0, 2)
	for _, group := range ds.Groups() {
		successes := 0
		rows := ds.GroupRows(group)
		for _, row := range rows {
			if f, _ := row.Metric.Float64(); f == 1 {
				successes++
			}
		}
		rates = append(rates, float64(successes)/float64(len(rows)))
	}

	// 0.3 vs 0.5 at n=1000 leaves a comfortable observable gap.
	require.Len(t, rates, 2)
	assert.Greater(t, rates[1], rates[0])
}

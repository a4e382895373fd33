package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthgen/domain/scenario"
)

func TestCategoryWeights_Normalized(t *testing.T) {
	for index := 0; index < 6; index++ {
		weights := CategoryWeights(index)
		require.Len(t, weights, len(Categories), "index %d", index)

		total := 0.0
		for _, w := range weights {
			assert.GreaterOrEqual(t, w, 0.0)
			total += w
		}
		assert.InDelta(t, 1.0, total, 1e-9, "index %d", index)
	}
}

func TestCategoryWeights_SharedProfileBeyondThirdGroup(t *testing.T) {
	assert.Equal(t, CategoryWeights(3), CategoryWeights(4))
	assert.Equal(t, CategoryWeights(3), CategoryWeights(9))
}

func categoryCounts(t *testing.T, seed int64, numGroups int) []map[string]int {
	t.Helper()

	cfg := scenario.Config{
		MetricType:         scenario.MetricCategorical,
		NumGroups:          numGroups,
		SampleSizePerGroup: 1000,
		GroupPrefix:        "Group",
	}

	ds, err := New(seed).Generate(cfg)
	require.NoError(t, err)

	valid := make(map[string]bool)
	for _, label := range Categories {
		valid[label] = true
	}

	counts := make([]map[string]int, 0, numGroups)
	for _, group := range ds.Groups() {
		c := make(map[string]int)
		for _, row := range ds.GroupRows(group) {
			require.True(t, valid[row.Metric.Label], "unexpected label %q", row.Metric.Label)
			c[row.Metric.Label]++
		}
		counts = append(counts, c)
	}
	return counts
}

func TestCategorical_GroupSkews(t *testing.T) {
	counts := categoryCounts(t, 42, 4)

	// Group 0 weights Red at 0.4 and gives Purple and Orange nothing.
	assert.Greater(t, counts[0]["Red"], counts[0]["Purple"])
	assert.Greater(t, counts[0]["Red"], counts[0]["Orange"])
	assert.Zero(t, counts[0]["Purple"])
	assert.Zero(t, counts[0]["Orange"])

	// Group 2's mode is Purple (weight 0.4).
	for _, label := range Categories {
		if label == "Purple" {
			continue
		}
		assert.GreaterOrEqual(t, counts[2]["Purple"], counts[2][label],
			"Purple should be group 2's mode, but %s has %d vs %d",
			label, counts[2][label], counts[2]["Purple"])
	}

	// Group 3 favors Purple and Orange over the rest.
	assert.Greater(t, counts[3]["Purple"], counts[3]["Red"])
	assert.Greater(t, counts[3]["Orange"], counts[3]["Blue"])
}

func TestCategorical_TwoGroupDraws(t *testing.T) {
	counts := categoryCounts(t, 7, 2)
	require.Len(t, counts, 2)

	// Group 1 favors Green/Yellow over Red.
	assert.Greater(t, counts[1]["Green"], counts[1]["Red"])
	assert.Greater(t, counts[1]["Yellow"], counts[1]["Red"])
}

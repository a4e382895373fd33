package scenario

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthgen/domain/core"
)

func TestGetPreset_Anova(t *testing.T) {
	p, err := GetPreset(5)
	require.NoError(t, err)

	assert.Equal(t, MetricContinuous, p.MetricType)
	assert.Equal(t, "Normal", p.Distribution)
	assert.Equal(t, "Equal", p.Variance)
	assert.Equal(t, 4, p.NumGroups)
	assert.Equal(t, 1000, p.SampleSize)
	assert.Equal(t, "ANOVA", p.ExpectedTest)
}

func TestGetPreset_UnknownID(t *testing.T) {
	for _, id := range []int{0, -1, 21, 100} {
		_, err := GetPreset(id)
		require.Error(t, err, "id %d", id)
		assert.True(t, errors.Is(err, core.ErrUnknownScenario), "id %d", id)
		assert.True(t, core.IsNotFoundError(err), "id %d", id)
	}
}

func TestPresets_CompleteAndOrdered(t *testing.T) {
	all := Presets()
	require.Len(t, all, PresetCount)

	for i, p := range all {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, 1000, p.SampleSize)
		assert.NotEmpty(t, p.ExpectedTest)
	}
}

// Ids 13-20 repeat the configurations of earlier scenarios so identical
// statistical conditions can be regenerated.
func TestPresets_DuplicatesMatchOriginals(t *testing.T) {
	duplicateOf := map[int]int{
		13: 1,
		14: 4,
		15: 9,
		16: 10,
		17: 5,
		18: 7,
		19: 10,
		20: 12,
	}

	for dup, orig := range duplicateOf {
		d, err := GetPreset(dup)
		require.NoError(t, err)
		o, err := GetPreset(orig)
		require.NoError(t, err)

		assert.Equal(t, o.MetricType, d.MetricType, "preset %d vs %d", dup, orig)
		assert.Equal(t, o.Distribution, d.Distribution, "preset %d vs %d", dup, orig)
		assert.Equal(t, o.Variance, d.Variance, "preset %d vs %d", dup, orig)
		assert.Equal(t, o.NumGroups, d.NumGroups, "preset %d vs %d", dup, orig)
		assert.Equal(t, o.SampleSize, d.SampleSize, "preset %d vs %d", dup, orig)
	}
}

func TestPreset_Config(t *testing.T) {
	continuous, err := GetPreset(2)
	require.NoError(t, err)

	cfg := continuous.Config("Cohort")
	assert.Equal(t, MetricContinuous, cfg.MetricType)
	assert.Equal(t, ShapeNormal, cfg.Shape)
	assert.Equal(t, VarianceUnequal, cfg.Variance)
	assert.Equal(t, "Cohort", cfg.GroupPrefix)
	require.NoError(t, cfg.Validate())

	// Binary and Uniform are display values, not continuous shapes; the
	// resolved config must leave shape and variance unset.
	proportion, err := GetPreset(9)
	require.NoError(t, err)

	cfg = proportion.Config("Group")
	assert.Equal(t, MetricProportion, cfg.MetricType)
	assert.Empty(t, string(cfg.Shape))
	assert.Empty(t, string(cfg.Variance))
	require.NoError(t, cfg.Validate())
}

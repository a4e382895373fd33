package scenario

import (
	"sort"

	"synthgen/domain/core"
)

// Preset pairs a scenario configuration with the statistical test the
// resulting dataset is designed to make appropriate downstream. The catalog
// mirrors the 20-scenario statistical test matrix; ids 13-20 intentionally
// repeat earlier configurations so the same conditions can be regenerated.
type Preset struct {
	ID           int        `json:"id"`
	MetricType   MetricType `json:"metric_type"`
	Distribution string     `json:"distribution"` // Normal, Skewed, Binary or Uniform
	Variance     string     `json:"variance"`     // Equal, Unequal or "-"
	NumGroups    int        `json:"num_groups"`
	SampleSize   int        `json:"sample_size"`
	Description  string     `json:"description"`
	ExpectedTest string     `json:"expected_test"`
}

// Config resolves the preset into a generation config using the given group
// prefix. Shape and variance are only carried over for continuous metrics.
func (p Preset) Config(groupPrefix string) Config {
	cfg := Config{
		MetricType:         p.MetricType,
		NumGroups:          p.NumGroups,
		SampleSizePerGroup: p.SampleSize,
		GroupPrefix:        groupPrefix,
	}
	if p.MetricType == MetricContinuous {
		cfg.Shape = DistributionShape(p.Distribution)
		cfg.Variance = VarianceCondition(p.Variance)
	}
	return cfg
}

var presets = map[int]Preset{
	1:  {ID: 1, MetricType: MetricContinuous, Distribution: "Normal", Variance: "Equal", NumGroups: 2, SampleSize: 1000, Description: "t-test", ExpectedTest: "t-test"},
	2:  {ID: 2, MetricType: MetricContinuous, Distribution: "Normal", Variance: "Unequal", NumGroups: 2, SampleSize: 1000, Description: "Welch's t-test", ExpectedTest: "Welch's t-test"},
	3:  {ID: 3, MetricType: MetricContinuous, Distribution: "Skewed", Variance: "Equal", NumGroups: 2, SampleSize: 1000, Description: "Mann-Whitney", ExpectedTest: "Mann-Whitney"},
	4:  {ID: 4, MetricType: MetricContinuous, Distribution: "Skewed", Variance: "Unequal", NumGroups: 2, SampleSize: 1000, Description: "Mann-Whitney", ExpectedTest: "Mann-Whitney"},
	5:  {ID: 5, MetricType: MetricContinuous, Distribution: "Normal", Variance: "Equal", NumGroups: 4, SampleSize: 1000, Description: "ANOVA", ExpectedTest: "ANOVA"},
	6:  {ID: 6, MetricType: MetricContinuous, Distribution: "Normal", Variance: "Unequal", NumGroups: 4, SampleSize: 1000, Description: "Welch's ANOVA", ExpectedTest: "Welch's ANOVA"},
	7:  {ID: 7, MetricType: MetricContinuous, Distribution: "Skewed", Variance: "Equal", NumGroups: 4, SampleSize: 1000, Description: "Kruskal-Wallis", ExpectedTest: "Kruskal-Wallis"},
	8:  {ID: 8, MetricType: MetricContinuous, Distribution: "Skewed", Variance: "Unequal", NumGroups: 4, SampleSize: 1000, Description: "Kruskal-Wallis", ExpectedTest: "Kruskal-Wallis"},
	9:  {ID: 9, MetricType: MetricProportion, Distribution: "Binary", Variance: "-", NumGroups: 2, SampleSize: 1000, Description: "Two-Proportion Z-Test", ExpectedTest: "Two-Proportion Z-Test"},
	10: {ID: 10, MetricType: MetricProportion, Distribution: "Binary", Variance: "-", NumGroups: 4, SampleSize: 1000, Description: "Chi-Square", ExpectedTest: "Chi-Square"},
	11: {ID: 11, MetricType: MetricCategorical, Distribution: "Uniform", Variance: "-", NumGroups: 2, SampleSize: 1000, Description: "Chi-Square", ExpectedTest: "Chi-Square"},
	12: {ID: 12, MetricType: MetricCategorical, Distribution: "Uniform", Variance: "-", NumGroups: 4, SampleSize: 1000, Description: "Chi-Square", ExpectedTest: "Chi-Square"},
	13: {ID: 13, MetricType: MetricContinuous, Distribution: "Normal", Variance: "Equal", NumGroups: 2, SampleSize: 1000, Description: "t-test (duplicate)", ExpectedTest: "t-test (duplicate)"},
	14: {ID: 14, MetricType: MetricContinuous, Distribution: "Skewed", Variance: "Unequal", NumGroups: 2, SampleSize: 1000, Description: "Mann-Whitney (duplicate)", ExpectedTest: "Mann-Whitney (duplicate)"},
	15: {ID: 15, MetricType: MetricProportion, Distribution: "Binary", Variance: "-", NumGroups: 2, SampleSize: 1000, Description: "Two-Proportion Z-Test (duplicate)", ExpectedTest: "Two-Proportion Z-Test (duplicate)"},
	16: {ID: 16, MetricType: MetricProportion, Distribution: "Binary", Variance: "-", NumGroups: 4, SampleSize: 1000, Description: "Chi-Square (duplicate)", ExpectedTest: "Chi-Square (duplicate)"},
	17: {ID: 17, MetricType: MetricContinuous, Distribution: "Normal", Variance: "Equal", NumGroups: 4, SampleSize: 1000, Description: "ANOVA (confirm variance handling)", ExpectedTest: "ANOVA (confirm variance handling)"},
	18: {ID: 18, MetricType: MetricContinuous, Distribution: "Skewed", Variance: "Unequal", NumGroups: 4, SampleSize: 1000, Description: "Kruskal-Wallis (reconfirm skew+variance)", ExpectedTest: "Kruskal-Wallis (reconfirm skew+variance)"},
	19: {ID: 19, MetricType: MetricProportion, Distribution: "Binary", Variance: "-", NumGroups: 4, SampleSize: 1000, Description: "Chi-Square (retest large groups)", ExpectedTest: "Chi-Square (retest large groups)"},
	20: {ID: 20, MetricType: MetricCategorical, Distribution: "Uniform", Variance: "-", NumGroups: 4, SampleSize: 1000, Description: "Chi-Square (multi-level categorical)", ExpectedTest: "Chi-Square (multi-level categorical)"},
}

// PresetCount is the number of catalog entries.
const PresetCount = 20

// GetPreset returns the preset for the given id, or core.ErrUnknownScenario
// when the id is outside 1..PresetCount.
func GetPreset(id int) (Preset, error) {
	p, ok := presets[id]
	if !ok {
		return Preset{}, core.NewUnknownScenarioError(id)
	}
	return p, nil
}

// Presets returns all catalog entries ordered by id.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

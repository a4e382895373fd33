package scenario

import (
	"strings"

	"synthgen/domain/core"
)

// MetricType represents the statistical nature of the generated measurement
type MetricType string

const (
	MetricContinuous  MetricType = "Continuous"
	MetricProportion  MetricType = "Proportion"
	MetricCategorical MetricType = "Categorical"
)

// DistributionShape selects the continuous distribution family
type DistributionShape string

const (
	ShapeNormal DistributionShape = "Normal"
	ShapeSkewed DistributionShape = "Skewed"
)

// VarianceCondition controls whether groups share a common spread
type VarianceCondition string

const (
	VarianceEqual   VarianceCondition = "Equal"
	VarianceUnequal VarianceCondition = "Unequal"
)

// Config is an immutable description of one generation request.
// Shape and Variance are set iff MetricType is Continuous; the proportion and
// categorical generators derive their parameters from the group index alone.
type Config struct {
	MetricType         MetricType        `json:"metric_type"`
	Shape              DistributionShape `json:"distribution_shape,omitempty"`
	Variance           VarianceCondition `json:"variance_condition,omitempty"`
	NumGroups          int               `json:"num_groups"`
	SampleSizePerGroup int               `json:"sample_size_per_group"`
	GroupPrefix        string            `json:"group_prefix"`
}

// Validate checks the invariants the generators assume. It returns the first
// violation wrapped in core.ErrInvalidConfig.
func (c Config) Validate() error {
	switch c.MetricType {
	case MetricContinuous, MetricProportion, MetricCategorical:
	default:
		return core.NewInvalidConfigError("metric_type", "must be Continuous, Proportion or Categorical")
	}

	if c.NumGroups <= 0 {
		return core.ErrNonPositiveGroups
	}
	if c.SampleSizePerGroup <= 0 {
		return core.ErrNonPositiveSamples
	}
	if strings.TrimSpace(c.GroupPrefix) == "" {
		return core.ErrEmptyGroupPrefix
	}

	if c.MetricType == MetricContinuous {
		if c.Shape != ShapeNormal && c.Shape != ShapeSkewed {
			return core.ErrMissingDistribution
		}
		if c.Variance != VarianceEqual && c.Variance != VarianceUnequal {
			return core.ErrMissingDistribution
		}
	} else if c.Shape != "" || c.Variance != "" {
		return core.ErrShapeNotApplicable
	}

	return nil
}

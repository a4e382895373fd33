package generator

import (
	"gonum.org/v1/gonum/stat/distuv"

	"synthgen/domain/dataset"
	"synthgen/domain/scenario"
)

// Baseline parameters for the continuous families. The unequal-variance
// condition walks mean and spread up linearly with the group index so the
// groups are genuinely distinguishable, not just resampled.
const (
	normalBaseMean   = 50.0
	normalBaseStdDev = 10.0
	normalMeanStep   = 10.0
	normalStdDevStep = 5.0

	gammaBaseShape = 2.0
	gammaBaseScale = 10.0
	gammaShapeStep = 0.5
	gammaScaleStep = 5.0
)

// NormalParams returns the Normal(mean, stdDev) parameters for a group index.
func NormalParams(index int, variance scenario.VarianceCondition) (mean, stdDev float64) {
	if variance == scenario.VarianceUnequal {
		return normalBaseMean + normalMeanStep*float64(index),
			normalBaseStdDev + normalStdDevStep*float64(index)
	}
	return normalBaseMean, normalBaseStdDev
}

// GammaParams returns the Gamma(shape, scale) parameters for a group index.
func GammaParams(index int, variance scenario.VarianceCondition) (shape, scale float64) {
	if variance == scenario.VarianceUnequal {
		return gammaBaseShape + gammaShapeStep*float64(index),
			gammaBaseScale + gammaScaleStep*float64(index)
	}
	return gammaBaseShape, gammaBaseScale
}

// sampleContinuous draws the raw real-valued metrics for one group. Normal
// covers the symmetric case, Gamma the right-skewed one; values are not
// rounded.
func (g *Generator) sampleContinuous(cfg scenario.Config, index int) []dataset.Value {
	var dist distuv.Rander
	if cfg.Shape == scenario.ShapeSkewed {
		shape, scale := GammaParams(index, cfg.Variance)
		// distuv parameterizes Gamma by rate, the inverse of scale.
		dist = distuv.Gamma{Alpha: shape, Beta: 1 / scale, Src: g.src}
	} else {
		mean, stdDev := NormalParams(index, cfg.Variance)
		dist = distuv.Normal{Mu: mean, Sigma: stdDev, Src: g.src}
	}

	values := make([]dataset.Value, cfg.SampleSizePerGroup)
	for i := range values {
		values[i] = dataset.NewNumericValue(dist.Rand())
	}
	return values
}

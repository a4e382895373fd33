package generator

import (
	"gonum.org/v1/gonum/stat/distuv"

	"synthgen/domain/dataset"
	"synthgen/domain/scenario"
)

// Categories is the fixed label universe for categorical metrics, in draw
// order.
var Categories = []string{"Red", "Blue", "Green", "Yellow", "Purple", "Orange"}

// categoryWeights gives each group a distinct skew over the label universe so
// chi-square independence tests have an association to find. Groups beyond
// the third share one profile.
func categoryWeights(index int) []float64 {
	switch index {
	case 0:
		return []float64{0.4, 0.3, 0.2, 0.1, 0.0, 0.0} // favor Red/Blue
	case 1:
		return []float64{0.1, 0.2, 0.4, 0.3, 0.0, 0.0} // favor Green/Yellow
	case 2:
		return []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.0} // favor Purple
	default:
		return []float64{0.1, 0.1, 0.1, 0.1, 0.3, 0.3} // favor Purple/Orange
	}
}

// CategoryWeights returns the renormalized weight vector for a group index,
// truncated to the label universe.
func CategoryWeights(index int) []float64 {
	weights := categoryWeights(index)
	if len(weights) > len(Categories) {
		weights = weights[:len(Categories)]
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	normalized := make([]float64, len(weights))
	for i, w := range weights {
		normalized[i] = w / total
	}
	return normalized
}

// sampleCategorical draws independent weighted labels for one group.
func (g *Generator) sampleCategorical(cfg scenario.Config, index int) []dataset.Value {
	dist := distuv.NewCategorical(CategoryWeights(index), g.src)

	values := make([]dataset.Value, cfg.SampleSizePerGroup)
	for i := range values {
		values[i] = dataset.NewCategoryValue(Categories[int(dist.Rand())])
	}
	return values
}

package generator

import (
	"gonum.org/v1/gonum/stat/distuv"

	"synthgen/domain/dataset"
	"synthgen/domain/scenario"
)

const (
	proportionBase = 0.3
	proportionStep = 0.2
	proportionCap  = 0.9
)

// SuccessProbability returns the Bernoulli success probability for a group
// index: 0.3, 0.5, 0.7, then capped at 0.9. The monotone climb guarantees a
// detectable gap for two-proportion and chi-square tests.
func SuccessProbability(index int) float64 {
	p := proportionBase + proportionStep*float64(index)
	if p > proportionCap {
		return proportionCap
	}
	return p
}

// sampleProportion draws independent Bernoulli(p_i) outcomes for one group.
func (g *Generator) sampleProportion(cfg scenario.Config, index int) []dataset.Value {
	dist := distuv.Bernoulli{P: SuccessProbability(index), Src: g.src}

	values := make([]dataset.Value, cfg.SampleSizePerGroup)
	for i := range values {
		values[i] = dataset.NewBinaryValue(dist.Rand() == 1)
	}
	return values
}

// Package summary computes the per-group descriptive statistics shown
// alongside a generated dataset: count/mean/std/min/max for continuous
// metrics, success rates for proportions, label counts for categoricals.
package summary

import (
	"github.com/montanaflynn/stats"

	"synthgen/domain/dataset"
)

// Continuous describes one group of a continuous-metric dataset
type Continuous struct {
	Group  string  `json:"group"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Proportion describes one group of a proportion-metric dataset
type Proportion struct {
	Group      string  `json:"group"`
	Count      int     `json:"count"`
	Proportion float64 `json:"proportion"`
	Successes  int     `json:"successes"`
}

// Categorical describes one group of a categorical-metric dataset
type Categorical struct {
	Group  string         `json:"group"`
	Count  int            `json:"count"`
	Counts map[string]int `json:"counts"`
}

func groupFloats(ds *dataset.Dataset, group string) []float64 {
	var values []float64
	for _, r := range ds.GroupRows(group) {
		if f, ok := r.Metric.Float64(); ok {
			values = append(values, f)
		}
	}
	return values
}

// ForContinuous summarizes each group of a continuous dataset. StdDev is the
// sample standard deviation.
func ForContinuous(ds *dataset.Dataset) ([]Continuous, error) {
	var out []Continuous
	for _, group := range ds.Groups() {
		values := groupFloats(ds, group)

		mean, err := stats.Mean(values)
		if err != nil {
			return nil, err
		}
		stdDev, err := stats.StandardDeviationSample(values)
		if err != nil {
			return nil, err
		}
		min, err := stats.Min(values)
		if err != nil {
			return nil, err
		}
		max, err := stats.Max(values)
		if err != nil {
			return nil, err
		}

		out = append(out, Continuous{
			Group:  group,
			Count:  len(values),
			Mean:   mean,
			StdDev: stdDev,
			Min:    min,
			Max:    max,
		})
	}
	return out, nil
}

// ForProportion summarizes each group of a proportion dataset.
func ForProportion(ds *dataset.Dataset) ([]Proportion, error) {
	var out []Proportion
	for _, group := range ds.Groups() {
		values := groupFloats(ds, group)

		mean, err := stats.Mean(values)
		if err != nil {
			return nil, err
		}
		successes, err := stats.Sum(values)
		if err != nil {
			return nil, err
		}

		out = append(out, Proportion{
			Group:      group,
			Count:      len(values),
			Proportion: mean,
			Successes:  int(successes),
		})
	}
	return out, nil
}

// ForCategorical counts labels per group.
func ForCategorical(ds *dataset.Dataset) []Categorical {
	var out []Categorical
	for _, group := range ds.Groups() {
		rows := ds.GroupRows(group)
		counts := make(map[string]int)
		for _, r := range rows {
			counts[r.Metric.Label]++
		}
		out = append(out, Categorical{Group: group, Count: len(rows), Counts: counts})
	}
	return out
}

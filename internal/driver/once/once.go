// Package once implements SPEC_FULL.md §4's eval-once driver: sample draws
// from the prior, observe returns the observed value unchanged (unlike
// internal/driver/prior, which exists to characterize the prior and so
// must ignore observations), and finalize yields a single unweighted
// result — for smoke-testing a program without running inference.
package once

import (
	"github.com/foppl-lang/foppl/internal/dataset"
	"github.com/foppl-lang/foppl/internal/value"
)

// Driver runs the top-level expression exactly once with no weighting.
type Driver struct {
	result value.Value
}

func New() *Driver { return &Driver{} }

func (d *Driver) Sample(dist value.Dist, address int) (value.Value, error) {
	return dist.Sample(), nil
}

// Observe returns observed unchanged: evaluating a program once should
// show the program the data it was given, not a random draw.
func (d *Driver) Observe(dist value.Dist, observed value.Value, address int) (value.Value, error) {
	return observed, nil
}

func (d *Driver) FinishOneEvaluation(result value.Value) {
	d.result = result
}

func (d *Driver) Finalize() (*dataset.Dataset, error) {
	flat, err := dataset.Flatten(d.result)
	if err != nil {
		return nil, err
	}
	return &dataset.Dataset{HasWeights: false, Unweighted: []any{flat}}, nil
}

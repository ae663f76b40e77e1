// Package prior implements the §4.4.1 ancestral sampler: sample draws from
// the prior, observe is a no-op that still draws from the prior so the
// rest of the program sees a value, and no weight is ever recorded.
package prior

import (
	"github.com/foppl-lang/foppl/internal/dataset"
	"github.com/foppl-lang/foppl/internal/value"
)

// Driver is the prior-only (ancestral) sampler.
type Driver struct {
	results []value.Value
}

func New() *Driver { return &Driver{} }

func (d *Driver) Sample(dist value.Dist, address int) (value.Value, error) {
	return dist.Sample(), nil
}

// Observe ignores the observed value semantically, per §4.4.1's documented
// (and deliberately not "fixed") behavior: it returns a fresh draw from
// dist rather than the observed value, so the rest of the program still
// sees a sample from the prior.
func (d *Driver) Observe(dist value.Dist, observed value.Value, address int) (value.Value, error) {
	return dist.Sample(), nil
}

func (d *Driver) FinishOneEvaluation(result value.Value) {
	d.results = append(d.results, result)
}

func (d *Driver) Finalize() (*dataset.Dataset, error) {
	out := make([]any, len(d.results))
	for i, r := range d.results {
		flat, err := dataset.Flatten(r)
		if err != nil {
			return nil, err
		}
		out[i] = flat
	}
	return &dataset.Dataset{HasWeights: false, Unweighted: out}, nil
}

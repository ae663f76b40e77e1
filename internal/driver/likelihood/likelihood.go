// Package likelihood implements the §4.4.2 likelihood-weighting driver:
// sample draws from the prior unweighted, observe accumulates a log-weight
// from the density of the observed value, and each run's result is paired
// with its accumulated log-weight.
package likelihood

import (
	"github.com/foppl-lang/foppl/internal/dataset"
	"github.com/foppl-lang/foppl/internal/value"
)

// Driver is the likelihood-weighting sampler. logW accumulates across one
// run's observe calls and resets in FinishOneEvaluation.
type Driver struct {
	logW    float64
	results []value.Value
	weights []float64
}

func New() *Driver { return &Driver{} }

func (d *Driver) Sample(dist value.Dist, address int) (value.Value, error) {
	return dist.Sample(), nil
}

func (d *Driver) Observe(dist value.Dist, observed value.Value, address int) (value.Value, error) {
	lp, err := dist.LogPDF(observed)
	if err != nil {
		return value.Value{}, err
	}
	d.logW += lp
	return observed, nil
}

func (d *Driver) FinishOneEvaluation(result value.Value) {
	d.results = append(d.results, result)
	d.weights = append(d.weights, d.logW)
	d.logW = 0
}

func (d *Driver) Finalize() (*dataset.Dataset, error) {
	entries := make([]dataset.WeightedEntry, len(d.results))
	for i, r := range d.results {
		flat, err := dataset.Flatten(r)
		if err != nil {
			return nil, err
		}
		entries[i] = dataset.WeightedEntry{Value: flat, LogWeight: d.weights[i]}
	}
	return &dataset.Dataset{HasWeights: true, Weighted: entries}, nil
}

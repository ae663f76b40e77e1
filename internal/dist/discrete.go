package dist

import (
	"fmt"
	"math"

	"github.com/foppl-lang/foppl/internal/rng"
	"github.com/foppl-lang/foppl/internal/value"
)

// Discrete is a categorical distribution over the indices 0..len(Weights)-1.
// Weights need not sum to 1; Sample and LogPDF normalize by their sum.
type Discrete struct {
	Weights []float64
	total   float64
}

// NewDiscrete validates that weights is non-empty and every entry is
// non-negative with a positive sum, per §4.3.
func NewDiscrete(weights []float64) (*Discrete, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("discrete: weights vector must be non-empty")
	}
	var total float64
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("discrete: weights must be non-negative, got %g", w)
		}
		total += w
	}
	if total <= 0 {
		return nil, fmt.Errorf("discrete: weights must have a positive sum")
	}
	cp := make([]float64, len(weights))
	copy(cp, weights)
	return &Discrete{Weights: cp, total: total}, nil
}

func (d *Discrete) Name() string { return "discrete" }

func (d *Discrete) Sample() value.Value {
	u := rng.Float64() * d.total
	var cum float64
	for i, w := range d.Weights {
		cum += w
		if u < cum {
			return value.Int(int64(i))
		}
	}
	return value.Int(int64(len(d.Weights) - 1))
}

func (d *Discrete) LogPDF(v value.Value) (float64, error) {
	if v.Kind() != value.Integer {
		return 0, fmt.Errorf("discrete.log_pdf: expected an integer index, got %s", v.Kind())
	}
	i := v.Int64()
	if i < 0 || i >= int64(len(d.Weights)) {
		return 0, fmt.Errorf("discrete.log_pdf: index %d out of bounds for %d categories", i, len(d.Weights))
	}
	w := d.Weights[i]
	if w <= 0 {
		return math.Inf(-1), nil
	}
	return math.Log(w) - math.Log(d.total), nil
}

package dist

import (
	"fmt"
	"math"

	"github.com/foppl-lang/foppl/internal/rng"
	"github.com/foppl-lang/foppl/internal/value"
)

// Exponential is parameterized by its rate; mean is 1/Rate.
type Exponential struct {
	Rate float64
}

// NewExponential validates that Rate is strictly positive.
func NewExponential(rate float64) (*Exponential, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("exponential: rate must be positive, got %g", rate)
	}
	return &Exponential{Rate: rate}, nil
}

func (e *Exponential) Name() string { return "exponential" }

func (e *Exponential) Sample() value.Value {
	return value.Flt(rng.ExpFloat64() / e.Rate)
}

func (e *Exponential) LogPDF(v value.Value) (float64, error) {
	x, err := v.AsFloat()
	if err != nil {
		return 0, fmt.Errorf("exponential.log_pdf: %w", err)
	}
	if x < 0 {
		return math.Inf(-1), nil
	}
	return math.Log(e.Rate) - e.Rate*x, nil
}

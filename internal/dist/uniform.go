package dist

import (
	"fmt"
	"math"

	"github.com/foppl-lang/foppl/internal/rng"
	"github.com/foppl-lang/foppl/internal/value"
)

// UniformContinuous is the uniform distribution on [Low, High).
type UniformContinuous struct {
	Low, High float64
}

func NewUniformContinuous(low, high float64) (*UniformContinuous, error) {
	if !(high > low) {
		return nil, fmt.Errorf("uniform-continuous: high must exceed low, got low=%g high=%g", low, high)
	}
	return &UniformContinuous{Low: low, High: high}, nil
}

func (u *UniformContinuous) Name() string { return "uniform-continuous" }

func (u *UniformContinuous) Sample() value.Value {
	return value.Flt(u.Low + (u.High-u.Low)*rng.Float64())
}

func (u *UniformContinuous) LogPDF(v value.Value) (float64, error) {
	x, err := v.AsFloat()
	if err != nil {
		return 0, fmt.Errorf("uniform-continuous.log_pdf: %w", err)
	}
	if x < u.Low || x >= u.High {
		return math.Inf(-1), nil
	}
	return -math.Log(u.High - u.Low), nil
}

// Bernoulli is a coin flip returning a boolean, true with probability P.
type Bernoulli struct {
	P float64
}

func NewBernoulli(p float64) (*Bernoulli, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("flip: p must be in [0, 1], got %g", p)
	}
	return &Bernoulli{P: p}, nil
}

func (b *Bernoulli) Name() string { return "flip" }

func (b *Bernoulli) Sample() value.Value {
	return value.Bool(rng.Float64() < b.P)
}

func (b *Bernoulli) LogPDF(v value.Value) (float64, error) {
	if v.Kind() != value.Boolean {
		return 0, fmt.Errorf("flip.log_pdf: expected a boolean, got %s", v.Kind())
	}
	p := b.P
	if !v.Bool() {
		p = 1 - p
	}
	if p <= 0 {
		return math.Inf(-1), nil
	}
	return math.Log(p), nil
}

package dist

import (
	"fmt"
	"math"

	"github.com/foppl-lang/foppl/internal/rng"
	"github.com/foppl-lang/foppl/internal/value"
)

// Normal is the Gaussian distribution with mean Mu and standard deviation
// Sigma. Sigma must be strictly positive.
type Normal struct {
	Mu, Sigma float64
}

// NewNormal validates parameters and returns a handle, or a distribution
// error per §7 if Sigma is not positive.
func NewNormal(mu, sigma float64) (*Normal, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("normal: sigma must be positive, got %g", sigma)
	}
	return &Normal{Mu: mu, Sigma: sigma}, nil
}

func (n *Normal) Name() string { return "normal" }

func (n *Normal) Sample() value.Value {
	return value.Flt(n.Mu + n.Sigma*rng.NormFloat64())
}

func (n *Normal) LogPDF(v value.Value) (float64, error) {
	x, err := v.AsFloat()
	if err != nil {
		return 0, fmt.Errorf("normal.log_pdf: %w", err)
	}
	z := (x - n.Mu) / n.Sigma
	return -0.5*z*z - math.Log(n.Sigma) - 0.5*math.Log(2*math.Pi), nil
}

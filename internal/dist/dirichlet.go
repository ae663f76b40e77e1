package dist

import (
	"fmt"
	"math"

	"github.com/foppl-lang/foppl/internal/value"
)

// Dirichlet is parameterized by a concentration vector Alpha, every entry
// of which must be strictly positive (the "non-positive Dirichlet vector"
// error case named in §7).
type Dirichlet struct {
	Alpha []float64
}

func NewDirichlet(alpha []float64) (*Dirichlet, error) {
	if len(alpha) == 0 {
		return nil, fmt.Errorf("dirichlet: alpha vector must be non-empty")
	}
	for _, a := range alpha {
		if a <= 0 {
			return nil, fmt.Errorf("dirichlet: alpha entries must be positive, got %g", a)
		}
	}
	cp := make([]float64, len(alpha))
	copy(cp, alpha)
	return &Dirichlet{Alpha: cp}, nil
}

func (d *Dirichlet) Name() string { return "dirichlet" }

// Sample draws independent Gamma(alpha_i, 1) variates and normalizes them
// to the simplex.
func (d *Dirichlet) Sample() value.Value {
	draws := make([]float64, len(d.Alpha))
	var total float64
	for i, a := range d.Alpha {
		draws[i] = sampleGamma(a, 1)
		total += draws[i]
	}
	elems := make([]value.Value, len(draws))
	for i, x := range draws {
		elems[i] = value.Flt(x / total)
	}
	return value.Vec(elems)
}

func (d *Dirichlet) LogPDF(v value.Value) (float64, error) {
	if v.Kind() != value.Vector {
		return 0, fmt.Errorf("dirichlet.log_pdf: expected a vector, got %s", v.Kind())
	}
	xs := v.Elems()
	if len(xs) != len(d.Alpha) {
		return 0, fmt.Errorf("dirichlet.log_pdf: expected %d components, got %d", len(d.Alpha), len(xs))
	}
	var sumAlpha, logNorm, logDensity float64
	for i, a := range d.Alpha {
		sumAlpha += a
		logNorm += lgamma(a)
		x, err := xs[i].AsFloat()
		if err != nil {
			return 0, fmt.Errorf("dirichlet.log_pdf: component %d: %w", i, err)
		}
		if x <= 0 {
			return math.Inf(-1), nil
		}
		logDensity += (a - 1) * math.Log(x)
	}
	return logDensity - logNorm + lgamma(sumAlpha), nil
}

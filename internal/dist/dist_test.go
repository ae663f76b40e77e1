package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foppl-lang/foppl/internal/dist"
	"github.com/foppl-lang/foppl/internal/value"
)

func TestNewNormalRejectsNonPositiveSigma(t *testing.T) {
	t.Parallel()

	_, err := dist.NewNormal(0, 0)
	require.Error(t, err)

	_, err = dist.NewNormal(0, -1)
	require.Error(t, err)

	n, err := dist.NewNormal(1, 2)
	require.NoError(t, err)
	require.Equal(t, "normal", n.Name())
}

func TestNormalLogPDFPeaksAtMean(t *testing.T) {
	t.Parallel()

	n, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	atMean, err := n.LogPDF(value.Flt(0))
	require.NoError(t, err)
	atTail, err := n.LogPDF(value.Flt(3))
	require.NoError(t, err)
	require.Greater(t, atMean, atTail)

	_, err = n.LogPDF(value.Bool(true))
	require.Error(t, err)
}

func TestDiscreteValidation(t *testing.T) {
	t.Parallel()

	_, err := dist.NewDiscrete(nil)
	require.Error(t, err)

	_, err = dist.NewDiscrete([]float64{1, -1})
	require.Error(t, err)

	_, err = dist.NewDiscrete([]float64{0, 0})
	require.Error(t, err)

	d, err := dist.NewDiscrete([]float64{1, 3})
	require.NoError(t, err)

	lp, err := d.LogPDF(value.Int(1))
	require.NoError(t, err)
	require.InDelta(t, math.Log(3.0/4.0), lp, 1e-9)

	_, err = d.LogPDF(value.Int(5))
	require.Error(t, err)

	_, err = d.LogPDF(value.Flt(1))
	require.Error(t, err)
}

func TestGammaValidationAndLogPDF(t *testing.T) {
	t.Parallel()

	_, err := dist.NewGamma(0, 1)
	require.Error(t, err)
	_, err = dist.NewGamma(1, 0)
	require.Error(t, err)

	g, err := dist.NewGamma(2, 3)
	require.NoError(t, err)

	lp, err := g.LogPDF(value.Flt(-1))
	require.NoError(t, err)
	require.True(t, math.IsInf(lp, -1))

	lp, err = g.LogPDF(value.Flt(1))
	require.NoError(t, err)
	require.False(t, math.IsInf(lp, 0))
}

func TestDirichletValidationAndLogPDF(t *testing.T) {
	t.Parallel()

	_, err := dist.NewDirichlet(nil)
	require.Error(t, err)
	_, err = dist.NewDirichlet([]float64{1, 0})
	require.Error(t, err)

	d, err := dist.NewDirichlet([]float64{1, 1})
	require.NoError(t, err)

	_, err = d.LogPDF(value.Flt(1))
	require.Error(t, err)

	_, err = d.LogPDF(value.Vec([]value.Value{value.Flt(0.5)}))
	require.Error(t, err)

	lp, err := d.LogPDF(value.Vec([]value.Value{value.Flt(0.5), value.Flt(0.5)}))
	require.NoError(t, err)
	require.False(t, math.IsInf(lp, 0))
}

func TestUniformContinuous(t *testing.T) {
	t.Parallel()

	_, err := dist.NewUniformContinuous(1, 1)
	require.Error(t, err)

	u, err := dist.NewUniformContinuous(0, 2)
	require.NoError(t, err)

	lp, err := u.LogPDF(value.Flt(1))
	require.NoError(t, err)
	require.InDelta(t, -math.Log(2), lp, 1e-9)

	lp, err = u.LogPDF(value.Flt(5))
	require.NoError(t, err)
	require.True(t, math.IsInf(lp, -1))
}

func TestBernoulli(t *testing.T) {
	t.Parallel()

	_, err := dist.NewBernoulli(-0.1)
	require.Error(t, err)
	_, err = dist.NewBernoulli(1.1)
	require.Error(t, err)

	b, err := dist.NewBernoulli(0.25)
	require.NoError(t, err)

	lp, err := b.LogPDF(value.Bool(true))
	require.NoError(t, err)
	require.InDelta(t, math.Log(0.25), lp, 1e-9)

	lp, err = b.LogPDF(value.Bool(false))
	require.NoError(t, err)
	require.InDelta(t, math.Log(0.75), lp, 1e-9)

	_, err = b.LogPDF(value.Int(1))
	require.Error(t, err)
}

func TestExponentialValidationAndLogPDF(t *testing.T) {
	t.Parallel()

	_, err := dist.NewExponential(0)
	require.Error(t, err)
	_, err = dist.NewExponential(-1)
	require.Error(t, err)

	e, err := dist.NewExponential(2)
	require.NoError(t, err)
	require.Equal(t, "exponential", e.Name())

	lp, err := e.LogPDF(value.Flt(-1))
	require.NoError(t, err)
	require.True(t, math.IsInf(lp, -1))

	lp, err = e.LogPDF(value.Flt(0))
	require.NoError(t, err)
	require.InDelta(t, math.Log(2.0), lp, 1e-9)
}

func TestStandardRegistryAndArityErrors(t *testing.T) {
	t.Parallel()

	r := dist.Standard()

	ctor, ok := r.Get("normal")
	require.True(t, ok)
	_, err := ctor([]value.Value{value.Flt(0)})
	require.Error(t, err)

	d, err := ctor([]value.Value{value.Flt(0), value.Flt(1)})
	require.NoError(t, err)
	require.Equal(t, "normal", d.Name())

	_, ok = r.Get("not-a-distribution")
	require.False(t, ok)

	names := r.Names()
	require.Contains(t, names, "normal")
	require.Contains(t, names, "flip")
	require.Contains(t, names, "dirichlet")
}

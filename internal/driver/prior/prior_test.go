package prior_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foppl-lang/foppl/internal/dist"
	"github.com/foppl-lang/foppl/internal/driver/prior"
	"github.com/foppl-lang/foppl/internal/value"
)

func TestPriorSampleMeanAndVariance(t *testing.T) {
	t.Parallel()

	n, err := dist.NewNormal(3, 2)
	require.NoError(t, err)

	d := prior.New()
	const runs = 20000
	var sum, sumSq float64
	for i := 0; i < runs; i++ {
		v, err := d.Sample(n, 0)
		require.NoError(t, err)
		f, err := v.AsFloat()
		require.NoError(t, err)
		sum += f
		sumSq += f * f
		d.FinishOneEvaluation(v)
	}
	mean := sum / runs
	variance := sumSq/runs - mean*mean

	require.InDelta(t, 3.0, mean, 0.15)
	require.InDelta(t, 4.0, variance, 0.3)

	ds, err := d.Finalize()
	require.NoError(t, err)
	require.False(t, ds.HasWeights)
	require.Len(t, ds.Unweighted, runs)
}

func TestPriorObserveIgnoresObservedValueAndDrawsFresh(t *testing.T) {
	t.Parallel()

	n, err := dist.NewNormal(100, 0.001)
	require.NoError(t, err)

	d := prior.New()
	v, err := d.Observe(n, value.Flt(-9999), 0)
	require.NoError(t, err)

	f, err := v.AsFloat()
	require.NoError(t, err)
	require.InDelta(t, 100.0, f, 1.0)
}

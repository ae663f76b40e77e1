package program_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foppl-lang/foppl/internal/driver/prior"
	"github.com/foppl-lang/foppl/internal/program"
)

func TestRunInferenceEndToEnd(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"top": {
			"tag": "sample",
			"child": {"tag": "apply", "apply_name": "normal", "args": [
				{"tag": "integer", "int": 0},
				{"tag": "integer", "int": 1}
			]}
		}
	}`)

	dp, err := program.DecodeFresh(raw)
	require.NoError(t, err)

	ds, err := dp.RunInference(50, prior.New())
	require.NoError(t, err)
	require.False(t, ds.HasWeights)
	require.Len(t, ds.Unweighted, 50)
}

func TestRunInferenceAbortsOnFirstErrorWithNoPartialDataset(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"top": {"tag": "variable", "name": "undefined_name"}}`)
	dp, err := program.DecodeFresh(raw)
	require.NoError(t, err)

	ds, err := dp.RunInference(5, prior.New())
	require.Error(t, err)
	require.Nil(t, ds)
}

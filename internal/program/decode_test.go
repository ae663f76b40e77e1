package program_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foppl-lang/foppl/internal/ast"
	"github.com/foppl-lang/foppl/internal/program"
)

func TestDecodeSimpleProgram(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"top": {
			"tag": "let",
			"bindings": [{"name": "x", "expr": {"tag": "integer", "int": 2}}],
			"body": [{"tag": "apply", "apply_name": "+", "args": [
				{"tag": "variable", "name": "x"},
				{"tag": "integer", "int": 3}
			]}]
		}
	}`)

	prog, err := program.Decode(raw)
	require.NoError(t, err)
	require.NotNil(t, prog.Top)
	require.Equal(t, 0, len(prog.Functions))
}

func TestDecodeRejectsUnknownTag(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"top": {"tag": "not-a-real-tag"}}`)
	_, err := program.Decode(raw)
	require.Error(t, err)
}

func TestDecodeRejectsMissingTop(t *testing.T) {
	t.Parallel()

	raw := []byte(`{}`)
	_, err := program.Decode(raw)
	require.Error(t, err)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := program.Decode([]byte(`{not json`))
	require.Error(t, err)
}

func TestDecodeAssignsAddressesToSampleNodes(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"top": {
			"tag": "sample",
			"child": {"tag": "apply", "apply_name": "flip", "args": [{"tag": "float", "float": 0.5}]}
		}
	}`)

	prog, err := program.Decode(raw)
	require.NoError(t, err)
	require.Equal(t, 0, prog.Top.Address)
}

func TestDecodeFunctionWithForeachShapeMismatch(t *testing.T) {
	t.Parallel()

	// A structurally valid but semantically mismatched foreach (binding
	// vector length disagreeing with n) is not caught at decode time — the
	// schema only validates structure, not runtime shapes — so decoding
	// succeeds and the shape error surfaces later from the evaluator.
	raw := []byte(`{
		"top": {
			"tag": "foreach",
			"n": {"tag": "integer", "int": 3},
			"bindings": [{"name": "x", "expr": {"tag": "vector", "elements": [
				{"tag": "integer", "int": 1}, {"tag": "integer", "int": 2}
			]}}],
			"body": [{"tag": "variable", "name": "x"}]
		}
	}`)

	prog, err := program.Decode(raw)
	require.NoError(t, err)
	require.Equal(t, ast.KindForEach, prog.Top.Kind)
}

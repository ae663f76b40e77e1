package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foppl-lang/foppl/internal/ast"
	"github.com/foppl-lang/foppl/internal/cache"
)

func TestSaveThenLoadRoundTrips(t *testing.T) {
	t.Parallel()

	top := ast.Sample(ast.Apply("flip", []*ast.Expression{ast.Float(0.5)}))
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{}, Top: top}
	ast.AssignAddresses(prog)

	raw := []byte(`{"top": {"tag": "sample"}}`)
	path := filepath.Join(t.TempDir(), "cache.cbor")

	require.NoError(t, cache.Save(path, raw, prog))

	loaded, ok := cache.Load(path, raw)
	require.True(t, ok)
	require.Equal(t, top.Address, loaded.Top.Address)
}

func TestLoadMissesOnHashMismatch(t *testing.T) {
	t.Parallel()

	top := ast.Integer(1)
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{}, Top: top}

	raw := []byte(`{"top": {"tag": "integer", "int": 1}}`)
	path := filepath.Join(t.TempDir(), "cache.cbor")
	require.NoError(t, cache.Save(path, raw, prog))

	_, ok := cache.Load(path, []byte(`{"top": {"tag": "integer", "int": 2}}`))
	require.False(t, ok)
}

func TestLoadMissesOnMissingFile(t *testing.T) {
	t.Parallel()

	_, ok := cache.Load(filepath.Join(t.TempDir(), "does-not-exist.cbor"), []byte(`{}`))
	require.False(t, ok)
}

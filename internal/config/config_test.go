package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foppl-lang/foppl/internal/config"
)

func TestLoadMissingFileReturnsEmptyDefaults(t *testing.T) {
	t.Parallel()

	d, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, 0, d.Samples)
}

func TestLoadParsesYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 500\nskip: 10\ndriver: mh\n"), 0o644))

	d, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 500, d.Samples)
	require.Equal(t, 10, d.Skip)
	require.Equal(t, "mh", d.Driver)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: [this is not valid: yaml"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverridesLoadDefaultsOnEmptyPath(t *testing.T) {
	overrides, err := NewOverridesFileAdapter().Load("")
	require.NoError(t, err)
	assert.True(t, overrides.TeapotAllowed("fontconfig"))
}

func TestOverridesLoadExtendsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	content := `teapot_ok:
  - stubborn_host
filename_variable:
  qt: download_file
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	overrides, err := NewOverridesFileAdapter().Load(path)
	require.NoError(t, err)

	assert.True(t, overrides.TeapotAllowed("fontconfig"))
	assert.True(t, overrides.TeapotAllowed("stubborn_host"))

	variable, ok := overrides.ForcedFilenameVariable("qt")
	require.True(t, ok)
	assert.Equal(t, "download_file", variable)
}

func TestOverridesLoadMissingFile(t *testing.T) {
	_, err := NewOverridesFileAdapter().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestOverridesLoadMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("teapot_ok: {not: [valid"), 0644))

	_, err := NewOverridesFileAdapter().Load(path)
	require.Error(t, err)
}

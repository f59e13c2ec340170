// Package testutil provides shared test helpers used across
// integration and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteDescriptor writes a dependency descriptor file into dir and
// returns its path.
func WriteDescriptor(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// DescriptorDir creates a temporary directory populated with the given
// descriptors, keyed by file name.
func DescriptorDir(t *testing.T, descriptors map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range descriptors {
		WriteDescriptor(t, dir, name, content)
	}
	return dir
}

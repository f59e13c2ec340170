package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"depaudit/internal/types"
)

func writeDescriptor(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestListFilesExcludesNonPackages(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "zlib.mk", "package=zlib\n")
	writeDescriptor(t, dir, "boost.mk", "package=boost\n")
	writeDescriptor(t, dir, "packages.mk", "packages:=zlib boost\n")
	writeDescriptor(t, dir, "dummy.mk", "package=dummy\n")
	writeDescriptor(t, dir, "notes.txt", "not a descriptor\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "patches.mk"), 0755))

	files, err := NewDescriptorSourceAdapter().ListFiles(dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "boost.mk"),
		filepath.Join(dir, "zlib.mk"),
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Fatalf("unexpected files (-want +got):\n%s", diff)
	}
}

func TestListFilesMissingDirectory(t *testing.T) {
	_, err := NewDescriptorSourceAdapter().ListFiles(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestLoadDescriptor(t *testing.T) {
	dir := t.TempDir()
	path := writeDescriptor(t, dir, "zlib.mk", "package=zlib\n$(package)_version=1.3.1\n")

	descriptor, err := NewDescriptorSourceAdapter().LoadDescriptor(path)
	require.NoError(t, err)
	require.Equal(t, "zlib", descriptor.Name)
	require.Equal(t, map[string]string{"version": "1.3.1"}, descriptor.Variables)
}

func TestLoadIndexSkipsFilesWithoutPackageName(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "zlib.mk", "package=zlib\n$(package)_version=1.3.1\n")
	writeDescriptor(t, dir, "broken.mk", "$(package)_version=0.1\n")

	index, err := NewDescriptorSourceAdapter().LoadIndex(dir)
	require.NoError(t, err)

	want := types.Index{"zlib": {"version": "1.3.1"}}
	if diff := cmp.Diff(want, index); diff != "" {
		t.Fatalf("unexpected index (-want +got):\n%s", diff)
	}
}

package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"depaudit/internal/types"
)

func TestResolveSamePackage(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		variables map[string]string
		pkg       string
		want      string
	}{
		{
			name:      "self placeholder expands to package name",
			value:     "$(package)-1.0.tar.gz",
			variables: map[string]string{},
			pkg:       "zlib",
			want:      "zlib-1.0.tar.gz",
		},
		{
			name:      "nested reference through self placeholder",
			value:     "$($(package)_version)",
			variables: map[string]string{"version": "1.2"},
			pkg:       "foo",
			want:      "1.2",
		},
		{
			name:      "chained references reach fixed point",
			value:     "$(foo_file_name)",
			variables: map[string]string{"version": "1.2", "file_name": "foo-$(foo_version).tar.gz"},
			pkg:       "foo",
			want:      "foo-1.2.tar.gz",
		},
		{
			name:      "cross-package reference left untouched",
			value:     "lib-$(native_protobuf_version)",
			variables: map[string]string{"version": "1.2"},
			pkg:       "foo",
			want:      "lib-$(native_protobuf_version)",
		},
		{
			name:      "unknown variable left untouched",
			value:     "$(foo_missing)",
			variables: map[string]string{"version": "1.2"},
			pkg:       "foo",
			want:      "$(foo_missing)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Resolve(tt.value, tt.variables, tt.pkg))
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	variables := map[string]string{"version": "1.2", "file_name": "foo-$(foo_version).tar.gz"}
	resolved := Resolve("$(foo_file_name)", variables, "foo")
	require.Equal(t, resolved, Resolve(resolved, variables, "foo"))
}

func TestResolveTerminatesOnCycle(t *testing.T) {
	variables := map[string]string{
		"a": "$(foo_b)",
		"b": "$(foo_a)",
	}
	result := Resolve("$(foo_a)", variables, "foo")
	require.Contains(t, result, "$(")
}

func TestResolveCrossPackage(t *testing.T) {
	index := types.Index{
		"foo": {"version": "1.2"},
		"native_protobuf": {
			"version":   "3.6.1",
			"file_name": "protobuf-$(native_protobuf_version).tar.gz",
		},
	}

	t.Run("simple cross reference", func(t *testing.T) {
		require.Equal(t, "lib-1.2", ResolveCrossPackage("lib-$(foo_version)", "bar", index))
	})

	t.Run("referenced value resolved relative to its owner", func(t *testing.T) {
		got := ResolveCrossPackage("$(native_protobuf_file_name)", "bar", index)
		require.Equal(t, "protobuf-3.6.1.tar.gz", got)
	})

	t.Run("own package never matches", func(t *testing.T) {
		got := ResolveCrossPackage("$(foo_version)", "foo", index)
		require.Equal(t, "$(foo_version)", got)
	})

	t.Run("unknown placeholder left for the caller", func(t *testing.T) {
		got := ResolveCrossPackage("$(mystery_version)", "bar", index)
		require.Equal(t, "$(mystery_version)", got)
	})
}

func TestResolveCrossPackagePrefersLongestPrefix(t *testing.T) {
	// Both "native" and "native_protobuf" are viable prefixes of the
	// token; the longer package name must win deterministically.
	index := types.Index{
		"native":          {"protobuf_version": "9.9"},
		"native_protobuf": {"version": "3.6.1"},
	}
	got := ResolveCrossPackage("$(native_protobuf_version)", "bar", index)
	require.Equal(t, "3.6.1", got)
}

func TestResolveCrossPackageMultipleMatchesInOneRound(t *testing.T) {
	index := types.Index{
		"foo": {"version": "1.2"},
		"bar": {"version": "2.4"},
	}
	got := ResolveCrossPackage("$(foo_version)-$(bar_version)", "baz", index)
	require.Equal(t, "1.2-2.4", got)
}

func TestResolveCrossPackageDoesNotMutateIndex(t *testing.T) {
	index := types.Index{
		"foo": {"version": "1.2", "file_name": "foo-$(foo_version).tar.gz"},
	}
	snapshot := types.Index{
		"foo": {"version": "1.2", "file_name": "foo-$(foo_version).tar.gz"},
	}

	first := ResolveCrossPackage("$(foo_file_name)", "bar", index)
	second := ResolveCrossPackage("$(foo_file_name)", "bar", index)
	require.Equal(t, first, second)
	if diff := cmp.Diff(snapshot, index); diff != "" {
		t.Fatalf("index mutated (-want +got):\n%s", diff)
	}
}

func TestHasPlaceholder(t *testing.T) {
	require.True(t, HasPlaceholder("x-$(foo_version)"))
	require.False(t, HasPlaceholder("x-1.2.tar.gz"))
}

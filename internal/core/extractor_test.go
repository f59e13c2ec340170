package core

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestExtractDescriptorCases(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantName string
		wantVars map[string]string
	}{
		{
			name: "basic assignments",
			content: strings.Join([]string{
				"package=zlib",
				"$(package)_version=1.3.1",
				"$(package)_download_path=https://zlib.net",
				"$(package)_file_name=zlib-$($(package)_version).tar.gz",
			}, "\n"),
			wantName: "zlib",
			wantVars: map[string]string{
				"version":       "1.3.1",
				"download_path": "https://zlib.net",
				"file_name":     "zlib-$($(package)_version).tar.gz",
			},
		},
		{
			name: "no package line yields nothing",
			content: strings.Join([]string{
				"$(package)_version=1.0",
				"$(package)_download_path=https://example.org",
			}, "\n"),
			wantName: "",
			wantVars: map[string]string{},
		},
		{
			name: "no assignment lines yields empty variables",
			content: strings.Join([]string{
				"package=empty",
				"# just a comment",
				"",
				"define $(package)_build_cmds",
				"  make -j4",
				"endef",
			}, "\n"),
			wantName: "empty",
			wantVars: map[string]string{},
		},
		{
			name: "comments and blanks skipped",
			content: strings.Join([]string{
				"# header comment",
				"",
				"package=boost",
				"",
				"# version pin",
				"$(package)_version=1.81.0",
			}, "\n"),
			wantName: "boost",
			wantVars: map[string]string{"version": "1.81.0"},
		},
		{
			name: "continuation lines folded",
			content: strings.Join([]string{
				"package=qt",
				"$(package)_config_opts = -opensource -confirm-license",
				"  -no-cups",
				"  -no-dbus",
				"$(package)_version=5.15.2",
			}, "\n"),
			wantName: "qt",
			wantVars: map[string]string{
				"config_opts": "-opensource -confirm-license -no-cups -no-dbus",
				"version":     "5.15.2",
			},
		},
		{
			name: "conditional body not folded into value",
			content: strings.Join([]string{
				"package=native_cctools",
				"$(package)_ldflags=-L/usr/lib",
				"ifeq ($(host_os),darwin)",
				"  -framework CoreFoundation",
				"endif",
				"$(package)_version=2.0",
			}, "\n"),
			wantName: "native_cctools",
			wantVars: map[string]string{
				"ldflags": "-L/usr/lib",
				"version": "2.0",
			},
		},
		{
			name: "assignment inside conditional still recorded",
			content: strings.Join([]string{
				"package=zeromq",
				"$(package)_version=4.3.1",
				"ifeq ($(build_os),mingw32)",
				"$(package)_download_file=v$($(package)_version).tar.gz",
				"else",
				"endif",
				"$(package)_file_name=zeromq-$($(package)_version).tar.gz",
			}, "\n"),
			wantName: "zeromq",
			wantVars: map[string]string{
				"version":       "4.3.1",
				"download_file": "v$($(package)_version).tar.gz",
				"file_name":     "zeromq-$($(package)_version).tar.gz",
			},
		},
		{
			name: "conditional suffix trimmed from value",
			content: strings.Join([]string{
				"package=expat",
				"$(package)_version=2.5.0 ifeq ($(host_os),mingw32)",
			}, "\n"),
			wantName: "expat",
			wantVars: map[string]string{"version": "2.5.0"},
		},
		{
			name: "define block contributes nothing",
			content: strings.Join([]string{
				"package=libevent",
				"$(package)_version=2.1.12",
				"define $(package)_preprocess_cmds",
				"  sed -i 's/x/y/' configure.ac",
				"endef",
				"$(package)_download_path=https://github.com/libevent/libevent/releases",
			}, "\n"),
			wantName: "libevent",
			wantVars: map[string]string{
				"version":       "2.1.12",
				"download_path": "https://github.com/libevent/libevent/releases",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			name, variables := ExtractDescriptor(tt.content)
			require.Equal(t, tt.wantName, name)
			if diff := cmp.Diff(tt.wantVars, variables); diff != "" {
				t.Fatalf("unexpected variables (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractDescriptorPackageNameWithSpaces(t *testing.T) {
	name, _ := ExtractDescriptor("package = openssl\n")
	require.Equal(t, "openssl", name)
}

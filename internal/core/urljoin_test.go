package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		fileName string
		want     string
	}{
		{
			name:     "trailing slash on base",
			basePath: "https://example.org/dl/",
			fileName: "/archive-1.0.tar.gz",
			want:     "https://example.org/dl/archive-1.0.tar.gz",
		},
		{
			name:     "no slashes on either side",
			basePath: "https://example.org/dl",
			fileName: "archive-1.0.tar.gz",
			want:     "https://example.org/dl/archive-1.0.tar.gz",
		},
		{
			name:     "leading slash on file only",
			basePath: "https://example.org/dl",
			fileName: "/archive-1.0.tar.gz",
			want:     "https://example.org/dl/archive-1.0.tar.gz",
		},
		{
			name:     "trailing slash on base only",
			basePath: "https://example.org/dl/",
			fileName: "archive-1.0.tar.gz",
			want:     "https://example.org/dl/archive-1.0.tar.gz",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, BuildURL(tt.basePath, tt.fileName))
		})
	}
}

package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"depaudit/internal/core"
	"depaudit/internal/ports"
	"depaudit/internal/types"
)

// DescriptorExtension is the file extension of dependency descriptors.
const DescriptorExtension = ".mk"

// excludedDescriptorFiles are mk files that live next to package
// descriptors but are not packages themselves.
var excludedDescriptorFiles = map[string]struct{}{
	"packages.mk": {}, // the package-list manifest
	"dummy.mk":    {}, // placeholder example descriptor
}

type DescriptorSourceAdapter struct{}

func NewDescriptorSourceAdapter() DescriptorSourceAdapter {
	return DescriptorSourceAdapter{}
}

// ListFiles enumerates descriptor files in dir, sorted by name so a
// run's output order is stable.
func (a DescriptorSourceAdapter) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("descriptor directory not found: %s", dir)).
			WithCause(err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != DescriptorExtension {
			continue
		}
		if _, excluded := excludedDescriptorFiles[name]; excluded {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}

func (a DescriptorSourceAdapter) LoadDescriptor(path string) (types.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Descriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("descriptor file not readable: %s", path)).
			WithCause(err)
	}
	name, variables := core.ExtractDescriptor(string(data))
	return types.Descriptor{Name: name, Variables: variables}, nil
}

// LoadIndex parses every descriptor in dir into the cross-package
// variable index. Files that declare no package name are silently
// skipped; they surface later as per-file results, not here.
func (a DescriptorSourceAdapter) LoadIndex(dir string) (types.Index, error) {
	files, err := a.ListFiles(dir)
	if err != nil {
		return nil, err
	}
	index := types.Index{}
	for _, file := range files {
		descriptor, err := a.LoadDescriptor(file)
		if err != nil {
			return nil, err
		}
		if descriptor.Name == "" {
			continue
		}
		index[descriptor.Name] = descriptor.Variables
	}
	log.Debug().Int("packages", len(index)).Str("dir", dir).Msg("descriptor index built")
	return index, nil
}

var _ ports.DescriptorSourcePort = DescriptorSourceAdapter{}

package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depaudit/internal/adapters"
	"depaudit/internal/core"
	"depaudit/internal/policies"
	"depaudit/internal/types"
)

// List resolves every package's declared version and download URL
// without touching the network.
func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	dir := strings.TrimSpace(req.Dir)
	if dir == "" {
		dir = DefaultDescriptorDir
	}
	overrides, err := s.Overrides.Load(req.OverridesPath)
	if err != nil {
		return ListResult{}, err
	}
	files, err := s.Descriptors.ListFiles(dir)
	if err != nil {
		return ListResult{}, err
	}
	if len(files) == 0 {
		return ListResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no %s files found in %s", adapters.DescriptorExtension, dir))
	}
	index, err := s.Descriptors.LoadIndex(dir)
	if err != nil {
		return ListResult{}, err
	}

	var packages []types.PackageSummary
	for _, file := range files {
		descriptor, err := s.Descriptors.LoadDescriptor(file)
		if err != nil {
			return ListResult{}, err
		}
		if descriptor.Name == "" {
			continue
		}
		summary := types.PackageSummary{Name: descriptor.Name}
		if raw, ok := descriptor.Variables["version"]; ok {
			version := resolveValue(raw, descriptor, index)
			if !core.HasPlaceholder(version) {
				summary.Version = version
			}
		}
		if url, ok := resolveDownloadURL(descriptor, index, overrides); ok {
			summary.URL = url
		}
		packages = append(packages, summary)
	}

	if req.ByVersion {
		order := core.NewVersionOrder()
		sort.SliceStable(packages, func(i, j int) bool {
			if packages[i].Version != packages[j].Version {
				return order.Less(packages[i].Version, packages[j].Version)
			}
			return packages[i].Name < packages[j].Name
		})
	} else {
		sort.Slice(packages, func(i, j int) bool {
			return packages[i].Name < packages[j].Name
		})
	}
	return ListResult{Packages: packages}, nil
}

// resolveValue runs the same-package pass and, if placeholders
// remain, the cross-package pass.
func resolveValue(raw string, descriptor types.Descriptor, index types.Index) string {
	value := core.Resolve(raw, descriptor.Variables, descriptor.Name)
	if core.HasPlaceholder(value) {
		value = core.ResolveCrossPackage(value, descriptor.Name, index)
	}
	return value
}

// resolveDownloadURL reconstructs the package's download URL, or
// reports false when required variables are missing or placeholders
// cannot be fully expanded.
func resolveDownloadURL(descriptor types.Descriptor, index types.Index, overrides policies.Overrides) (string, bool) {
	rawPath, ok := descriptor.Variables[variableDownloadPath]
	if !ok {
		return "", false
	}
	fileVariable := chooseFilenameVariable(descriptor, overrides)
	if fileVariable == "" {
		return "", false
	}
	downloadPath := resolveValue(rawPath, descriptor, index)
	fileName := resolveValue(descriptor.Variables[fileVariable], descriptor, index)
	if core.HasPlaceholder(downloadPath) || core.HasPlaceholder(fileName) {
		return "", false
	}
	return core.BuildURL(downloadPath, fileName), true
}

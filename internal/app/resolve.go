package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depaudit/internal/types"
)

// Resolve expands every variable of a single package, for debugging a
// descriptor without probing anything.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	name := strings.TrimSpace(req.Package)
	if name == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	dir := strings.TrimSpace(req.Dir)
	if dir == "" {
		dir = DefaultDescriptorDir
	}
	overrides, err := s.Overrides.Load(req.OverridesPath)
	if err != nil {
		return ResolveResult{}, err
	}
	index, err := s.Descriptors.LoadIndex(dir)
	if err != nil {
		return ResolveResult{}, err
	}
	variables, known := index[name]
	if !known {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("package not found: %s", name))
	}

	descriptor := types.Descriptor{Name: name, Variables: variables}
	resolved := make(map[string]string, len(variables))
	for key, raw := range variables {
		resolved[key] = resolveValue(raw, descriptor, index)
	}
	result := ResolveResult{Package: name, Variables: resolved}
	if url, ok := resolveDownloadURL(descriptor, index, overrides); ok {
		result.URL = url
	}
	return result, nil
}

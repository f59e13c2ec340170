package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"depaudit/internal/adapters"
	"depaudit/internal/core"
	"depaudit/internal/policies"
	"depaudit/internal/ports"
	"depaudit/internal/types"
)

const (
	variableDownloadPath = "download_path"
	variableDownloadFile = "download_file"
	variableFileName     = "file_name"
)

// Audit checks every descriptor in the requested directory and
// returns the accumulated report. Failures stay local to one file;
// the run itself only fails when the input set is missing or empty.
func (s Service) Audit(ctx context.Context, req AuditRequest) (AuditResult, error) {
	dir := strings.TrimSpace(req.Dir)
	if dir == "" {
		dir = DefaultDescriptorDir
	}
	assert.NotEmpty(ctx, dir, "descriptor directory must be set")
	start := s.Clock()

	overrides, err := s.Overrides.Load(req.OverridesPath)
	if err != nil {
		return AuditResult{}, err
	}
	probe := s.Probe
	if probe == nil {
		probe = adapters.NewURLProbeAdapter(overrides, req.Timeout)
	}

	files, err := s.Descriptors.ListFiles(dir)
	if err != nil {
		return AuditResult{}, err
	}
	if len(files) == 0 {
		return AuditResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no %s files found in %s", adapters.DescriptorExtension, dir))
	}
	index, err := s.Descriptors.LoadIndex(dir)
	if err != nil {
		return AuditResult{}, err
	}
	log.Debug().Int("files", len(files)).Int("packages", len(index)).Msg("audit input loaded")
	if req.Begin != nil {
		req.Begin(len(files), len(index))
	}

	results := s.checkAll(ctx, files, index, probe, overrides, req.Workers, req.Progress)
	report := types.Report{Results: results}
	log.Debug().Int("files", len(files)).Dur("elapsed", s.Clock().Sub(start)).Msg("audit finished")

	result := AuditResult{
		Report:   report,
		Files:    len(files),
		Packages: len(index),
	}
	if strings.TrimSpace(req.OutputPath) != "" {
		if err := s.Reports.WriteReport(req.OutputPath, report); err != nil {
			return AuditResult{}, err
		}
		result.OutputPath = req.OutputPath
	}
	return result, nil
}

// checkAll probes files across a bounded worker pool. Every check is
// independent and read-only with respect to the index, so the only
// coordination needed is restoring results to enumeration order for
// the progress callback and the final report.
func (s Service) checkAll(
	ctx context.Context,
	files []string,
	index types.Index,
	probe ports.ProbePort,
	overrides policies.Overrides,
	workers int,
	progress func(int, int, types.CheckResult),
) []types.CheckResult {
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	results := make([]types.CheckResult, len(files))
	tasks := make(chan int)
	completions := make(chan int, len(files))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				results[idx] = s.checkDescriptorFile(ctx, files[idx], index, probe, overrides)
				completions <- idx
			}
		}()
	}
	go func() {
		for idx := range files {
			tasks <- idx
		}
		close(tasks)
	}()
	go func() {
		wg.Wait()
		close(completions)
	}()

	// Emit progress strictly in enumeration order, releasing each
	// result as soon as everything before it has finished.
	done := make([]bool, len(files))
	next := 0
	for idx := range completions {
		done[idx] = true
		for next < len(files) && done[next] {
			if progress != nil {
				progress(next, len(files), results[next])
			}
			next++
		}
	}
	return results
}

// checkDescriptorFile classifies one descriptor. Any unexpected
// failure is caught at this boundary and reported as an error result
// rather than aborting the run.
func (s Service) checkDescriptorFile(
	ctx context.Context,
	path string,
	index types.Index,
	probe ports.ProbePort,
	overrides policies.Overrides,
) (result types.CheckResult) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	defer func() {
		if r := recover(); r != nil {
			result = types.CheckResult{
				Package: stem,
				Status:  types.CheckStatusError,
				Message: fmt.Sprintf("Error processing: %v", r),
			}
		}
	}()

	descriptor, err := s.Descriptors.LoadDescriptor(path)
	if err != nil {
		return types.CheckResult{
			Package: stem,
			Status:  types.CheckStatusError,
			Message: fmt.Sprintf("Error processing: %v", err),
		}
	}
	if descriptor.Name == "" {
		return types.CheckResult{
			Package: stem,
			Status:  types.CheckStatusError,
			Message: "Failed to determine package name",
		}
	}

	variables := descriptor.Variables
	rawPath, ok := variables[variableDownloadPath]
	if !ok {
		return types.CheckResult{
			Package: descriptor.Name,
			Status:  types.CheckStatusSkip,
			Message: "Missing required variable (download_path)",
		}
	}
	fileVariable := chooseFilenameVariable(descriptor, overrides)
	if fileVariable == "" {
		return types.CheckResult{
			Package: descriptor.Name,
			Status:  types.CheckStatusSkip,
			Message: "Missing required variable (download_file or file_name)",
		}
	}

	downloadPath := resolveValue(rawPath, descriptor, index)
	fileName := resolveValue(variables[fileVariable], descriptor, index)
	if core.HasPlaceholder(downloadPath) || core.HasPlaceholder(fileName) {
		return types.CheckResult{
			Package: descriptor.Name,
			Status:  types.CheckStatusSkip,
			Message: "Failed to resolve all variables (possible cross-package references)",
		}
	}

	url := core.BuildURL(downloadPath, fileName)
	outcome := probe.Check(ctx, url, descriptor.Name)
	status := types.CheckStatusError
	if outcome.Reachable {
		status = types.CheckStatusOk
	}
	return types.CheckResult{
		Package:    descriptor.Name,
		URL:        url,
		Status:     status,
		StatusCode: outcome.StatusCode,
		Message:    outcome.Message,
	}
}

// chooseFilenameVariable picks the variable holding the archive name:
// a policy override wins, then download_file (the name on the
// server), then file_name (the local storage name).
func chooseFilenameVariable(descriptor types.Descriptor, overrides policies.Overrides) string {
	if forced, ok := overrides.ForcedFilenameVariable(descriptor.Name); ok {
		if _, present := descriptor.Variables[forced]; present {
			return forced
		}
	}
	if _, ok := descriptor.Variables[variableDownloadFile]; ok {
		return variableDownloadFile
	}
	if _, ok := descriptor.Variables[variableFileName]; ok {
		return variableFileName
	}
	return ""
}

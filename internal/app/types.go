package app

import (
	"time"

	"depaudit/internal/types"
)

// DefaultDescriptorDir is where a depends tree keeps its per-package
// mk files, relative to the working directory.
const DefaultDescriptorDir = "depends/packages"

type AuditRequest struct {
	Dir           string
	Workers       int
	Timeout       time.Duration
	OverridesPath string
	OutputPath    string
	// Begin, when set, is called once after enumeration with the file
	// and package counts.
	Begin func(files int, packages int)
	// Progress, when set, is called once per file in enumeration
	// order as results become available.
	Progress func(index int, total int, result types.CheckResult)
}

type AuditResult struct {
	Report     types.Report
	Files      int
	Packages   int
	OutputPath string
}

type ListRequest struct {
	Dir           string
	OverridesPath string
	ByVersion     bool
}

type ListResult struct {
	Packages []types.PackageSummary
}

type ResolveRequest struct {
	Dir           string
	Package       string
	OverridesPath string
}

type ResolveResult struct {
	Package   string
	Variables map[string]string
	URL       string
}

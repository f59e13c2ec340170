package policies

import "strings"

// Overrides captures per-package quirks the audit must honor. These
// are policy data, not algorithm: a new exception is a new table
// entry, not a new conditional in the checker.
type Overrides struct {
	// TeapotOK lists packages whose download host answers HTTP 418
	// for resources that are actually present.
	TeapotOK map[string]struct{}
	// FilenameVariable forces the filename variable for a package,
	// overriding the usual download_file-then-file_name preference.
	FilenameVariable map[string]string
}

// DefaultOverrides returns the built-in exception tables: the
// fontconfig host misreports availability with 418, and zeromq's
// download_file carries a mingw32-only value so file_name is the
// correct pick for the default build.
func DefaultOverrides() Overrides {
	return Overrides{
		TeapotOK: map[string]struct{}{
			"fontconfig": {},
		},
		FilenameVariable: map[string]string{
			"zeromq": "file_name",
		},
	}
}

// TeapotAllowed reports whether a 418 response counts as reachable
// for the given package.
func (o Overrides) TeapotAllowed(packageName string) bool {
	_, ok := o.TeapotOK[packageName]
	return ok
}

// ForcedFilenameVariable returns the filename variable forced for the
// given package, if any.
func (o Overrides) ForcedFilenameVariable(packageName string) (string, bool) {
	name, ok := o.FilenameVariable[packageName]
	return name, ok
}

// Merge returns a copy of o extended with extra's entries. Extension
// is additive; extra entries win on key collision.
func (o Overrides) Merge(extra Overrides) Overrides {
	merged := Overrides{
		TeapotOK:         map[string]struct{}{},
		FilenameVariable: map[string]string{},
	}
	for name := range o.TeapotOK {
		merged.TeapotOK[name] = struct{}{}
	}
	for name := range extra.TeapotOK {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			merged.TeapotOK[trimmed] = struct{}{}
		}
	}
	for name, variable := range o.FilenameVariable {
		merged.FilenameVariable[name] = variable
	}
	for name, variable := range extra.FilenameVariable {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			merged.FilenameVariable[trimmed] = strings.TrimSpace(variable)
		}
	}
	return merged
}

package types

// Descriptor is the parsed form of one dependency's mk file: the
// declared package name plus its raw, unexpanded variables keyed by
// local name (the $(package)_ prefix stripped).
type Descriptor struct {
	Name      string
	Variables map[string]string
}

// Index maps every known package name to that package's raw variable
// map. It is built once per run and read-only afterwards; cross-package
// placeholder resolution consults it.
type Index map[string]map[string]string

// PackageSummary is one row of the offline listing: a package, its
// declared upstream version, and the fully resolved download URL.
type PackageSummary struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	URL     string `json:"url,omitempty"`
}

package core

import (
	debversion "github.com/knqyf263/go-deb-version"
)

// VersionOrder compares declared upstream version strings for listing
// output. Parsed versions are memoized so repeated comparisons during
// sorting stay cheap; strings that do not parse as versions fall back
// to plain lexicographic order.
type VersionOrder struct {
	parsed map[string]debversion.Version
	failed map[string]struct{}
}

func NewVersionOrder() *VersionOrder {
	return &VersionOrder{
		parsed: map[string]debversion.Version{},
		failed: map[string]struct{}{},
	}
}

func (o *VersionOrder) version(value string) (debversion.Version, bool) {
	if parsed, ok := o.parsed[value]; ok {
		return parsed, true
	}
	if _, ok := o.failed[value]; ok {
		return debversion.Version{}, false
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		o.failed[value] = struct{}{}
		return debversion.Version{}, false
	}
	o.parsed[value] = parsed
	return parsed, true
}

// Less orders a before b. Version semantics apply when both sides
// parse ("1.10" sorts after "1.9"); otherwise the comparison is
// lexicographic.
func (o *VersionOrder) Less(a string, b string) bool {
	left, leftOk := o.version(a)
	right, rightOk := o.version(b)
	if leftOk && rightOk {
		return left.LessThan(right)
	}
	return a < b
}

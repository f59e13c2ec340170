package core

import (
	"regexp"
	"sort"
	"strings"

	"depaudit/internal/types"
)

// selfPlaceholder expands to the owning package's name, so
// $($(package)_version) becomes $(<name>_version) before variable
// lookup kicks in.
const selfPlaceholder = "$(package)"

// Iteration bounds guard against pathological reference cycles. On
// exceeding a bound the partially resolved string is returned as-is.
const (
	maxLocalRounds = 20
	maxCrossRounds = 10
)

var (
	nestedReferencePattern = regexp.MustCompile(`\$\(([a-zA-Z_][a-zA-Z0-9_]*)_(\w+)\)`)
	directReferencePattern = regexp.MustCompile(`\$\(([a-zA-Z_][a-zA-Z0-9_]*)\)`)
	anyPlaceholderPattern  = regexp.MustCompile(`\$\(([^)]+)\)`)
)

// HasPlaceholder reports whether value still contains an unexpanded
// $(...) reference.
func HasPlaceholder(value string) bool {
	return strings.Contains(value, "$(")
}

// Resolve expands placeholders that refer to the owning package's own
// name or variables, iterating to a fixed point. References to other
// packages are left untouched for ResolveCrossPackage.
func Resolve(value string, variables map[string]string, packageName string) string {
	result := value
	for round := 0; round < maxLocalRounds; round++ {
		changed := false

		if replaced := strings.ReplaceAll(result, selfPlaceholder, packageName); replaced != result {
			result = replaced
			changed = true
		}

		// $(<prefix>_<name>) where the prefix is the package itself.
		if match := nestedReferencePattern.FindStringSubmatchIndex(result); match != nil {
			token := result[match[0]:match[1]]
			prefix := result[match[2]:match[3]]
			name := result[match[4]:match[5]]
			if prefix == packageName {
				if raw, ok := variables[name]; ok {
					result = strings.ReplaceAll(result, token, raw)
					continue
				}
			}
		}

		// $(<key>) with the package-name prefix spelled out in full.
		if match := directReferencePattern.FindStringSubmatchIndex(result); match != nil {
			token := result[match[0]:match[1]]
			key := result[match[2]:match[3]]
			if name, ok := strings.CutPrefix(key, packageName+"_"); ok {
				if raw, found := variables[name]; found {
					result = strings.ReplaceAll(result, token, raw)
					continue
				}
			}
		}

		if !changed {
			break
		}
	}
	return result
}

// ResolveCrossPackage expands placeholders whose prefix names another
// package found in the index, iterating to a fixed point. Within each
// round matches are substituted in reverse position order so earlier
// offsets stay valid.
//
// Two precedence tiers per placeholder: first the longest known
// package-name prefix (package names may themselves contain
// underscores), then a fallback split at the last underscore. When two
// known packages are both valid prefixes of one token the choice is
// inherently ambiguous; candidates are scanned by descending name
// length, ties broken lexicographically, so the outcome is at least
// deterministic.
func ResolveCrossPackage(value string, packageName string, index types.Index) string {
	candidates := orderedPackageNames(index)
	result := value
	for round := 0; round < maxCrossRounds; round++ {
		changed := false
		matches := anyPlaceholderPattern.FindAllStringSubmatchIndex(result, -1)
		for i := len(matches) - 1; i >= 0; i-- {
			match := matches[i]
			full := result[match[2]:match[3]]
			replacement, ok := lookupCrossReference(full, packageName, index, candidates)
			if !ok {
				continue
			}
			result = result[:match[0]] + replacement + result[match[1]:]
			changed = true
		}
		if !changed {
			break
		}
	}
	return result
}

func lookupCrossReference(full string, packageName string, index types.Index, candidates []string) (string, bool) {
	for _, other := range candidates {
		if other == packageName {
			continue
		}
		name, ok := strings.CutPrefix(full, other+"_")
		if !ok {
			continue
		}
		raw, found := index[other][name]
		if !found {
			continue
		}
		return Resolve(raw, index[other], other), true
	}

	// Fallback: naive split at the last underscore.
	split := strings.LastIndex(full, "_")
	if split <= 0 {
		return "", false
	}
	candidate, name := full[:split], full[split+1:]
	if candidate == packageName {
		return "", false
	}
	variables, known := index[candidate]
	if !known {
		return "", false
	}
	raw, found := variables[name]
	if !found {
		return "", false
	}
	return Resolve(raw, variables, candidate), true
}

func orderedPackageNames(index types.Index) []string {
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

package core

import (
	"regexp"
	"strings"
)

var (
	packageNamePattern = regexp.MustCompile(`^package\s*=\s*(.+)$`)
	assignmentPattern  = regexp.MustCompile(`^\$\(package\)_(\w+)\s*=\s*(.+)$`)
	// A bare conditional keyword appended to a value belongs to
	// unparsed conditional logic, not to the value itself.
	conditionalSuffixPattern = regexp.MustCompile(`\s+(if|else|endif|ifeq|ifneq).*$`)
)

// ExtractDescriptor scans one mk file's text and returns the declared
// package name plus its raw, unexpanded variables keyed by local name.
// A file without a `package = <id>` line is not a package descriptor
// and yields an empty name with no variables. Malformed input never
// fails here; it just yields fewer variables.
func ExtractDescriptor(content string) (string, map[string]string) {
	lines := strings.Split(content, "\n")

	packageName := ""
	for _, line := range lines {
		if match := packageNamePattern.FindStringSubmatch(strings.TrimSpace(line)); match != nil {
			packageName = strings.TrimSpace(match[1])
			break
		}
	}
	if packageName == "" {
		return "", map[string]string{}
	}

	variables := map[string]string{}
	currentVariable := ""
	var accumulated []string
	conditionalDepth := 0
	inDefine := false

	flush := func() {
		if currentVariable == "" {
			return
		}
		variables[currentVariable] = strings.TrimSpace(strings.Join(accumulated, " "))
	}

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		// define blocks never contribute to any variable.
		if inDefine {
			if strings.HasPrefix(stripped, "endef") {
				inDefine = false
			}
			continue
		}
		if strings.HasPrefix(stripped, "define ") {
			inDefine = true
			continue
		}

		// Conditional bodies are dropped, not evaluated.
		if strings.HasPrefix(stripped, "else") {
			continue
		}
		if strings.HasPrefix(stripped, "endif") {
			conditionalDepth--
			continue
		}
		if strings.HasPrefix(stripped, "if") {
			conditionalDepth++
			continue
		}

		if match := assignmentPattern.FindStringSubmatch(stripped); match != nil {
			flush()
			currentVariable = match[1]
			accumulated = []string{stripConditionalSuffix(match[2])}
			continue
		}

		// Implicit continuation: any other non-empty line extends the
		// in-progress value, but only outside conditional bodies.
		if currentVariable != "" && conditionalDepth == 0 {
			if cleaned := stripConditionalSuffix(stripped); cleaned != "" {
				accumulated = append(accumulated, cleaned)
			}
		}
	}
	flush()

	return packageName, variables
}

func stripConditionalSuffix(value string) string {
	return strings.TrimSpace(conditionalSuffixPattern.ReplaceAllString(value, ""))
}

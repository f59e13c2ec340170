package types

// CheckResult classifies one descriptor file. Exactly one result is
// produced per file; skip entries are configuration gaps, not
// reachability failures, and do not count as errors.
type CheckResult struct {
	Package    string      `json:"package"`
	URL        string      `json:"url,omitempty"`
	Status     CheckStatus `json:"status"`
	StatusCode int         `json:"status_code,omitempty"`
	Message    string      `json:"message"`
}

// Report accumulates results in file-enumeration order.
type Report struct {
	Results []CheckResult `json:"results"`
}

func (r Report) Counts() (ok int, errors int, skipped int) {
	for _, result := range r.Results {
		switch result.Status {
		case CheckStatusOk:
			ok++
		case CheckStatusError:
			errors++
		case CheckStatusSkip:
			skipped++
		}
	}
	return ok, errors, skipped
}

func (r Report) Errors() []CheckResult {
	var failed []CheckResult
	for _, result := range r.Results {
		if result.Status == CheckStatusError {
			failed = append(failed, result)
		}
	}
	return failed
}

// ProbeOutcome is the classified result of a single network probe.
type ProbeOutcome struct {
	Reachable  bool
	StatusCode int
	Message    string
}

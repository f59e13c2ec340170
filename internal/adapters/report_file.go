package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depaudit/internal/ports"
	"depaudit/internal/types"
)

// reportDocument is the JSON artifact written next to the console
// output. Results keep file-enumeration order so runs diff cleanly.
type reportDocument struct {
	Ok      int                 `json:"ok"`
	Errors  int                 `json:"errors"`
	Skipped int                 `json:"skipped"`
	Results []types.CheckResult `json:"results"`
}

type ReportFileAdapter struct{}

func NewReportFileAdapter() ReportFileAdapter {
	return ReportFileAdapter{}
}

func (a ReportFileAdapter) WriteReport(path string, report types.Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create report directory").
				WithCause(err)
		}
	}
	ok, errorCount, skipped := report.Counts()
	doc := reportDocument{
		Ok:      ok,
		Errors:  errorCount,
		Skipped: skipped,
		Results: report.Results,
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode report").
			WithCause(err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report file").
			WithCause(err)
	}
	return nil
}

var _ ports.ReportWriterPort = ReportFileAdapter{}

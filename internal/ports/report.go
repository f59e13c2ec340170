package ports

import "depaudit/internal/types"

type ReportWriterPort interface {
	WriteReport(path string, report types.Report) error
}

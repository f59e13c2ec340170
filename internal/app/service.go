package app

import (
	"time"

	"depaudit/internal/adapters"
	"depaudit/internal/ports"
)

type Service struct {
	Descriptors ports.DescriptorSourcePort
	Overrides   ports.OverridesPort
	Reports     ports.ReportWriterPort
	// Probe is constructed per run from the request timeout when nil;
	// tests inject a fake here.
	Probe ports.ProbePort
	Clock func() time.Time
}

func NewService() Service {
	return Service{
		Descriptors: adapters.NewDescriptorSourceAdapter(),
		Overrides:   adapters.NewOverridesFileAdapter(),
		Reports:     adapters.NewReportFileAdapter(),
		Clock:       time.Now,
	}
}

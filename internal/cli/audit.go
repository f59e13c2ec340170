package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"depaudit/internal/app"
	"depaudit/internal/types"
)

const (
	colorGreen = "\033[92m"
	colorRed   = "\033[91m"
	colorReset = "\033[0m"
)

type auditOptions struct {
	Dir        string
	Workers    int
	TimeoutSec int
	Overrides  string
	Output     string
}

func newAuditCommand() *cobra.Command {
	opts := auditOptions{}
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Probe every dependency download URL and summarize reachability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAudit(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", app.DefaultDescriptorDir, "Directory with dependency mk files")
	cmd.Flags().IntVar(&opts.Workers, "workers", 1, "Concurrent URL probes")
	cmd.Flags().IntVar(&opts.TimeoutSec, "timeout", 30, "Probe timeout in seconds")
	cmd.Flags().StringVar(&opts.Overrides, "overrides", "", "Extra per-package overrides yaml")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write a json report to this path")
	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("overrides", cmd.Flags().Lookup("overrides"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runAudit(ctx context.Context, cmd *cobra.Command, opts auditOptions) error {
	service := newAppService()
	result, err := service.Audit(ctx, app.AuditRequest{
		Dir:           resolveString(cmd, opts.Dir, "dir", "dir"),
		Workers:       resolveInt(cmd, opts.Workers, "workers", "workers"),
		Timeout:       time.Duration(resolveInt(cmd, opts.TimeoutSec, "timeout", "timeout")) * time.Second,
		OverridesPath: resolveString(cmd, opts.Overrides, "overrides", "overrides"),
		OutputPath:    resolveString(cmd, opts.Output, "output", "output"),
		Begin: func(files int, packages int) {
			fmt.Printf("Checking %d dependency files (%d packages)...\n\n", files, packages)
		},
		Progress: printAuditProgress,
	})
	if err != nil {
		return err
	}

	printAuditSummary(result.Report)
	if result.OutputPath != "" {
		fmt.Printf("\nReport written to %s\n", result.OutputPath)
	}

	_, errorCount, _ := result.Report.Counts()
	if errorCount > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%d dependency URLs unreachable", errorCount))
	}
	return nil
}

func printAuditProgress(index int, total int, result types.CheckResult) {
	fmt.Printf("[%d/%d] Checking %s... ", index+1, total, result.Package)
	switch result.Status {
	case types.CheckStatusOk:
		fmt.Printf("%s✓%s %s\n", colorGreen, colorReset, result.Message)
	case types.CheckStatusError:
		fmt.Printf("%s✗%s %s (HTTP %s)\n", colorRed, colorReset, result.Message, formatStatusCode(result))
	case types.CheckStatusSkip:
		fmt.Printf("- %s\n", result.Message)
	}
}

func printAuditSummary(report types.Report) {
	ok, errorCount, skipped := report.Counts()
	fmt.Printf("\n%s\n", strings.Repeat("=", 70))
	fmt.Printf("Summary: Ok: %d, Errors: %d, Skipped: %d\n", ok, errorCount, skipped)

	failed := report.Errors()
	if len(failed) == 0 {
		return
	}
	fmt.Printf("\nDetailed error information:\n")
	for _, result := range failed {
		fmt.Printf("  %s✗%s %-30s - %s (HTTP %s)\n", colorRed, colorReset, result.Package, result.Message, formatStatusCode(result))
		fmt.Printf("    URL: %s\n", urlOrPlaceholder(result))
	}
}

// formatStatusCode mirrors the report line format: files that never
// reached the probe stage have no status code to show.
func formatStatusCode(result types.CheckResult) string {
	if result.URL == "" {
		return "N/A"
	}
	return strconv.Itoa(result.StatusCode)
}

func urlOrPlaceholder(result types.CheckResult) string {
	if result.URL == "" {
		return "N/A"
	}
	return result.URL
}

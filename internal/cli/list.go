package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"depaudit/internal/app"
)

type listOptions struct {
	Dir       string
	Overrides string
	ByVersion bool
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List packages with resolved versions and download URLs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", app.DefaultDescriptorDir, "Directory with dependency mk files")
	cmd.Flags().StringVar(&opts.Overrides, "overrides", "", "Extra per-package overrides yaml")
	cmd.Flags().BoolVar(&opts.ByVersion, "by-version", false, "Order by declared upstream version")
	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("overrides", cmd.Flags().Lookup("overrides"))
	_ = viper.BindPFlag("by_version", cmd.Flags().Lookup("by-version"))
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	service := newAppService()
	result, err := service.List(ctx, app.ListRequest{
		Dir:           resolveString(cmd, opts.Dir, "dir", "dir"),
		OverridesPath: resolveString(cmd, opts.Overrides, "overrides", "overrides"),
		ByVersion:     resolveBool(cmd, opts.ByVersion, "by_version", "by-version"),
	})
	if err != nil {
		return err
	}
	for _, pkg := range result.Packages {
		version := pkg.Version
		if version == "" {
			version = "-"
		}
		url := pkg.URL
		if url == "" {
			url = "-"
		}
		fmt.Printf("%-28s %-16s %s\n", pkg.Name, version, url)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"depaudit/internal/app"
)

type resolveOptions struct {
	Dir       string
	Overrides string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve <package>",
		Short: "Print one package's fully resolved variables and URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", app.DefaultDescriptorDir, "Directory with dependency mk files")
	cmd.Flags().StringVar(&opts.Overrides, "overrides", "", "Extra per-package overrides yaml")
	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("overrides", cmd.Flags().Lookup("overrides"))
	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions, pkg string) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		Dir:           resolveString(cmd, opts.Dir, "dir", "dir"),
		Package:       pkg,
		OverridesPath: resolveString(cmd, opts.Overrides, "overrides", "overrides"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("package: %s\n", result.Package)
	keys := make([]string, 0, len(result.Variables))
	for key := range result.Variables {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  %s = %s\n", key, result.Variables[key])
	}
	if result.URL != "" {
		fmt.Printf("url: %s\n", result.URL)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"labware-import/internal/app"
)

const defaultCatalogPath = "labware-catalog.yaml"

type catalogOptions struct {
	Output  string
	Workers int
}

func newCatalogCommand() *cobra.Command {
	opts := catalogOptions{}
	cmd := &cobra.Command{
		Use:   "catalog <definition-dir>",
		Short: "Import every definition file under a directory into one catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", defaultCatalogPath, "Catalog file path")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "Concurrent import workers (0 = default)")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	return cmd
}

func runCatalog(ctx context.Context, cmd *cobra.Command, root string, opts catalogOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Catalog(ctx, app.CatalogRequest{
		Root:    root,
		Output:  resolveString(cmd, opts.Output, "output", "output"),
		Workers: resolveInt(cmd, opts.Workers, "workers", "workers"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("catalog: %s (%d imported, %d skipped)\n", result.OutputPath, result.Imported, len(result.Skipped))
	for _, skip := range result.Skipped {
		fmt.Printf("- skipped %s: %s\n", skip.Source, skip.Reason)
	}
	return nil
}

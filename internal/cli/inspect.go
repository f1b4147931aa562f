package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"labware-import/internal/app"
)

type inspectOptions struct {
	CatalogPath string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a written catalog by resource kind",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.CatalogPath, "catalog", defaultCatalogPath, "Catalog file path")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("catalog"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Inspect(app.InspectRequest{
		CatalogPath: resolveString(cmd, opts.CatalogPath, "output", "catalog"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("api_version: %s\n", result.APIVersion)
	for _, summary := range result.Kinds {
		label := string(summary.Kind)
		if summary.Carrier {
			label += " (carrier)"
		}
		fmt.Printf("- %s: %d\n", label, summary.Count)
		if len(summary.Names) > 0 {
			fmt.Printf("  %s\n", strings.Join(summary.Names, ", "))
		}
	}
	fmt.Printf("skipped: %d\n", len(result.Skipped))
	for _, skip := range result.Skipped {
		fmt.Printf("- %s: %s\n", skip.Source, skip.Reason)
	}
	return nil
}

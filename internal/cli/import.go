package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"labware-import/internal/app"
)

type importOptions struct {
	Name    string
	CtrPath string
	Output  string
}

func newImportCommand() *cobra.Command {
	opts := importOptions{}
	cmd := &cobra.Command{
		Use:   "import <definition>",
		Short: "Assemble one definition file into a labware descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "Resource name (defaults to the model name)")
	cmd.Flags().StringVar(&opts.CtrPath, "ctr", "", "Well definition file for plates (defaults to the companion .ctr)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the descriptor as a catalog file instead of printing it")
	_ = viper.BindPFlag("name", cmd.Flags().Lookup("name"))
	_ = viper.BindPFlag("ctr", cmd.Flags().Lookup("ctr"))
	return cmd
}

func runImport(ctx context.Context, cmd *cobra.Command, path string, opts importOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Import(ctx, app.ImportRequest{
		Path:    path,
		Name:    resolveString(cmd, opts.Name, "name", "name"),
		CtrPath: resolveString(cmd, opts.CtrPath, "ctr", "ctr"),
		Output:  opts.Output,
	})
	if err != nil {
		return err
	}
	if result.OutputPath != "" {
		fmt.Printf("imported: %s (%s) -> %s\n", result.Entry.Name, result.Entry.Kind, result.OutputPath)
		return nil
	}
	data, err := yaml.Marshal(result.Entry)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

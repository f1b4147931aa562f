package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"labware-import/internal/app"
)

func newClassifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <definition>...",
		Short: "Report the resource kind of definition files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd.Context(), args)
		},
	}
	return cmd
}

func runClassify(ctx context.Context, paths []string) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Classify(ctx, app.ClassifyRequest{Paths: paths})
	if err != nil {
		return err
	}
	for _, outcome := range result.Outcomes {
		fmt.Printf("%s\t%s\n", outcome.Kind, outcome.Path)
	}
	return nil
}

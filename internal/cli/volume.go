package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"labware-import/internal/app"
)

type volumeOptions struct {
	CtrPath string
	Heights []float64
}

func newVolumeCommand() *cobra.Command {
	opts := volumeOptions{}
	cmd := &cobra.Command{
		Use:   "volume <plate-definition>",
		Short: "Print the well volume function of a plate and evaluate it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVolume(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.CtrPath, "ctr", "", "Well definition file (defaults to the companion .ctr)")
	cmd.Flags().Float64SliceVar(&opts.Heights, "height", nil, "Liquid heights in mm to evaluate")
	_ = viper.BindPFlag("ctr", cmd.Flags().Lookup("ctr"))
	return cmd
}

func runVolume(ctx context.Context, cmd *cobra.Command, path string, opts volumeOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Volume(ctx, app.VolumeRequest{
		Path:    path,
		CtrPath: resolveString(cmd, opts.CtrPath, "ctr", "ctr"),
		Heights: opts.Heights,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s (total height %s mm)\n", result.Resource, formatFloat(result.TotalHeight))
	fmt.Println(result.Equation)
	for _, sample := range result.Samples {
		fmt.Printf("h=%s volume=%s\n", formatFloat(sample.Height), formatFloat(sample.Volume))
	}
	return nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

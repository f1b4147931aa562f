package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCorrectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "corrections",
		Short: "List the geometry corrections and filename aliases in effect",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCorrections()
		},
	}
}

func runCorrections() error {
	policy, err := loadCorrectionPolicy()
	if err != nil {
		return err
	}
	fmt.Println("corrections:")
	for _, correction := range policy.Corrections() {
		fmt.Printf("- %s %s: %s -> %s (%s)\n",
			correction.Model, correction.Field,
			formatFloat(correction.When), formatFloat(correction.Value),
			correction.Reason)
	}
	fmt.Println("file aliases:")
	for _, alias := range policy.FileAliases() {
		fmt.Printf("- %s -> %s\n", alias.Match, alias.Replace)
	}
	return nil
}

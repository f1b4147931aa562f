package cli

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"labware-import/internal/app"
	"labware-import/internal/policies"
	"labware-import/internal/types"
)

// newAppService builds the service with the built-in corrections plus any
// listed under "corrections" and "file_aliases" in the config file.
func newAppService() (app.Service, error) {
	policy, err := loadCorrectionPolicy()
	if err != nil {
		return app.Service{}, err
	}
	return app.NewServiceWithCorrections(policy), nil
}

func loadCorrectionPolicy() (policies.CorrectionPolicy, error) {
	corrections := policies.DefaultCorrections()
	aliases := policies.DefaultFileAliases()
	if viper.IsSet("corrections") {
		var extra []types.Correction
		if err := viper.UnmarshalKey("corrections", &extra); err != nil {
			return policies.CorrectionPolicy{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to decode corrections").
				WithCause(err)
		}
		corrections = append(corrections, extra...)
	}
	if viper.IsSet("file_aliases") {
		var extra []types.FileAlias
		if err := viper.UnmarshalKey("file_aliases", &extra); err != nil {
			return policies.CorrectionPolicy{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to decode file aliases").
				WithCause(err)
		}
		aliases = append(aliases, extra...)
	}
	if err := policies.ValidateCorrections(corrections); err != nil {
		return policies.CorrectionPolicy{}, err
	}
	return policies.NewCorrectionPolicy(corrections, aliases), nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	envPrefix   = "LABWARE_IMPORT"
	logFileName = "labware-import.log"
)

type RootConfig struct {
	ConfigFile string
	LogLevel   string
	LogDir     string
}

func Execute() {
	root := newRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "labware-import",
		Short:   "Convert vendor labware definition files into labware descriptors",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			if err := setupLogging(viper.GetString("log_level"), viper.GetString("log_dir")); err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(log.Logger.WithContext(ctx))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.LogDir, "log-dir", "", "Directory for a JSON log file")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_dir", cmd.PersistentFlags().Lookup("log-dir"))

	cmd.AddCommand(newClassifyCommand())
	cmd.AddCommand(newImportCommand())
	cmd.AddCommand(newCatalogCommand())
	cmd.AddCommand(newVolumeCommand())
	cmd.AddCommand(newInspectCommand())
	cmd.AddCommand(newCorrectionsCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("labware-import")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/labware-import")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

// setupLogging writes human readable logs to stdout and, when logDir is set,
// JSON logs to a file in logDir.
func setupLogging(level string, logDir string) error {
	var writer io.Writer = zerolog.ConsoleWriter{Out: os.Stdout}
	if dir := strings.TrimSpace(logDir); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create log directory").
				WithCause(err)
		}
		file, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to open log file").
				WithCause(err)
		}
		writer = zerolog.MultiLevelWriter(writer, file)
	}
	log.Logger = log.Output(writer)
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return nil
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	message := errorMessage(err)
	switch code {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists, errbuilder.CodeOutOfRange:
		return 2
	case errbuilder.CodeFailedPrecondition, errbuilder.CodeUnimplemented:
		return 3
	case errbuilder.CodeNotFound:
		if strings.HasPrefix(message, "key not found") {
			return 4
		}
		return 5
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

// Package cli is the minbench command line front-end.
package cli

import (
	"fmt"
	"os"

	"github.com/dlshle/minbench/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	appVersion = "dev"
	appCommit  = "none"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	logger  logging.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{v: newViper()}
	rootCmd := &cobra.Command{
		Use:           "minbench",
		Short:         "minbench: time an operation and keep the fastest run",
		Version:       fmt.Sprintf("%s (commit: %s)", appVersion, appCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "trace, debug, info, warn, error or fatal")
	rootCmd.PersistentFlags().String("log-format", "text", "text or json")

	rootCmd.AddCommand(a.newRunCmd(), a.newEstimateCmd(), a.newWorkloadsCmd())
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if err := bindFlags(a.v, cmd.Flags(), map[string]string{
		"log_level":  "log-level",
		"log_format": "log-format",
	}); err != nil {
		return err
	}

	waterMark, err := logging.ParseLevel(a.v.GetString("log_level"))
	if err != nil {
		return err
	}
	var writer logging.LogWriter
	switch format := a.v.GetString("log_format"); format {
	case "text":
		writer = logging.NewConsoleLogWriter(cmd.OutOrStdout())
	case "json":
		writer = logging.NewlineSeparatedJSONWriter(cmd.OutOrStdout())
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	a.logger = logging.CreateLevelLogger(writer, "[minbench]", waterMark)
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

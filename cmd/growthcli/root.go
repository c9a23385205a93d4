package growthcli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uyouii/growth-percentiles/config"
	"github.com/uyouii/growth-percentiles/utils"
)

// cfg is loaded before any subcommand runs.
var cfg *config.Config

// NewRootCmd builds the growthcli command tree.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "growthcli",
		Short: "Evaluate infant growth against WHO percentile curves",
		Long: `growthcli interpolates the WHO 0-24 month reference curves (3rd, 15th, 50th,
85th and 97th percentiles) and classifies height, weight and head
circumference measurements into growth bands.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if _, err := utils.InitLogger(loaded.Log.Level, loaded.Log.Format); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			cfg = loaded
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "json", "log format: json or console")
	viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	viper.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	rootCmd.AddCommand(
		newClassifyCmd(),
		newCurvesCmd(),
		newReportCmd(),
		newValidateCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rigworks/truckdef/pkg/core/config"
	"github.com/rigworks/truckdef/pkg/core/log"
	"github.com/rigworks/truckdef/pkg/rig/parser"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "truckdef",
	Short: "truckdef - rig definition file tool",
	Long: `truckdef reads rig definition files (trucks, trailers, aircraft,
boats and loads) and reports on their structure.

Commands:
  parse    - parse a file and dump the document
  lint     - parse a file and list all diagnostics
  version  - show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "truckdef.toml", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads the configuration and derives the logger from it. The
// --verbose flag overrides the configured level.
func loadConfig() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	format, err := log.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	if verbose {
		level = log.LevelDebug
	}

	logger := log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	})
	return cfg, logger, nil
}

// newResourceChecker builds the texture lookup from the configured roots.
// Without roots the existence checks stay disabled.
func newResourceChecker(cfg *config.Config) parser.ResourceChecker {
	if len(cfg.Resources.Roots) == 0 {
		return nil
	}
	return &parser.DirChecker{Roots: cfg.Resources.Roots}
}

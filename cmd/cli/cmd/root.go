// Package cmd provides the CLI commands for shadowcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shadowcost/internal/config"
	"shadowcost/internal/logging"
)

// Version is set at build time
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shadowcost",
	Short: "Generate building geometry and compute its shadow price",
	Long: `shadowcost generates the structural geometry of a simple building
(floor slabs, a column grid, a central core) from a handful of parameters
and prices it in MKI for the chosen construction system.

Examples:
  shadowcost estimate
  shadowcost estimate --floors 6 --material "Steel Composite"
  shadowcost estimate --params building.hcl --format json
  shadowcost compare --width 30 --length 40`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, TOML or JSON (default is ./shadowcost.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(materialsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
	}

	path := cfgFile
	if path == "" {
		path = "shadowcost.toml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "shadowcost version %s\n", Version)
	},
}

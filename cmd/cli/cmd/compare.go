package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shadowcost/core/engine"
	"shadowcost/internal/config"
	"shadowcost/internal/logging"
)

var compareFlags buildingFlags

// compareCmd prices one building under every construction system
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the shadow price across all construction systems",
	Long: `Evaluate the same building dimensions under every construction system
and list the results side by side.

Examples:
  shadowcost compare
  shadowcost compare --floors 8 --format json`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	compareFlags.register(compareCmd.Flags(), false)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	params, err := compareFlags.resolve(cmd.Flags(), cfg)
	if err != nil {
		return err
	}
	f, err := compareFlags.formatter(cfg)
	if err != nil {
		return err
	}

	results, err := engine.New(logging.Logger, Version).Compare(context.Background(), params)
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}
	return f.RenderComparison(cmd.OutOrStdout(), results)
}

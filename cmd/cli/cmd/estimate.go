// Package cmd - estimate command
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"shadowcost/adapters/hcl"
	"shadowcost/core/engine"
	"shadowcost/core/output"
	"shadowcost/core/types"
	"shadowcost/internal/config"
	"shadowcost/internal/logging"
)

// buildingFlags are shared by estimate and compare
type buildingFlags struct {
	width       float64
	length      float64
	floorHeight float64
	floors      int
	material    string
	params      string
	format      string
	details     bool
}

func (f *buildingFlags) register(fs *pflag.FlagSet, withMaterial bool) {
	d := types.DefaultParameters()
	fs.Float64Var(&f.width, "width", d.Width, "building width in meters")
	fs.Float64Var(&f.length, "length", d.Length, "building length in meters")
	fs.Float64Var(&f.floorHeight, "floor-height", d.FloorHeight, "floor-to-floor height in meters")
	fs.IntVar(&f.floors, "floors", d.Floors, "number of floors")
	if withMaterial {
		fs.StringVarP(&f.material, "material", "m", d.Material, "construction system (see 'shadowcost materials')")
	}
	fs.StringVarP(&f.params, "params", "p", "", "HCL parameter file with a building block")
	fs.StringVarP(&f.format, "format", "f", "", "output format (cli, json, yaml, geometry)")
	fs.BoolVarP(&f.details, "details", "d", false, "show priced quantities")
}

// resolve layers the configured building, the parameter file and any
// flags set explicitly, in that order.
func (f *buildingFlags) resolve(fs *pflag.FlagSet, cfg *config.Config) (types.BuildingParameters, error) {
	p := cfg.Building
	if f.params != "" {
		var err error
		if p, err = hcl.ParseFileOver(f.params, p); err != nil {
			return p, err
		}
	}
	if fs.Changed("width") {
		p.Width = f.width
	}
	if fs.Changed("length") {
		p.Length = f.length
	}
	if fs.Changed("floor-height") {
		p.FloorHeight = f.floorHeight
	}
	if fs.Changed("floors") {
		p.Floors = f.floors
	}
	if fs.Lookup("material") != nil && fs.Changed("material") {
		p.Material = f.material
	}
	return p, nil
}

func (f *buildingFlags) formatter(cfg *config.Config) (output.Formatter, error) {
	format := f.format
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	opts := cfg.Output.Options
	if f.details {
		opts.ShowDetails = true
	}
	return output.New(format, opts)
}

var estimateFlags buildingFlags

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Generate a building and compute its shadow price",
	Long: `Generate the structural geometry for the given parameters and price it.

Parameters come from the config file, then the --params file, then flags.

Examples:
  shadowcost estimate
  shadowcost estimate --width 24 --length 36 --floors 5
  shadowcost estimate --material "Cross-Laminated-Timber" --format yaml
  shadowcost estimate --params building.hcl --format geometry`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func init() {
	estimateFlags.register(estimateCmd.Flags(), true)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	params, err := estimateFlags.resolve(cmd.Flags(), cfg)
	if err != nil {
		return err
	}
	f, err := estimateFlags.formatter(cfg)
	if err != nil {
		return err
	}

	logging.Debug("estimating",
		zap.Float64("width", params.Width),
		zap.Float64("length", params.Length),
		zap.Float64("floor_height", params.FloorHeight),
		zap.Int("floors", params.Floors),
		zap.String("material", params.Material),
	)

	result, err := engine.New(logging.Logger, Version).Evaluate(context.Background(), params)
	if err != nil {
		return fmt.Errorf("estimate failed: %w", err)
	}
	return f.Render(cmd.OutOrStdout(), result)
}

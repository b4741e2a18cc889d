// Package output provides output formatting.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"shadowcost/core/engine"
	"shadowcost/core/geometry"
	"shadowcost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"

	// FormatGeometry is the element set as JSON, for a 3D viewer
	FormatGeometry Format = "geometry"
)

// Formats lists every supported format
func Formats() []Format {
	return []Format{FormatCLI, FormatJSON, FormatYAML, FormatGeometry}
}

// Options control presentation
type Options struct {
	// CurrencySymbol prefixes monetary values
	CurrencySymbol string `json:"currency_symbol" toml:"currency_symbol"`

	// Decimals is the number of decimals shown for money
	Decimals int `json:"decimals" toml:"decimals"`

	// ShowDetails adds per-material quantities to the CLI report
	ShowDetails bool `json:"show_details" toml:"show_details"`
}

// DefaultOptions renders whole euros
func DefaultOptions() Options {
	return Options{CurrencySymbol: "€", Decimals: 0, ShowDetails: false}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for one evaluation
	Render(w io.Writer, result *engine.Result) error

	// RenderComparison produces output for one evaluation per system
	RenderComparison(w io.Writer, results []*engine.Result) error
}

// New returns the formatter for a format name
func New(format string, opts Options) (Formatter, error) {
	switch Format(format) {
	case FormatCLI, "":
		return &cliFormatter{opts: opts}, nil
	case FormatJSON:
		return jsonFormatter{}, nil
	case FormatYAML:
		return yamlFormatter{}, nil
	case FormatGeometry:
		return geometryFormatter{}, nil
	default:
		return nil, errors.NotSupported("output format " + format).WithContext("format", format)
	}
}

type jsonFormatter struct{}

func (jsonFormatter) Format() Format { return FormatJSON }

func (jsonFormatter) Render(w io.Writer, result *engine.Result) error {
	return writeJSON(w, result)
}

func (jsonFormatter) RenderComparison(w io.Writer, results []*engine.Result) error {
	return writeJSON(w, results)
}

type yamlFormatter struct{}

func (yamlFormatter) Format() Format { return FormatYAML }

func (yamlFormatter) Render(w io.Writer, result *engine.Result) error {
	return writeYAML(w, result)
}

func (yamlFormatter) RenderComparison(w io.Writer, results []*engine.Result) error {
	return writeYAML(w, results)
}

// geometryFormatter emits only what a viewer draws: the ground surface
// first, then core, slabs and columns.
type geometryFormatter struct{}

type scene struct {
	Ground  geometry.Polygon     `json:"ground"`
	Core    geometry.Extrusion   `json:"core"`
	Slabs   []geometry.Extrusion `json:"slabs"`
	Columns []geometry.Extrusion `json:"columns"`
}

func (geometryFormatter) Format() Format { return FormatGeometry }

func (geometryFormatter) Render(w io.Writer, result *engine.Result) error {
	return writeJSON(w, sceneOf(result.Building))
}

func (geometryFormatter) RenderComparison(w io.Writer, results []*engine.Result) error {
	scenes := make([]scene, len(results))
	for i, r := range results {
		scenes[i] = sceneOf(r.Building)
	}
	return writeJSON(w, scenes)
}

func sceneOf(b *geometry.Building) scene {
	return scene{Ground: b.Ground, Core: b.Core, Slabs: b.Slabs, Columns: b.Columns}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

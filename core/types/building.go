// Package types - Building input parameters
package types

import (
	"math"

	"shadowcost/internal/errors"
)

// BuildingParameters are the user inputs for one building
type BuildingParameters struct {
	// Width of the footprint in m
	Width float64 `json:"width" yaml:"width" toml:"width" hcl:"width,optional"`

	// Length of the footprint in m
	Length float64 `json:"length" yaml:"length" toml:"length" hcl:"length,optional"`

	// FloorHeight is the storey height in m
	FloorHeight float64 `json:"floor_height" yaml:"floor_height" toml:"floor_height" hcl:"floor_height,optional"`

	// Floors is the number of storeys
	Floors int `json:"floors" yaml:"floors" toml:"floors" hcl:"floors,optional"`

	// Material is the construction system selector
	Material string `json:"material" yaml:"material" toml:"material" hcl:"material,optional"`
}

// Range is a closed interval
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies in the interval
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Limits are the accepted input ranges
var Limits = struct {
	Width       Range
	Length      Range
	FloorHeight Range
	Floors      Range
}{
	Width:       Range{10, 30},
	Length:      Range{20, 40},
	FloorHeight: Range{2.5, 4.0},
	Floors:      Range{1, 10},
}

// DefaultParameters returns the parameters a fresh building starts with
func DefaultParameters() BuildingParameters {
	return BuildingParameters{
		Width:       20,
		Length:      30,
		FloorHeight: 3,
		Floors:      3,
		Material:    "Prefab Concrete",
	}
}

// Validate checks the numeric inputs. The material selector is checked by
// the catalog when it is resolved.
func (p BuildingParameters) Validate() error {
	dims := []struct {
		field string
		value float64
		limit Range
	}{
		{"width", p.Width, Limits.Width},
		{"length", p.Length, Limits.Length},
		{"floor_height", p.FloorHeight, Limits.FloorHeight},
	}

	for _, d := range dims {
		if math.IsNaN(d.value) || math.IsInf(d.value, 0) || d.value <= 0 {
			return errors.InvalidInputf("%s must be a positive number", d.field).
				WithContext("field", d.field).
				WithContext("value", d.value)
		}
		if !d.limit.Contains(d.value) {
			return errors.InvalidInputf("%s must be between %g and %g m", d.field, d.limit.Min, d.limit.Max).
				WithContext("field", d.field).
				WithContext("value", d.value)
		}
	}

	if p.Floors < 1 {
		return errors.InvalidInput("floors must be at least 1").
			WithContext("field", "floors").
			WithContext("value", p.Floors)
	}
	if !Limits.Floors.Contains(float64(p.Floors)) {
		return errors.InvalidInputf("floors must be between %g and %g", Limits.Floors.Min, Limits.Floors.Max).
			WithContext("field", "floors").
			WithContext("value", p.Floors)
	}

	return nil
}

// TotalHeight is the top of the uppermost floor
func (p BuildingParameters) TotalHeight() float64 {
	return float64(p.Floors) * p.FloorHeight
}

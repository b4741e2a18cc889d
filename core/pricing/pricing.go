// Package pricing aggregates shadow prices (MKI) over generated geometry.
package pricing

import (
	"github.com/shopspring/decimal"

	"shadowcost/core/catalog"
	"shadowcost/core/geometry"
	"shadowcost/core/pricing/primitives"
	"shadowcost/internal/errors"
)

// Result labels, in presentation order.
const (
	LabelTotal   = "Shadow Price (MKI)"
	LabelPerM2   = "Shadow Price per m2"
	LabelSlabs   = "Shadow Price Slabs"
	LabelColumns = "Shadow Price Columns"
	LabelCore    = "Shadow Price Core"
)

// Breakdown is the shadow price of one building
type Breakdown struct {
	// Total is Slabs + Columns + Core
	Total decimal.Decimal `json:"total" yaml:"total"`

	// PerM2 is Total divided by SlabArea
	PerM2 decimal.Decimal `json:"per_m2" yaml:"per_m2"`

	Slabs   decimal.Decimal `json:"slabs" yaml:"slabs"`
	Columns decimal.Decimal `json:"columns" yaml:"columns"`
	Core    decimal.Decimal `json:"core" yaml:"core"`

	// SlabArea is the summed plan area of all slabs in m2
	SlabArea decimal.Decimal `json:"slab_area" yaml:"slab_area"`

	// Units are the priced quantities per category and material
	Units []primitives.CostUnit `json:"units" yaml:"units"`
}

// Entry is a labelled value
type Entry struct {
	Label string          `json:"label" yaml:"label"`
	Value decimal.Decimal `json:"value" yaml:"value"`
}

// Categories returns the five reported values in presentation order
func (b *Breakdown) Categories() []Entry {
	return []Entry{
		{LabelTotal, b.Total},
		{LabelPerM2, b.PerM2},
		{LabelSlabs, b.Slabs},
		{LabelColumns, b.Columns},
		{LabelCore, b.Core},
	}
}

// Map returns the reported values keyed by label
func (b *Breakdown) Map() map[string]float64 {
	m := make(map[string]float64, 5)
	for _, e := range b.Categories() {
		m[e.Label] = e.Value.InexactFloat64()
	}
	return m
}

// Compute prices the slabs, columns and core of a building
func Compute(slabs, columns []geometry.Extrusion, core geometry.Extrusion) (*Breakdown, error) {
	units := make([]primitives.CostUnit, 0, len(slabs)+len(columns)+1)
	for _, s := range slabs {
		units = append(units, primitives.SlabArea(s))
	}
	for _, c := range columns {
		units = append(units, primitives.ColumnLength(c))
	}
	units = append(units, primitives.CoreWallArea(core))

	b := &Breakdown{Units: primitives.Merge(units)}
	for i := range b.Units {
		u := &b.Units[i]
		rate, err := catalog.Rate(u.Category, u.Material)
		if err != nil {
			return nil, err
		}
		u.Rate = rate
		u.Amount = u.Quantity.Mul(rate)

		switch u.Category {
		case catalog.CategorySlab:
			b.Slabs = b.Slabs.Add(u.Amount)
			b.SlabArea = b.SlabArea.Add(u.Quantity)
		case catalog.CategoryColumn:
			b.Columns = b.Columns.Add(u.Amount)
		case catalog.CategoryCore:
			b.Core = b.Core.Add(u.Amount)
		}
	}

	if !b.SlabArea.IsPositive() {
		return nil, errors.InvalidInput("total slab area must be positive")
	}

	b.Total = b.Slabs.Add(b.Columns).Add(b.Core)
	b.PerM2 = b.Total.Div(b.SlabArea)
	return b, nil
}

// ComputeBuilding prices a generated building
func ComputeBuilding(b *geometry.Building) (*Breakdown, error) {
	return Compute(b.Slabs, b.Columns, b.Core)
}

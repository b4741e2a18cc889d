// Package primitives - Quantity take-off for structural elements.
// Primitives measure geometry; they never look up prices.
package primitives

import (
	"github.com/shopspring/decimal"

	"shadowcost/core/catalog"
	"shadowcost/core/geometry"
)

// CostUnit is a measured quantity of one material in one category.
// Rate and Amount are filled in by the pricing package.
type CostUnit struct {
	Category catalog.Category `json:"category" yaml:"category"`
	Material catalog.Material `json:"material" yaml:"material"`
	Measure  string           `json:"measure" yaml:"measure"`
	Quantity decimal.Decimal  `json:"quantity" yaml:"quantity"`
	Rate     decimal.Decimal  `json:"rate" yaml:"rate"`
	Amount   decimal.Decimal  `json:"amount" yaml:"amount"`
	Count    int              `json:"count" yaml:"count"`
}

// SlabArea measures a slab by its plan area.
func SlabArea(e geometry.Extrusion) CostUnit {
	return measure(catalog.CategorySlab, e, decimal.NewFromFloat(e.CrossSectionalArea()))
}

// ColumnLength measures a column by its length.
func ColumnLength(e geometry.Extrusion) CostUnit {
	return measure(catalog.CategoryColumn, e, decimal.NewFromFloat(e.Length()))
}

// CoreWallArea measures a core by the lateral surface of its prism,
// profile perimeter times height.
func CoreWallArea(e geometry.Extrusion) CostUnit {
	return measure(catalog.CategoryCore, e, decimal.NewFromFloat(e.Perimeter()).Mul(decimal.NewFromFloat(e.Length())))
}

func measure(c catalog.Category, e geometry.Extrusion, qty decimal.Decimal) CostUnit {
	return CostUnit{
		Category: c,
		Material: e.Material,
		Measure:  c.Measure(),
		Quantity: qty,
		Count:    1,
	}
}

// Merge adds the quantities of units sharing a category and material,
// keeping first-seen order.
func Merge(units []CostUnit) []CostUnit {
	type key struct {
		c catalog.Category
		m catalog.Material
	}
	index := make(map[key]int)
	var out []CostUnit
	for _, u := range units {
		k := key{u.Category, u.Material}
		if i, ok := index[k]; ok {
			out[i].Quantity = out[i].Quantity.Add(u.Quantity)
			out[i].Count += u.Count
			continue
		}
		index[k] = len(out)
		out = append(out, u)
	}
	return out
}

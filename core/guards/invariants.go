// Package guards - Post-evaluation invariant checks
// A violation means a bug in generation or pricing, never bad input.
package guards

import (
	"fmt"

	"github.com/shopspring/decimal"

	"shadowcost/core/geometry"
	"shadowcost/core/pricing"
	"shadowcost/core/types"
	"shadowcost/internal/errors"
)

// Check verifies a generated building and its prices against p
func Check(p types.BuildingParameters, b *geometry.Building, prices *pricing.Breakdown) error {
	if err := CheckBuilding(p, b); err != nil {
		return err
	}
	return CheckPrices(p, prices)
}

// CheckBuilding verifies element counts, materials and vertical placement
func CheckBuilding(p types.BuildingParameters, b *geometry.Building) error {
	if b == nil {
		return violated("building cannot be nil")
	}
	if got, want := len(b.Slabs), p.Floors+1; got != want {
		return violated(fmt.Sprintf("slab count %d, want %d", got, want))
	}
	if got, want := len(b.Columns), b.Grid.PerFloor()*p.Floors; got != want {
		return violated(fmt.Sprintf("column count %d, want %d", got, want))
	}

	for i, s := range b.Slabs {
		if s.Material != b.Assignment.Slab {
			return violated(fmt.Sprintf("slab %d is %s, want %s", i, s.Material, b.Assignment.Slab))
		}
	}
	for i, c := range b.Columns {
		if c.Material != b.Assignment.Column {
			return violated(fmt.Sprintf("column %d is %s, want %s", i, c.Material, b.Assignment.Column))
		}
		if c.Line.End.Z > p.TotalHeight() {
			return violated(fmt.Sprintf("column %d tops out at %g above the roof", i, c.Line.End.Z))
		}
	}
	if b.Core.Material != b.Assignment.Core {
		return violated(fmt.Sprintf("core is %s, want %s", b.Core.Material, b.Assignment.Core))
	}
	if b.Core.Line.End.Z != p.TotalHeight() {
		return violated(fmt.Sprintf("core tops out at %g, want %g", b.Core.Line.End.Z, p.TotalHeight()))
	}
	return nil
}

// CheckPrices verifies that subtotals add up and slab area matches the plan
func CheckPrices(p types.BuildingParameters, prices *pricing.Breakdown) error {
	if prices == nil {
		return violated("prices cannot be nil")
	}
	if sum := prices.Slabs.Add(prices.Columns).Add(prices.Core); !sum.Equal(prices.Total) {
		return violated(fmt.Sprintf("total %s is not the sum of subtotals %s", prices.Total, sum))
	}

	want := decimal.NewFromFloat(p.Width * p.Length).Mul(decimal.NewFromInt(int64(p.Floors + 1)))
	if !prices.SlabArea.Equal(want) {
		return violated(fmt.Sprintf("slab area %s, want %s", prices.SlabArea, want))
	}
	return nil
}

func violated(msg string) error {
	return errors.Internal("invariant violated: "+msg, nil)
}

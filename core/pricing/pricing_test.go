// Package pricing - Shadow price aggregation tests
package pricing

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"shadowcost/core/catalog"
	"shadowcost/core/geometry"
	"shadowcost/core/types"
	"shadowcost/internal/errors"
)

func nearlyEqual(t *testing.T, name string, got decimal.Decimal, want float64) {
	t.Helper()
	if math.Abs(got.InexactFloat64()-want) > 1e-6 {
		t.Fatalf("%s = %s, want %v", name, got, want)
	}
}

func price(t *testing.T, p types.BuildingParameters) *Breakdown {
	t.Helper()
	b, err := geometry.Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	prices, err := ComputeBuilding(b)
	if err != nil {
		t.Fatalf("ComputeBuilding() error = %v", err)
	}
	return prices
}

func TestReferenceBuilding(t *testing.T) {
	prices := price(t, types.DefaultParameters())

	nearlyEqual(t, "slab area", prices.SlabArea, 2400)
	nearlyEqual(t, "slabs", prices.Slabs, 4*600*12.8)
	nearlyEqual(t, "columns", prices.Columns, 60*2.7*17.1)
	nearlyEqual(t, "core", prices.Core, (2*6+2*8)*(3*3-0.3)*6.9)
	nearlyEqual(t, "total", prices.Total, 30720+2770.2+1680.84)
	nearlyEqual(t, "per m2", prices.PerM2, 35171.04/2400)
}

func TestTotalIsExactSumOfSubtotals(t *testing.T) {
	for _, s := range catalog.Systems() {
		for _, p := range []types.BuildingParameters{
			{Width: 10, Length: 20, FloorHeight: 2.5, Floors: 1},
			{Width: 23.7, Length: 31.3, FloorHeight: 3.3, Floors: 7},
			{Width: 30, Length: 40, FloorHeight: 4, Floors: 10},
		} {
			p.Material = s.String()
			prices := price(t, p)
			sum := prices.Slabs.Add(prices.Columns).Add(prices.Core)
			if !prices.Total.Equal(sum) {
				t.Errorf("%s %+v: total %s != %s", s, p, prices.Total, sum)
			}
		}
	}
}

func TestSlabAreaIsMaterialInvariant(t *testing.T) {
	base := types.DefaultParameters()
	want := decimal.NewFromFloat(base.Width * base.Length * float64(base.Floors+1))

	for _, s := range catalog.Systems() {
		p := base
		p.Material = s.String()
		prices := price(t, p)
		if !prices.SlabArea.Equal(want) {
			t.Errorf("%s: slab area = %s, want %s", s, prices.SlabArea, want)
		}

		a, _ := catalog.Assign(s)
		rate, _ := catalog.SlabRatePerM2(a.Slab)
		if !prices.Slabs.Equal(want.Mul(rate)) {
			t.Errorf("%s: slab price = %s, want %s", s, prices.Slabs, want.Mul(rate))
		}
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	p := types.DefaultParameters()
	p.Material = "Steel Composite"

	first := price(t, p)
	second := price(t, p)
	for i, e := range first.Categories() {
		if !e.Value.Equal(second.Categories()[i].Value) {
			t.Errorf("%s differs: %s vs %s", e.Label, e.Value, second.Categories()[i].Value)
		}
	}
}

func TestCategoriesOrderAndLabels(t *testing.T) {
	prices := price(t, types.DefaultParameters())
	want := []string{LabelTotal, LabelPerM2, LabelSlabs, LabelColumns, LabelCore}

	cats := prices.Categories()
	if len(cats) != len(want) {
		t.Fatalf("len = %d", len(cats))
	}
	for i, e := range cats {
		if e.Label != want[i] {
			t.Errorf("cats[%d] = %q, want %q", i, e.Label, want[i])
		}
	}
	if m := prices.Map(); len(m) != 5 || m[LabelSlabs] != 30720 {
		t.Errorf("Map() = %v", m)
	}
}

func TestUnitsPerCategory(t *testing.T) {
	p := types.DefaultParameters()
	p.Material = "CLT Composite"
	prices := price(t, p)

	if len(prices.Units) != 3 {
		t.Fatalf("units = %d, want 3", len(prices.Units))
	}
	col := prices.Units[1]
	if col.Category != catalog.CategoryColumn || col.Material != catalog.Timber {
		t.Errorf("column unit = %s/%s", col.Category, col.Material)
	}
	// 20x30 at span 5: 5 x 7 per floor
	if col.Count != 5*7*3 {
		t.Errorf("column count = %d, want 105", col.Count)
	}
	if !col.Amount.Equal(prices.Columns) {
		t.Errorf("column amount %s != subtotal %s", col.Amount, prices.Columns)
	}
}

func TestComputeRejectsEmptySlabs(t *testing.T) {
	core := geometry.Core(types.DefaultParameters(), catalog.Concrete)
	_, err := Compute(nil, nil, core)
	if !errors.IsType(err, errors.TypeInvalidInput) {
		t.Fatalf("error = %v, want INVALID_INPUT", err)
	}
}

func TestComputeRejectsUnpricedCore(t *testing.T) {
	p := types.DefaultParameters()
	slabs := geometry.Slabs(p, catalog.Steel)
	core := geometry.Core(p, catalog.Steel)

	_, err := Compute(slabs, nil, core)
	if !errors.IsType(err, errors.TypePricing) {
		t.Fatalf("error = %v, want PRICING_ERROR", err)
	}
}

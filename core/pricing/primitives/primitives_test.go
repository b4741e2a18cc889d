package primitives

import (
	"testing"

	"github.com/shopspring/decimal"

	"shadowcost/core/catalog"
	"shadowcost/core/geometry"
)

func column(z0, z1 float64, m catalog.Material) geometry.Extrusion {
	return geometry.Extrusion{
		Line:     geometry.Line{Start: geometry.Pt(0, 0, z0), End: geometry.Pt(0, 0, z1)},
		Width:    0.5,
		Height:   0.5,
		Material: m,
	}
}

func TestMeasures(t *testing.T) {
	slab := geometry.Extrusion{Width: 20, Height: 30, Material: catalog.Concrete,
		Line: geometry.Line{End: geometry.Pt(0, 0, 0.3)}}
	if u := SlabArea(slab); !u.Quantity.Equal(decimal.NewFromInt(600)) || u.Measure != "m2" {
		t.Errorf("SlabArea = %s %s", u.Quantity, u.Measure)
	}

	if u := ColumnLength(column(0, 4, catalog.Timber)); !u.Quantity.Equal(decimal.NewFromInt(4)) || u.Measure != "m" {
		t.Errorf("ColumnLength = %s %s", u.Quantity, u.Measure)
	}

	core := geometry.Extrusion{Width: 6, Height: 8, Material: catalog.Concrete,
		Line: geometry.Line{End: geometry.Pt(0, 0, 10)}}
	if u := CoreWallArea(core); !u.Quantity.Equal(decimal.NewFromInt(280)) {
		t.Errorf("CoreWallArea = %s, want 280", u.Quantity)
	}
}

func TestMergeGroupsByCategoryAndMaterial(t *testing.T) {
	units := []CostUnit{
		ColumnLength(column(0, 2, catalog.Timber)),
		ColumnLength(column(0, 3, catalog.Steel)),
		ColumnLength(column(0, 2, catalog.Timber)),
	}

	merged := Merge(units)
	if len(merged) != 2 {
		t.Fatalf("len(merged) = %d, want 2", len(merged))
	}
	if merged[0].Material != catalog.Timber || !merged[0].Quantity.Equal(decimal.NewFromInt(4)) || merged[0].Count != 2 {
		t.Errorf("timber = %+v", merged[0])
	}
	if merged[1].Material != catalog.Steel || merged[1].Count != 1 {
		t.Errorf("steel = %+v", merged[1])
	}
}

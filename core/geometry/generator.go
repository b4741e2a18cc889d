package geometry

import (
	"math"

	"shadowcost/core/catalog"
	"shadowcost/core/types"
)

// Fixed dimensions in m.
const (
	ColumnOffset  = 0.5
	SlabThickness = 0.3
	ColumnSize    = 0.5
	CoreWidth     = 6.0
	CoreLength    = 8.0
)

// Building is the generated element set.
type Building struct {
	Slabs      []Extrusion        `json:"slabs" yaml:"slabs"`
	Columns    []Extrusion        `json:"columns" yaml:"columns"`
	Core       Extrusion          `json:"core" yaml:"core"`
	Ground     Polygon            `json:"ground" yaml:"ground"`
	Assignment catalog.Assignment `json:"assignment" yaml:"assignment"`
	Grid       GridSize           `json:"grid" yaml:"grid"`
}

// GridSize is the column count along each axis.
type GridSize struct {
	AlongWidth  int `json:"along_width" yaml:"along_width"`
	AlongLength int `json:"along_length" yaml:"along_length"`
}

// PerFloor returns the number of columns on one floor.
func (g GridSize) PerFloor() int {
	return g.AlongWidth * g.AlongLength
}

// Generate validates p, resolves its material system and builds every
// structural element. Nothing is returned on error.
func Generate(p types.BuildingParameters) (*Building, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	a, err := catalog.Lookup(p.Material)
	if err != nil {
		return nil, err
	}

	xs := AxisPositions(p.Width, a.ColumnSpan)
	ys := AxisPositions(p.Length, a.ColumnSpan)

	return &Building{
		Slabs:      Slabs(p, a.Slab),
		Columns:    Columns(Grid(xs, ys), p.Floors, p.FloorHeight, a.Column),
		Core:       Core(p, a.Core),
		Ground:     GroundSurface(),
		Assignment: a,
		Grid:       GridSize{AlongWidth: len(xs), AlongLength: len(ys)},
	}, nil
}

// ColumnCount returns the number of column lines along an axis. Actual
// spacing follows from this count and may differ from span.
func ColumnCount(dimension, span float64) int {
	return int(math.RoundToEven(dimension/span + 1))
}

// AxisPositions returns evenly spaced column coordinates along one axis,
// inset by ColumnOffset from both edges of a footprint centered on 0.
func AxisPositions(dimension, span float64) []float64 {
	return linspace(-0.5*dimension+ColumnOffset, 0.5*dimension-ColumnOffset, ColumnCount(dimension, span))
}

// Grid returns every (x, y) combination, x-major.
func Grid(xs, ys []float64) [][2]float64 {
	grid := make([][2]float64, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			grid = append(grid, [2]float64{x, y})
		}
	}
	return grid
}

// Columns places one column on every grid point of every floor. A column
// runs from the top of its floor slab to the underside of the next.
func Columns(grid [][2]float64, floors int, floorHeight float64, m catalog.Material) []Extrusion {
	columns := make([]Extrusion, 0, floors*len(grid))
	for i := 0; i < floors; i++ {
		bottom := float64(i)*floorHeight + SlabThickness
		top := float64(i+1) * floorHeight
		for _, xy := range grid {
			columns = append(columns, Extrusion{
				Line: Line{
					Start: Pt(xy[0], xy[1], bottom),
					End:   Pt(xy[0], xy[1], top),
				},
				Width:    ColumnSize,
				Height:   ColumnSize,
				Material: m,
			})
		}
	}
	return columns
}

// Slabs returns floors+1 slabs, ground floor through roof, each covering
// the whole footprint.
func Slabs(p types.BuildingParameters, m catalog.Material) []Extrusion {
	slabs := make([]Extrusion, 0, p.Floors+1)
	for i := 0; i <= p.Floors; i++ {
		z := float64(i) * p.FloorHeight
		slabs = append(slabs, Extrusion{
			Line:     Line{Start: Pt(0, 0, z), End: Pt(0, 0, z+SlabThickness)},
			Width:    p.Width,
			Height:   p.Length,
			Material: m,
		})
	}
	return slabs
}

// Core returns the central shaft from the top of the ground slab to the
// top of the uppermost floor.
func Core(p types.BuildingParameters, m catalog.Material) Extrusion {
	return Extrusion{
		Line:     Line{Start: Pt(0, 0, SlabThickness), End: Pt(0, 0, p.TotalHeight())},
		Width:    CoreWidth,
		Height:   CoreLength,
		Material: m,
	}
}

// linspace returns n evenly spaced values from start to stop inclusive.
func linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

package geometry

import (
	"math"

	"shadowcost/core/catalog"
)

// Ground surface dimensions.
const (
	GroundRadius = 35.0
	GroundPoints = 100
)

// GroundSurface returns a circle of GroundRadius around the origin as a
// polygon of GroundPoints. It is decorative and never priced.
func GroundSurface() Polygon {
	points := make([]Point, GroundPoints)
	for k := range points {
		angle := float64(k) * 2 * math.Pi / GroundPoints
		points[k] = Pt(math.Sin(angle)*GroundRadius, math.Cos(angle)*GroundRadius, 0)
	}
	return Polygon{Points: points, Material: catalog.Ground}
}

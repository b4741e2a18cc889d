// Package geometry builds the structural element set of a building.
//
// All elements are plain values. A Building is produced fresh by Generate
// and is never modified afterwards.
package geometry

import (
	"math"

	"shadowcost/core/catalog"
)

// Point is a position in 3D space. Z is up.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Norm returns the Euclidean length of the vector.
func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Norm()
}

// Line is a straight segment.
type Line struct {
	Start Point `json:"start" yaml:"start"`
	End   Point `json:"end" yaml:"end"`
}

// Length returns the distance from Start to End.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Extrusion is a rectangular profile swept along a centerline.
type Extrusion struct {
	Line     Line             `json:"line" yaml:"line"`
	Width    float64          `json:"width" yaml:"width"`
	Height   float64          `json:"height" yaml:"height"`
	Material catalog.Material `json:"material" yaml:"material"`
}

// Length returns the centerline length.
func (e Extrusion) Length() float64 {
	return e.Line.Length()
}

// CrossSectionalArea returns width × height of the profile.
func (e Extrusion) CrossSectionalArea() float64 {
	return e.Width * e.Height
}

// Perimeter returns the perimeter of the profile.
func (e Extrusion) Perimeter() float64 {
	return 2*e.Width + 2*e.Height
}

// Polygon is a closed planar polygon. The closing edge is implicit.
type Polygon struct {
	Points   []Point          `json:"points" yaml:"points"`
	Material catalog.Material `json:"material" yaml:"material"`
}

// Area returns the enclosed area using the shoelace formula on X/Y.
func (p Polygon) Area() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.Points[i].X*p.Points[j].Y - p.Points[j].X*p.Points[i].Y
	}
	return math.Abs(sum) / 2
}

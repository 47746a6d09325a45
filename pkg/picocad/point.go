package picocad

import (
	"fmt"
	"strconv"
)

// Point2D is a point in texture space. u extends right, v extends down.
type Point2D struct {
	U, V float64
}

// Point3D is a point in mesh space.
type Point3D struct {
	X, Y, Z float64
}

// Axis selects the viewing direction for the flat projection used by the
// vector exports.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Add returns the componentwise sum of p and q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{p.U + q.U, p.V + q.V}
}

// Sub returns the componentwise difference of p and q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.U - q.U, p.V - q.V}
}

// Map applies f to each component and returns the result.
func (p Point2D) Map(f func(float64) float64) Point2D {
	return Point2D{f(p.U), f(p.V)}
}

// String renders the point the way it appears inside table literals.
func (p Point2D) String() string {
	return formatNum(p.U) + "," + formatNum(p.V)
}

// Add returns the componentwise sum of p and q.
func (p Point3D) Add(q Point3D) Point3D {
	return Point3D{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns the componentwise difference of p and q.
func (p Point3D) Sub(q Point3D) Point3D {
	return Point3D{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Map applies f to each component and returns the result.
func (p Point3D) Map(f func(float64) float64) Point3D {
	return Point3D{f(p.X), f(p.Y), f(p.Z)}
}

// Project flattens the point onto the plane seen from the given axis,
// scaled and offset into canvas coordinates.
func (p Point3D) Project(axis Axis, scale float64, offset Point2D) Point2D {
	switch axis {
	case AxisX:
		return Point2D{p.Z*scale + offset.U, p.Y*scale + offset.V}
	case AxisY:
		return Point2D{p.Z*scale + offset.U, p.X*scale + offset.V}
	default:
		return Point2D{p.X*-scale + offset.U, p.Y*scale + offset.V}
	}
}

// String renders the point the way it appears inside table literals.
func (p Point3D) String() string {
	return formatNum(p.X) + "," + formatNum(p.Y) + "," + formatNum(p.Z)
}

// decodePoint3D reads a {x,y,z} table value.
func decodePoint3D(t *Table) (Point3D, error) {
	if len(t.Seq) != 3 {
		return Point3D{}, &TableLengthError{Got: len(t.Seq), Want: 3}
	}
	coords := [3]float64{}
	for i, v := range t.Seq {
		if v.Kind != KindNumber {
			return Point3D{}, fmt.Errorf("table element %d is not a number", i+1)
		}
		coords[i] = v.Number
	}
	return Point3D{coords[0], coords[1], coords[2]}, nil
}

// formatNum renders a coordinate without a trailing zero fraction, matching
// what picoCAD itself writes (0, -0.5, 16.25).
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

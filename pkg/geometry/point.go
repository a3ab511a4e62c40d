// Package geometry provides the 3D primitives the layout engine is built on:
// points and cubic Bezier curves with de Casteljau subdivision.
package geometry

import "math"

// Point represents a 3D point (or direction vector) with float64 coordinates.
type Point struct {
	X, Y, Z float64
}

// Pt creates a Point from x, y, z coordinates.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Lerp performs linear interpolation between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// Dot returns the dot product of two points treated as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Length returns the Euclidean length of the point treated as a vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Normalize returns the unit-length vector in the direction of p.
// The zero vector normalizes to the zero vector.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l, Z: p.Z / l}
}

// Perp returns the XY-plane perpendicular of p, rotated 90 degrees
// counterclockwise. The Z component is carried through unchanged.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X, Z: p.Z}
}

package geometry

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// curveFromCoords builds a curve from twelve generated coordinates
func curveFromCoords(coords []float64) CubicBezier {
	return NewCubicBezier(
		Pt(coords[0], coords[1], coords[2]),
		Pt(coords[3], coords[4], coords[5]),
		Pt(coords[6], coords[7], coords[8]),
		Pt(coords[9], coords[10], coords[11]),
	)
}

// TestBezierInvariants uses property-based testing to verify curve invariants
// These properties should ALWAYS hold for any cubic Bezier curve
func TestBezierInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	coordsGen := gen.SliceOfN(12, gen.Float64Range(-50, 50))

	// Property 1: subdivision preserves the outer anchors
	properties.Property("subdivision preserves outer anchors", prop.ForAll(
		func(coords []float64, split float64) bool {
			c := curveFromCoords(coords)
			left, right := c.SubdivideAt(split)
			return left.P0 == c.P0 && right.P3 == c.P3
		},
		coordsGen,
		gen.Float64Range(0.05, 0.95),
	))

	// Property 2: the halves share a junction that lies on the curve
	properties.Property("subdivision junction lies on the curve", prop.ForAll(
		func(coords []float64, split float64) bool {
			c := curveFromCoords(coords)
			left, right := c.SubdivideAt(split)
			if left.P3 != right.P0 {
				return false
			}
			return approxEqual(left.P3, c.Eval(split), 1e-9)
		},
		coordsGen,
		gen.Float64Range(0.05, 0.95),
	))

	// Property 3: the concatenated halves reproduce the original path
	properties.Property("subdivision reproduces the path", prop.ForAll(
		func(coords []float64, split float64) bool {
			c := curveFromCoords(coords)
			left, right := c.SubdivideAt(split)

			for u := 0.0; u <= 1.0; u += 0.25 {
				if !approxEqual(left.Eval(u), c.Eval(u*split), 1e-9) {
					return false
				}
				if !approxEqual(right.Eval(u), c.Eval(split+u*(1-split)), 1e-9) {
					return false
				}
			}
			return true
		},
		coordsGen,
		gen.Float64Range(0.05, 0.95),
	))

	// Property 4: normalizing a nonzero vector yields unit length
	properties.Property("normalized vectors have unit length", prop.ForAll(
		func(x, y, z float64) bool {
			v := Pt(x, y, z)
			if v.Length() == 0 {
				return v.Normalize() == Point{}
			}
			return math.Abs(v.Normalize().Length()-1) < 1e-9
		},
		gen.Float64Range(-100, 100),
		gen.Float64Range(-100, 100),
		gen.Float64Range(-100, 100),
	))

	properties.TestingRun(t)
}

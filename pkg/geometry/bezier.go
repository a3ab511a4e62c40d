package geometry

// CubicBezier represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 and P3 are the anchors the curve passes through; P1 and P2 are the handles
// that shape its curvature. The value is immutable: all operations return new
// curves.
type CubicBezier struct {
	P0, P1, P2, P3 Point
}

// NewCubicBezier creates a new cubic Bezier curve.
func NewCubicBezier(p0, p1, p2, p3 Point) CubicBezier {
	return CubicBezier{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1) in Bernstein form.
func (c CubicBezier) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
		Z: mt3*c.P0.Z + 3*mt2*t*c.P1.Z + 3*mt*t2*c.P2.Z + t3*c.P3.Z,
	}
}

// Start returns the starting anchor of the curve.
func (c CubicBezier) Start() Point {
	return c.P0
}

// End returns the ending anchor of the curve.
func (c CubicBezier) End() Point {
	return c.P3
}

// SubdivideAt splits the curve at parameter t using de Casteljau's algorithm.
// The two returned curves concatenate to reproduce the original path exactly:
// the first covers [0,t], the second [t,1], and they share the junction point
// Eval(t).
func (c CubicBezier) SubdivideAt(t float64) (CubicBezier, CubicBezier) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return CubicBezier{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBezier{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Subdivide splits the curve at t=0.5 into two halves.
func (c CubicBezier) Subdivide() (CubicBezier, CubicBezier) {
	return c.SubdivideAt(0.5)
}

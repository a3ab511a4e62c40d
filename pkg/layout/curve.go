package layout

import (
	"github.com/douglyuckling/movievis/pkg/geometry"
	"github.com/douglyuckling/movievis/pkg/model"
)

// ActorCurve ties one actor to the geometry drawn between two consecutive
// movies of their filmography. It starts life holding a single Bezier curve;
// overlap resolution may replace that with the curve's two halves, bowed away
// from the line between the movies. Callers only ever observe the value
// through accessors, so the geometry is immutable from the outside.
type ActorCurve struct {
	actor  *model.Person
	pair   MoviePair
	curves []geometry.CubicBezier
}

// Actor returns the actor this curve belongs to.
func (ac *ActorCurve) Actor() *model.Person {
	return ac.actor
}

// Pair returns the movie pair the curve connects.
func (ac *ActorCurve) Pair() MoviePair {
	return ac.pair
}

// Curves returns the curve geometry: one segment as built, or two halves
// after overlap resolution. The returned slice is a copy.
func (ac *ActorCurve) Curves() []geometry.CubicBezier {
	out := make([]geometry.CubicBezier, len(ac.curves))
	copy(out, ac.curves)
	return out
}

// Split reports whether overlap resolution has replaced the original curve
// with its two halves.
func (ac *ActorCurve) Split() bool {
	return len(ac.curves) == 2
}

// Start returns the first anchor of the curve.
func (ac *ActorCurve) Start() geometry.Point {
	return ac.curves[0].P0
}

// End returns the last anchor of the curve.
func (ac *ActorCurve) End() geometry.Point {
	return ac.curves[len(ac.curves)-1].P3
}

// splitAndShift subdivides the curve at its midpoint and moves the junction
// region (the inner handles and the junction itself) by the offset vector.
// The outer anchors stay on the movie positions. Must only run once, on an
// unsplit curve.
func (ac *ActorCurve) splitAndShift(offset geometry.Point) {
	left, right := ac.curves[0].Subdivide()

	left.P2 = left.P2.Add(offset)
	left.P3 = left.P3.Add(offset)
	right.P0 = right.P0.Add(offset)
	right.P1 = right.P1.Add(offset)

	ac.curves = []geometry.CubicBezier{left, right}
}

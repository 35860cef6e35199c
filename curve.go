package geom

import (
	"math"
	"slices"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Curve is a parametric curve segment over t in [0,1]. It is implemented by Line, Quad, Cube, Arc and SBasisCurve.
type Curve interface {
	// Initial returns the point at t=0.
	Initial() Point
	// Final returns the point at t=1.
	Final() Point
	// PointAt returns the point at t.
	PointAt(t float64) Point
	// Derivative returns the curve of first derivatives, ie. Derivative().PointAt(t) is the tangent at t.
	Derivative() Curve
	// BoundsFast returns a cheap bounding rectangle that may be loose, such as the bounds of the control points.
	BoundsFast() r2.Rect
	// BoundsExact returns the tight bounding rectangle.
	BoundsExact() r2.Rect
	// BoundsLocal returns a bounding rectangle of the curve restricted to the parameter interval i.
	BoundsLocal(i r1.Interval) r2.Rect
	// Portion returns the curve restricted to [f,t] reparametrised to [0,1]. When f > t the portion runs backwards.
	Portion(f, t float64) Curve
	// Roots returns the sorted parameters in [0,1] where the coordinate along dim equals v. Curves that are constant along dim have no roots.
	Roots(v float64, dim Dim) []float64
	// Reverse returns the curve with its direction reversed.
	Reverse() Curve

	isCurve()
}

// extrema returns the parameters in (0,1) where the derivative along dim vanishes.
func extrema(c Curve, dim Dim) []float64 {
	var ts []float64
	for _, t := range c.Derivative().Roots(0.0, dim) {
		if Epsilon < t && t < 1.0-Epsilon {
			ts = append(ts, t)
		}
	}
	return ts
}

// boundsExtrema returns the tight bounds of c from its end points and the points at its extrema.
func boundsExtrema(c Curve) r2.Rect {
	r := pointsRect(c.Initial(), c.Final())
	for _, dim := range []Dim{X, Y} {
		for _, t := range extrema(c, dim) {
			r = r.AddPoint(c.PointAt(t).r2())
		}
	}
	return r
}

// monotoneSplits returns the sorted parameters that split c into pieces that are monotonic along both X and Y, including 0 and 1.
func monotoneSplits(c Curve) []float64 {
	ts := []float64{0.0}
	ts = append(ts, extrema(c, X)...)
	ts = append(ts, extrema(c, Y)...)
	ts = append(ts, 1.0)
	slices.Sort(ts)
	return slices.CompactFunc(ts, func(a, b float64) bool {
		return math.Abs(a-b) < Epsilon
	})
}

// tangentAt returns the direction of c at t. Where the derivative vanishes, such as at a collapsed control point, the direction is taken from a nearby chord.
func tangentAt(c Curve, t float64) Point {
	d := c.Derivative().PointAt(t)
	if Epsilon < d.Length() {
		return d
	}
	const dt = 1e-6
	if t < 0.5 {
		return c.PointAt(t + dt).Sub(c.PointAt(t))
	}
	return c.PointAt(t).Sub(c.PointAt(t - dt))
}

// chordDistance returns the maximum distance of c over the interval i from the chord between its end points, sampled at the quarter points.
func chordDistance(c Curve, i r1.Interval) float64 {
	p0, p1 := c.PointAt(i.Lo), c.PointAt(i.Hi)
	chord := p1.Sub(p0)
	length := chord.Length()

	d := 0.0
	for _, u := range []float64{0.25, 0.5, 0.75} {
		q := c.PointAt(i.Lo + u*i.Length()).Sub(p0)
		var dist float64
		if length < Epsilon {
			dist = q.Length()
		} else {
			dist = math.Abs(chord.PerpDot(q)) / length
		}
		d = math.Max(d, dist)
	}
	return d
}

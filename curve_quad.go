package geom

import (
	"fmt"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Quad is a quadratic Bézier curve with start point P0, control point P1 and end point P2.
type Quad struct {
	P0, P1, P2 Point
}

func (Quad) isCurve() {}

func (q Quad) Initial() Point {
	return q.P0
}

func (q Quad) Final() Point {
	return q.P2
}

func (q Quad) PointAt(t float64) Point {
	p0 := q.P0.Mul((1.0 - t) * (1.0 - t))
	p1 := q.P1.Mul(2.0 * t * (1.0 - t))
	p2 := q.P2.Mul(t * t)
	return p0.Add(p1).Add(p2)
}

func (q Quad) Derivative() Curve {
	return Line{q.P1.Sub(q.P0).Mul(2.0), q.P2.Sub(q.P1).Mul(2.0)}
}

func (q Quad) BoundsFast() r2.Rect {
	return pointsRect(q.P0, q.P1, q.P2)
}

func (q Quad) BoundsExact() r2.Rect {
	return boundsExtrema(q)
}

func (q Quad) BoundsLocal(i r1.Interval) r2.Rect {
	return q.Portion(i.Lo, i.Hi).BoundsFast()
}

// blossom evaluates the polar form of the curve, blossom(t,t) equals PointAt(t).
func (q Quad) blossom(u, v float64) Point {
	a := q.P0.Interpolate(q.P1, u)
	b := q.P1.Interpolate(q.P2, u)
	return a.Interpolate(b, v)
}

func (q Quad) Portion(f, t float64) Curve {
	return Quad{q.PointAt(f), q.blossom(f, t), q.PointAt(t)}
}

func (q Quad) Roots(v float64, dim Dim) []float64 {
	p0, p1, p2 := q.P0.Coord(dim), q.P1.Coord(dim), q.P2.Coord(dim)
	return polynomialRoots(p0-v, 2.0*(p1-p0), p0-2.0*p1+p2, 0.0)
}

func (q Quad) Reverse() Curve {
	return Quad{q.P2, q.P1, q.P0}
}

func (q Quad) String() string {
	return fmt.Sprintf("Q%v%v%v", q.P0, q.P1, q.P2)
}

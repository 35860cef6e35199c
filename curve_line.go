package geom

import (
	"fmt"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Line is a straight line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

func (Line) isCurve() {}

func (l Line) Initial() Point {
	return l.P0
}

func (l Line) Final() Point {
	return l.P1
}

func (l Line) PointAt(t float64) Point {
	return l.P0.Interpolate(l.P1, t)
}

// Derivative returns a constant line.
func (l Line) Derivative() Curve {
	d := l.P1.Sub(l.P0)
	return Line{d, d}
}

func (l Line) BoundsFast() r2.Rect {
	return pointsRect(l.P0, l.P1)
}

func (l Line) BoundsExact() r2.Rect {
	return pointsRect(l.P0, l.P1)
}

func (l Line) BoundsLocal(i r1.Interval) r2.Rect {
	return pointsRect(l.PointAt(i.Lo), l.PointAt(i.Hi))
}

func (l Line) Portion(f, t float64) Curve {
	return Line{l.PointAt(f), l.PointAt(t)}
}

func (l Line) Roots(v float64, dim Dim) []float64 {
	a, b := l.P0.Coord(dim), l.P1.Coord(dim)
	return polynomialRoots(a-v, b-a, 0.0, 0.0)
}

func (l Line) Reverse() Curve {
	return Line{l.P1, l.P0}
}

func (l Line) String() string {
	return fmt.Sprintf("L%v%v", l.P0, l.P1)
}

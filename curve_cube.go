package geom

import (
	"fmt"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Cube is a cubic Bézier curve with start point P0, control points P1 and P2, and end point P3.
type Cube struct {
	P0, P1, P2, P3 Point
}

func (Cube) isCurve() {}

func (c Cube) Initial() Point {
	return c.P0
}

func (c Cube) Final() Point {
	return c.P3
}

func (c Cube) PointAt(t float64) Point {
	p0 := c.P0.Mul((1.0 - t) * (1.0 - t) * (1.0 - t))
	p1 := c.P1.Mul(3.0 * t * (1.0 - t) * (1.0 - t))
	p2 := c.P2.Mul(3.0 * t * t * (1.0 - t))
	p3 := c.P3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func (c Cube) Derivative() Curve {
	return Quad{c.P1.Sub(c.P0).Mul(3.0), c.P2.Sub(c.P1).Mul(3.0), c.P3.Sub(c.P2).Mul(3.0)}
}

func (c Cube) BoundsFast() r2.Rect {
	return pointsRect(c.P0, c.P1, c.P2, c.P3)
}

func (c Cube) BoundsExact() r2.Rect {
	return boundsExtrema(c)
}

func (c Cube) BoundsLocal(i r1.Interval) r2.Rect {
	return c.Portion(i.Lo, i.Hi).BoundsFast()
}

// blossom evaluates the polar form of the curve by running De Casteljau's algorithm with a different parameter at each level.
func (c Cube) blossom(u, v, w float64) Point {
	a := c.P0.Interpolate(c.P1, u)
	b := c.P1.Interpolate(c.P2, u)
	d := c.P2.Interpolate(c.P3, u)
	a = a.Interpolate(b, v)
	b = b.Interpolate(d, v)
	return a.Interpolate(b, w)
}

func (c Cube) Portion(f, t float64) Curve {
	return Cube{c.PointAt(f), c.blossom(f, f, t), c.blossom(f, t, t), c.PointAt(t)}
}

func (c Cube) Roots(v float64, dim Dim) []float64 {
	p0, p1, p2, p3 := c.P0.Coord(dim), c.P1.Coord(dim), c.P2.Coord(dim), c.P3.Coord(dim)
	return polynomialRoots(p0-v, 3.0*(p1-p0), 3.0*(p0-2.0*p1+p2), -p0+3.0*p1-3.0*p2+p3)
}

func (c Cube) Reverse() Curve {
	return Cube{c.P3, c.P2, c.P1, c.P0}
}

func (c Cube) String() string {
	return fmt.Sprintf("C%v%v%v%v", c.P0, c.P1, c.P2, c.P3)
}

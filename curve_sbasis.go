package geom

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// ErrOrder is returned for symmetric power basis polynomials of unsupported order.
var ErrOrder = errors.New("sbasis: order must be 1 or 2")

// Linear is a linear function on [0,1] given by its values at 0 and 1.
type Linear [2]float64

// SBasis is a polynomial in the symmetric power basis, sum_k ((1-t)*a_k + t*b_k) * s^k with s = t*(1-t).
type SBasis []Linear

// Eval returns the value of the polynomial at t.
func (sb SBasis) Eval(t float64) float64 {
	s := t * (1.0 - t)
	p0, p1, sk := 0.0, 0.0, 1.0
	for _, l := range sb {
		p0 += sk * l[0]
		p1 += sk * l[1]
		sk *= s
	}
	return (1.0-t)*p0 + t*p1
}

// Derivative returns the derivative polynomial, which has at most as many terms.
func (sb SBasis) Derivative() SBasis {
	c := make(SBasis, len(sb))
	for k := 0; k+1 < len(sb); k++ {
		d := float64(2*k+1) * (sb[k][1] - sb[k][0])
		c[k][0] = d + float64(k+1)*sb[k+1][0]
		c[k][1] = d - float64(k+1)*sb[k+1][1]
	}
	if k := len(sb) - 1; 0 <= k {
		d := float64(2*k+1) * (sb[k][1] - sb[k][0])
		if d == 0.0 && 0 < k {
			c = c[:k]
		} else {
			c[k] = Linear{d, d}
		}
	}
	return c
}

// cubic returns the Bernstein coefficients of the polynomial, which must have at most two terms.
func (sb SBasis) cubic() (float64, float64, float64, float64) {
	var a0, b0, a1, b1 float64
	if 0 < len(sb) {
		a0, b0 = sb[0][0], sb[0][1]
	}
	if 1 < len(sb) {
		a1, b1 = sb[1][0], sb[1][1]
	}
	p1 := (2.0*a0+b0)/3.0 + a1/3.0
	p2 := (a0+2.0*b0)/3.0 + b1/3.0
	return a0, p1, p2, b0
}

// SBasisCurve is a curve with a symmetric power basis polynomial per coordinate. Only polynomials up to cubic degree are supported, ie. at most two terms per coordinate, and they convert exactly to and from a Cube.
type SBasisCurve struct {
	X, Y SBasis
}

// NewSBasisCurve returns a curve of the given coordinate polynomials, or ErrOrder if either has no terms or more than two terms.
func NewSBasisCurve(x, y SBasis) (SBasisCurve, error) {
	if len(x) == 0 || 2 < len(x) || len(y) == 0 || 2 < len(y) {
		return SBasisCurve{}, fmt.Errorf("%w: got %d and %d terms", ErrOrder, len(x), len(y))
	}
	return SBasisCurve{x, y}, nil
}

// SBasisFromCube converts a cubic Bézier to the symmetric power basis.
func SBasisFromCube(c Cube) SBasisCurve {
	conv := func(p0, p1, p2, p3 float64) SBasis {
		return SBasis{
			{p0, p3},
			{3.0*p1 - 2.0*p0 - p3, 3.0*p2 - p0 - 2.0*p3},
		}
	}
	return SBasisCurve{
		X: conv(c.P0.X, c.P1.X, c.P2.X, c.P3.X),
		Y: conv(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y),
	}
}

// Cube converts the curve to a cubic Bézier.
func (c SBasisCurve) Cube() Cube {
	x0, x1, x2, x3 := c.X.cubic()
	y0, y1, y2, y3 := c.Y.cubic()
	return Cube{Point{x0, y0}, Point{x1, y1}, Point{x2, y2}, Point{x3, y3}}
}

func (SBasisCurve) isCurve() {}

func (c SBasisCurve) Initial() Point {
	return c.PointAt(0.0)
}

func (c SBasisCurve) Final() Point {
	return c.PointAt(1.0)
}

func (c SBasisCurve) PointAt(t float64) Point {
	return Point{c.X.Eval(t), c.Y.Eval(t)}
}

func (c SBasisCurve) Derivative() Curve {
	return SBasisCurve{c.X.Derivative(), c.Y.Derivative()}
}

func (c SBasisCurve) BoundsFast() r2.Rect {
	return c.Cube().BoundsFast()
}

func (c SBasisCurve) BoundsExact() r2.Rect {
	return c.Cube().BoundsExact()
}

func (c SBasisCurve) BoundsLocal(i r1.Interval) r2.Rect {
	return c.Cube().BoundsLocal(i)
}

func (c SBasisCurve) Portion(f, t float64) Curve {
	return SBasisFromCube(c.Cube().Portion(f, t).(Cube))
}

func (c SBasisCurve) Roots(v float64, dim Dim) []float64 {
	return c.Cube().Roots(v, dim)
}

func (c SBasisCurve) Reverse() Curve {
	rev := func(sb SBasis) SBasis {
		r := make(SBasis, len(sb))
		for i, l := range sb {
			r[i] = Linear{l[1], l[0]}
		}
		return r
	}
	return SBasisCurve{rev(c.X), rev(c.Y)}
}

func (c SBasisCurve) String() string {
	return fmt.Sprintf("S%v%v", c.X, c.Y)
}

package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestAngleNorm(t *testing.T) {
	test.Float(t, angleNorm(0.0), 0.0)
	test.Float(t, angleNorm(1.0*math.Pi), 1.0*math.Pi)
	test.Float(t, angleNorm(2.0*math.Pi), 0.0)
	test.Float(t, angleNorm(3.0*math.Pi), 1.0*math.Pi)
	test.Float(t, angleNorm(-1.0*math.Pi), 1.0*math.Pi)
	test.Float(t, angleNorm(-2.0*math.Pi), 0.0)
}

func TestPoint(t *testing.T) {
	p := Point{3, 4}
	test.T(t, p.Mul(2.0), Point{6, 8})
	test.T(t, p.Div(2.0), Point{1.5, 2})
	test.T(t, p.Rot90CW(), Point{4, -3})
	test.T(t, p.Rot90CCW(), Point{-4, 3})
	test.Float(t, p.Dot(Point{3, 0}), 9.0)
	test.Float(t, p.PerpDot(Point{3, 0}), -12.0)
	test.Float(t, p.PerpDot(Point{3, 0}), p.Rot90CCW().Dot(Point{3, 0}))
	test.Float(t, p.Length(), 5.0)
	test.Float(t, p.Angle(), math.Atan2(4.0, 3.0))
	test.T(t, p.Norm(5.0), p)
	test.T(t, p.Norm(0.0), Point{0.0, 0.0})
	test.T(t, Point{}.Norm(1.0), Point{0.0, 0.0})
	test.T(t, Point{}.Interpolate(p, 0.5), Point{1.5, 2.0})
	test.Float(t, p.Coord(X), 3.0)
	test.Float(t, p.Coord(Y), 4.0)
	test.That(t, p.Equals(Point{3 + 1e-12, 4 - 1e-12}))
	test.That(t, !p.Equals(Point{3 + 1e-9, 4}))
	test.String(t, p.String(), "(3,4)")
}

func TestPointsRect(t *testing.T) {
	r := pointsRect(Point{1, 5}, Point{-2, 3}, Point{4, 4})
	test.Float(t, r.X.Lo, -2.0)
	test.Float(t, r.X.Hi, 4.0)
	test.Float(t, r.Y.Lo, 3.0)
	test.Float(t, r.Y.Hi, 5.0)
	test.That(t, pointsRect().IsEmpty())
	test.String(t, rectString(r), "(-2,3)-(4,5)")
	test.T(t, unionRect(pointsRect(), r), r)
}

func TestSolveQuadraticFormula(t *testing.T) {
	x1, x2 := solveQuadraticFormula(0.0, 0.0, 0.0)
	test.Float(t, x1, 0.0)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(0.0, 0.0, 1.0)
	test.Float(t, x1, math.NaN())
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(0.0, 1.0, 1.0)
	test.Float(t, x1, -1.0)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 0.0)
	test.Float(t, x1, -1.0)
	test.Float(t, x2, 0.0)

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 1.0) // discriminant negative
	test.Float(t, x1, math.NaN())
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 0.25) // discriminant zero
	test.Float(t, x1, -0.5)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(2.0, -5.0, 2.0) // negative b, flip sign of q
	test.Float(t, x1, 0.5)
	test.Float(t, x2, 2.0)
}

func TestPolynomialRoots(t *testing.T) {
	var tts = []struct {
		c0, c1, c2, c3 float64
		roots          []float64
	}{
		{0.0, 0.0, 0.0, 0.0, nil},
		{1.0, 0.0, 0.0, 0.0, nil},
		{-0.5, 1.0, 0.0, 0.0, []float64{0.5}},
		{-2.0, 1.0, 0.0, 0.0, nil},
		{0.0, -1.0, 1.0, 0.0, []float64{0.0, 1.0}},
		{0.02, -0.3, 1.0, 0.0, []float64{0.1, 0.2}},
		{-0.006, 0.11, -0.6, 1.0, []float64{0.1, 0.2, 0.3}},
		{-0.125, 0.75, -1.5, 1.0, []float64{0.5}},       // (t-0.5)^3
		{-0.5, 1.0, 0.0, 1e-3, []float64{0.4998750624}}, // nearly linear
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			roots := polynomialRoots(tt.c0, tt.c1, tt.c2, tt.c3)
			test.T(t, len(roots), len(tt.roots), roots)
			for j := range roots {
				test.That(t, math.Abs(roots[j]-tt.roots[j]) < 1e-6, roots[j], tt.roots[j])
			}
		})
	}
}

func TestBisectionMethod(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	test.That(t, math.Abs(bisectionMethod(f, 0.25, 0.0, 1.0)-0.5) < 1e-12)
	test.Float(t, bisectionMethod(f, 1.0, 0.0, 1.0), 1.0)

	g := func(x float64) float64 { return -x }
	test.That(t, math.Abs(bisectionMethod(g, -0.75, 0.0, 1.0)-0.75) < 1e-12)
}

func TestGaussLegendre5(t *testing.T) {
	f := func(x float64) float64 { return x*x*x*x - 2.0*x + 1.0 }
	test.That(t, math.Abs(gaussLegendre5(f, 0.0, 2.0)-(32.0/5.0-4.0+2.0)) < 1e-9)
}

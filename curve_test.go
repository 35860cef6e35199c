package geom

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/tdewolff/test"
)

var testCube = Cube{Point{0.0, 0.0}, Point{0.0, 1.0}, Point{1.0, 1.0}, Point{1.0, 0.0}}
var testQuad = Quad{Point{0.0, 0.0}, Point{1.0, 2.0}, Point{2.0, 0.0}}
var testArc = NewArc(Point{1.0, 0.0}, 1.0, 1.0, 0.0, false, true, Point{-1.0, 0.0})

func testRect(t *testing.T, r r2.Rect, x0, y0, x1, y1 float64) {
	t.Helper()
	test.That(t, equal(r.X.Lo, x0) && equal(r.Y.Lo, y0) && equal(r.X.Hi, x1) && equal(r.Y.Hi, y1), rectString(r))
}

func testFloats(t *testing.T, got, want []float64) {
	t.Helper()
	test.T(t, len(got), len(want), got)
	for i := range got {
		test.That(t, math.Abs(got[i]-want[i]) < 1e-9, got, want)
	}
}

func TestCurvePointAt(t *testing.T) {
	var tts = []struct {
		c Curve
		t float64
		p Point
	}{
		{Line{Point{0.0, 0.0}, Point{2.0, 4.0}}, 0.25, Point{0.5, 1.0}},
		{testQuad, 0.5, Point{1.0, 1.0}},
		{testCube, 0.5, Point{0.5, 0.75}},
		{testCube, 0.0, Point{0.0, 0.0}},
		{testArc, 0.5, Point{0.0, 1.0}},
		{testArc, 1.0, Point{-1.0, 0.0}},
		{SBasisFromCube(testCube), 0.5, Point{0.5, 0.75}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, tt.c.PointAt(tt.t), tt.p)
		})
	}
}

func TestCurveDerivative(t *testing.T) {
	var tts = []struct {
		c Curve
		t float64
		d Point
	}{
		{Line{Point{0.0, 0.0}, Point{2.0, 4.0}}, 0.7, Point{2.0, 4.0}},
		{testQuad, 0.0, Point{2.0, 4.0}},
		{testQuad, 0.5, Point{2.0, 0.0}},
		{testCube, 0.0, Point{0.0, 3.0}},
		{testCube, 0.5, Point{1.5, 0.0}},
		{testArc, 0.0, Point{0.0, math.Pi}},
		{testArc, 0.5, Point{-math.Pi, 0.0}},
		{testArc.Reverse(), 0.5, Point{math.Pi, 0.0}},
		{SBasisFromCube(testCube), 0.0, Point{0.0, 3.0}},
		{SBasisFromCube(testCube), 0.5, Point{1.5, 0.0}},
		{SBasisFromCube(testCube), 1.0, Point{0.0, -3.0}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, tt.c.Derivative().PointAt(tt.t), tt.d)
		})
	}
}

func TestCurveBounds(t *testing.T) {
	testRect(t, testQuad.BoundsFast(), 0.0, 0.0, 2.0, 2.0)
	testRect(t, testQuad.BoundsExact(), 0.0, 0.0, 2.0, 1.0)
	testRect(t, testCube.BoundsFast(), 0.0, 0.0, 1.0, 1.0)
	testRect(t, testCube.BoundsExact(), 0.0, 0.0, 1.0, 0.75)
	testRect(t, testArc.BoundsExact(), -1.0, 0.0, 1.0, 1.0)
	testRect(t, testArc.BoundsLocal(r1.Interval{Lo: 0.0, Hi: 0.5}), 0.0, 0.0, 1.0, 1.0)
	testRect(t, Line{Point{3.0, 1.0}, Point{1.0, 2.0}}.BoundsExact(), 1.0, 1.0, 3.0, 2.0)
	testRect(t, SBasisFromCube(testCube).BoundsExact(), 0.0, 0.0, 1.0, 0.75)

	// local bounds contain the exact bounds of the portion
	local := testCube.BoundsLocal(r1.Interval{Lo: 0.25, Hi: 0.5})
	exact := testCube.Portion(0.25, 0.5).BoundsExact()
	test.That(t, local.Contains(exact))
}

func TestCurvePortion(t *testing.T) {
	var tts = []struct {
		c    Curve
		f, t float64
	}{
		{Line{Point{0.0, 0.0}, Point{2.0, 4.0}}, 0.25, 0.75},
		{testQuad, 0.2, 0.6},
		{testCube, 0.0, 0.5},
		{testCube, 0.3, 0.9},
		{testCube, 0.5, 0.0},
		{testArc, 0.25, 0.75},
		{testArc, 1.0, 0.5},
		{SBasisFromCube(testCube), 0.1, 0.4},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p := tt.c.Portion(tt.f, tt.t)
			test.T(t, p.Initial(), tt.c.PointAt(tt.f))
			test.T(t, p.Final(), tt.c.PointAt(tt.t))
			for _, u := range []float64{0.25, 0.5, 0.75} {
				test.T(t, p.PointAt(u), tt.c.PointAt(tt.f+u*(tt.t-tt.f)))
			}
		})
	}
}

func TestCurveRoots(t *testing.T) {
	var tts = []struct {
		c     Curve
		v     float64
		dim   Dim
		roots []float64
	}{
		{Line{Point{0.0, 0.0}, Point{2.0, 4.0}}, 1.0, X, []float64{0.5}},
		{Line{Point{0.0, 0.0}, Point{2.0, 4.0}}, 5.0, Y, nil},
		{Line{Point{0.0, 1.0}, Point{2.0, 1.0}}, 1.0, Y, nil}, // constant
		{testQuad, 0.5, Y, []float64{0.5 - math.Sqrt(0.5)/2.0, 0.5 + math.Sqrt(0.5)/2.0}},
		{testQuad, 1.0, Y, []float64{0.5}},
		{testQuad, 1.5, Y, nil},
		{testCube, 0.5, X, []float64{0.5}},
		{testCube, 0.5, Y, []float64{0.5 - math.Sqrt(1.0/3.0)/2.0, 0.5 + math.Sqrt(1.0/3.0)/2.0}},
		{testCube, 0.0, Y, []float64{0.0, 1.0}},
		{testArc, 0.5, Y, []float64{1.0 / 6.0, 5.0 / 6.0}},
		{testArc, 0.0, Y, []float64{0.0, 1.0}},
		{testArc, 0.5, X, []float64{1.0 / 3.0}},
		{testArc, 1.5, X, nil},
		{testArc.Reverse(), 0.5, X, []float64{2.0 / 3.0}},
		{SBasisFromCube(testCube), 0.5, X, []float64{0.5}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			testFloats(t, tt.c.Roots(tt.v, tt.dim), tt.roots)
		})
	}
}

func TestCurveReverse(t *testing.T) {
	for i, c := range []Curve{Line{Point{0.0, 0.0}, Point{2.0, 4.0}}, testQuad, testCube, testArc, SBasisFromCube(testCube)} {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			r := c.Reverse()
			test.T(t, r.Initial(), c.Final())
			test.T(t, r.Final(), c.Initial())
			test.T(t, r.PointAt(0.3), c.PointAt(0.7))
		})
	}
}

func TestMonotoneSplits(t *testing.T) {
	testFloats(t, monotoneSplits(testCube), []float64{0.0, 0.5, 1.0})
	testFloats(t, monotoneSplits(testQuad), []float64{0.0, 0.5, 1.0})
	testFloats(t, monotoneSplits(Line{Point{0.0, 0.0}, Point{1.0, 1.0}}), []float64{0.0, 1.0})

	// quarter circles
	circle := Arc{RX: 1.0, RY: 1.0, Theta0: 0.0, Theta1: 2.0 * math.Pi}
	testFloats(t, monotoneSplits(circle), []float64{0.0, 0.25, 0.5, 0.75, 1.0})
}

func TestTangentAt(t *testing.T) {
	// collapsed control point
	c := Cube{Point{0.0, 0.0}, Point{0.0, 0.0}, Point{1.0, 1.0}, Point{2.0, 1.0}}
	d := tangentAt(c, 0.0)
	test.That(t, 0.0 < d.Dot(Point{1.0, 1.0}) && math.Abs(d.Norm(1.0).PerpDot(Point{1.0, 1.0}.Norm(1.0))) < 1e-3, d)
	test.T(t, tangentAt(testCube, 0.5), Point{1.5, 0.0})
}

func TestNewArc(t *testing.T) {
	a, ok := testArc.(Arc)
	test.That(t, ok)
	test.T(t, a.Center, Point{0.0, 0.0})
	test.Float(t, a.Theta0, 0.0)
	test.Float(t, a.Theta1, math.Pi)

	// clockwise
	b := NewArc(Point{1.0, 0.0}, 1.0, 1.0, 0.0, false, false, Point{-1.0, 0.0})
	test.T(t, b.PointAt(0.5), Point{0.0, -1.0})

	// radii too small are scaled up
	c := NewArc(Point{2.0, 0.0}, 0.5, 0.5, 0.0, false, true, Point{-2.0, 0.0})
	test.T(t, c.PointAt(0.5), Point{0.0, 2.0})

	// rotated ellipse
	d := NewArc(Point{0.0, 0.0}, 2.0, 1.0, 90.0, false, true, Point{0.0, 4.0}).(Arc)
	test.T(t, d.Center, Point{0.0, 2.0})
	test.T(t, d.Initial(), Point{0.0, 0.0})
	test.T(t, d.Final(), Point{0.0, 4.0})

	// degenerate arcs become lines
	_, isLine := NewArc(Point{0.0, 0.0}, 0.0, 1.0, 0.0, false, true, Point{1.0, 0.0}).(Line)
	test.That(t, isLine)
}

func TestSBasis(t *testing.T) {
	sb := SBasis{{0.0, 0.0}, {4.0, 4.0}}
	test.Float(t, sb.Eval(0.5), 1.0)
	test.Float(t, sb.Eval(0.0), 0.0)
	test.T(t, SBasis{{1.0, 3.0}}.Derivative(), SBasis{{2.0, 2.0}})
	test.T(t, SBasis{{0.0, 0.0}, {4.0, 4.0}}.Derivative(), SBasis{{4.0, -4.0}})

	c := SBasisFromCube(testCube)
	cube := c.Cube()
	test.T(t, cube.P0, testCube.P0)
	test.T(t, cube.P1, testCube.P1)
	test.T(t, cube.P2, testCube.P2)
	test.T(t, cube.P3, testCube.P3)
	for _, u := range []float64{0.1, 0.5, 0.8} {
		test.T(t, c.PointAt(u), testCube.PointAt(u))
		test.T(t, c.Derivative().PointAt(u), testCube.Derivative().PointAt(u))
	}

	_, err := NewSBasisCurve(SBasis{{0, 1}, {0, 0}, {1, 1}}, SBasis{{0, 1}})
	test.That(t, errors.Is(err, ErrOrder))
	_, err = NewSBasisCurve(SBasis{}, SBasis{{0, 1}})
	test.That(t, errors.Is(err, ErrOrder))

	l, err := NewSBasisCurve(SBasis{{0, 2}}, SBasis{{1, 1}})
	test.Error(t, err)
	test.T(t, l.PointAt(0.5), Point{1.0, 1.0})
	test.T(t, l.Cube().PointAt(0.25), Point{0.5, 1.0})
}

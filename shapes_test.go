package geom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestShapes(t *testing.T) {
	test.T(t, Rectangle(0.0, 0.0, 0.0, 10.0).Empty(), true)
	test.String(t, Rectangle(1.0, 2.0, 5.0, 10.0).SVG(), "M1 2L6 2L6 12L1 12z")
	test.String(t, RoundedRectangle(0.0, 0.0, 5.0, 10.0, 0.0).SVG(), "M0 0L5 0L5 10L0 10z")
	test.String(t, RoundedRectangle(0.0, 0.0, 5.0, 10.0, 2.0).SVG(), "M0 2A2 2 0 0 1 2 0L3 0A2 2 0 0 1 5 2L5 8A2 2 0 0 1 3 10L2 10A2 2 0 0 1 0 8z")
	test.String(t, RoundedRectangle(0.0, 0.0, 5.0, 10.0, -2.0).SVG(), "M0 2A2 2 0 0 0 2 0L3 0A2 2 0 0 0 5 2L5 8A2 2 0 0 0 3 10L2 10A2 2 0 0 0 0 8z")
	test.T(t, Circle(0.0, 0.0, 0.0).Empty(), true)
	test.String(t, Circle(1.0, 1.0, 2.0).SVG(), "M3 1A2 2 0 0 1 -1 1A2 2 0 0 1 3 1z")
	test.String(t, Polygon(Point{0, 0}, Point{1, 0}, Point{1, 0}, Point{0, 1}).SVG(), "M0 0L1 0L0 1z")
	test.T(t, RegularPolygon(2, 0.0, 0.0, 2.0, true).Empty(), true)
	test.String(t, RegularPolygon(4, 0.0, 0.0, 2.0, true).SVG(), "M0 2L-2 0L0 -2L2 0z")
	test.T(t, StarPolygon(2, 0.0, 0.0, 4.0, 2.0, true).Empty(), true)
	test.T(t, StarPolygon(4, 0.0, 0.0, 4.0, 2.0, true).Size(), 8)

	test.FloatDiff(t, Rectangle(1.0, 2.0, 5.0, 10.0).Area(), 50.0, 1e-9)
	test.FloatDiff(t, Circle(1.0, 1.0, 2.0).Area(), 4.0*math.Pi, 1e-9)
	test.FloatDiff(t, Ellipse(0.0, 0.0, 3.0, 1.0).Area(), 3.0*math.Pi, 1e-9)
	test.FloatDiff(t, RoundedRectangle(0.0, 0.0, 5.0, 10.0, 2.0).Area(), 50.0-(4.0-math.Pi)*4.0, 1e-9)
	test.FloatDiff(t, RegularPolygon(4, 0.0, 0.0, 2.0, true).Area(), 8.0, 1e-9)
}

func TestGrid(t *testing.T) {
	test.T(t, len(Grid(0.0, 0.0, 1.0, 1.0, 2, 2, 1.0)), 0)

	s := Grid(0.0, 0.0, 7.0, 7.0, 2, 2, 1.0)
	test.T(t, len(s), 5)
	test.FloatDiff(t, s.Area(), 49.0-4.0*4.0, 1e-9)
	test.That(t, s.Contains(Point{0.5, 0.5}, NonZero))
	test.That(t, !s.Contains(Point{2.0, 2.0}, NonZero))
	test.That(t, s.Contains(Point{3.5, 2.0}, NonZero))
}

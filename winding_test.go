package geom

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathWinding(t *testing.T) {
	var tts = []struct {
		p  string
		pt Point
		n  int
	}{
		{"M0 0L4 0L4 4L0 4z", Point{2, 2}, 1},
		{"M0 0L4 0L4 4L0 4z", Point{5, 2}, 0},
		{"M0 0L4 0L4 4L0 4z", Point{-1, 2}, 0},
		{"M0 0L4 0L4 4L0 4z", Point{-1, 0}, 0},
		{"M0 0L4 0L4 4L0 4z", Point{-1, 4}, 0},
		{"M0 0L0 4L4 4L4 0z", Point{2, 2}, -1},
		{"M0 0L4 0L4 4", Point{3, 1}, 1},
		{"M0 0L4 0L4 4", Point{1, 3}, 0},

		// ray through a vertex
		{"M0 -2L2 0L0 2L-2 0z", Point{-1, 0}, 1},
		{"M0 -2L2 0L0 2L-2 0z", Point{-3, 0}, 0},
		{"M0 -2L2 0L0 2L-2 0z", Point{-3, 2}, 0},

		// curves and horizontal tangents
		{"M1 0A1 1 0 0 1 -1 0A1 1 0 0 1 1 0z", Point{0, 0.5}, 1},
		{"M1 0A1 1 0 0 1 -1 0A1 1 0 0 1 1 0z", Point{0.9, -0.3}, 1},
		{"M1 0A1 1 0 0 1 -1 0A1 1 0 0 1 1 0z", Point{-2, 1}, 0},
		{"M1 0A1 1 0 0 1 -1 0A1 1 0 0 1 1 0z", Point{-2, -1}, 0},
		{"M1 0A1 1 0 0 1 -1 0A1 1 0 0 1 1 0z", Point{0.8, 0.8}, 0},
		{"M0 0Q1 2 2 0z", Point{1, 0.5}, -1},
		{"M0 0Q1 2 2 0z", Point{-1, 1}, 0},
		{"M0 0C0 1 1 1 1 0z", Point{0.5, 0.5}, -1},
		{"M0 0C0 1 1 1 1 0z", Point{0.5, 0.8}, 0},
		{"M0 0C0 1 1 1 1 0z", Point{-1, 0.75}, 0},

		// figure eight
		{"M0 0L2 2L2 0L0 2z", Point{1.5, 1}, -1},
		{"M0 0L2 2L2 0L0 2z", Point{0.5, 1}, 1},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p := mustParsePath(tt.p)
			test.T(t, p.Winding(tt.pt), tt.n)
		})
	}
}

func TestShapeWinding(t *testing.T) {
	s := MustParseSVGShape("M0 0L0 10L10 10L10 0zM2 2L8 2L8 8L2 8z")
	test.T(t, s.Winding(Point{1, 1}), 1)
	test.T(t, s.Winding(Point{5, 5}), 0)
	test.T(t, s.Winding(Point{20, 5}), 0)
	test.That(t, s.Contains(Point{1, 1}, NonZero))
	test.That(t, !s.Contains(Point{5, 5}, NonZero))

	// wrongly oriented regions count according to their fill flag
	outer := mustParsePath("M0 0L0 10L10 10L10 0z")
	inner := mustParsePath("M2 2L2 8L8 8L8 2z")
	s = Shape{{outer, true}, {inner, false}}
	test.T(t, s.Winding(Point{1, 1}), 1)
	test.T(t, s.Winding(Point{5, 5}), 0)

	overlap := ShapeFromOrientation(MustParseSVGPath("M0 0L4 0L4 4L0 4zM2 2L6 2L6 6L2 6z"))
	test.T(t, overlap.Winding(Point{3, 3}), 2)
	test.That(t, overlap.Contains(Point{3, 3}, NonZero))
	test.That(t, !overlap.Contains(Point{3, 3}, EvenOdd))
	test.That(t, overlap.Contains(Point{1, 1}, EvenOdd))
}

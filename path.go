package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// ErrContinuity is matched by errors returned when a curve does not start where the path ends.
var ErrContinuity = errors.New("discontinuous path")

// ContinuityError is returned when appending a curve whose initial point differs from the final point of the path.
type ContinuityError struct {
	Final, Initial Point
}

func (err *ContinuityError) Error() string {
	return fmt.Sprintf("discontinuous path: path ends at %v but curve starts at %v", err.Final, err.Initial)
}

func (err *ContinuityError) Is(target error) bool {
	return target == ErrContinuity
}

// Path is a single continuous sequence of curves, where each curve starts at the end of the previous one. A closed path whose final point differs from its initial point has an implicit closing line segment.
type Path struct {
	start  Point
	moved  bool
	curves []Curve
	closed bool
}

// NewPath returns a path of the given curves. It returns a ContinuityError if any curve does not start where the previous one ends.
func NewPath(curves ...Curve) (*Path, error) {
	p := &Path{}
	for _, c := range curves {
		if err := p.Append(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Empty returns true if p has no curves.
func (p *Path) Empty() bool {
	return len(p.curves) == 0
}

// Closed returns true if p is closed.
func (p *Path) Closed() bool {
	return p.closed
}

// Initial returns the start point of the path.
func (p *Path) Initial() Point {
	return p.start
}

// Final returns the end point of the last curve, not taking into account the implicit closing segment.
func (p *Path) Final() Point {
	if 0 < len(p.curves) {
		return p.curves[len(p.curves)-1].Final()
	}
	return p.Initial()
}

// Append adds a curve to the end of the path. The curve must start at the path's final point within Epsilon, otherwise a ContinuityError is returned.
func (p *Path) Append(c Curve) error {
	if p.moved || 0 < len(p.curves) {
		if final := p.Final(); !final.Equals(c.Initial()) {
			return &ContinuityError{final, c.Initial()}
		}
	} else {
		p.start = c.Initial()
		p.moved = true
	}
	p.curves = append(p.curves, c)
	return nil
}

func (p *Path) mustAppend(c Curve) {
	if err := p.Append(c); err != nil {
		panic("bug: " + err.Error())
	}
}

// MoveTo starts the path at (x,y), discarding any previous curves.
func (p *Path) MoveTo(x, y float64) {
	p.start = Point{x, y}
	p.moved = true
	p.curves = p.curves[:0]
	p.closed = false
}

// LineTo adds a linear segment to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.mustAppend(Line{p.Final(), Point{x, y}})
}

// QuadTo adds a quadratic Bézier path with control point (cpx,cpy) and end point (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	p.mustAppend(Quad{p.Final(), Point{cpx, cpy}, Point{x, y}})
}

// CubeTo adds a cubic Bézier path with control points (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	p.mustAppend(Cube{p.Final(), Point{cpx1, cpy1}, Point{cpx2, cpy2}, Point{x, y}})
}

// ArcTo adds an arc with radii rx and ry, with rot the counter clockwise rotation with respect to the coordinate system in degrees, large and sweep booleans (see https://developer.mozilla.org/en-US/docs/Web/SVG/Tutorial/Paths#Arcs), and (x,y) the end position of the pen.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	start := p.Final()
	end := Point{x, y}
	if start.Equals(end) {
		return
	}
	p.mustAppend(NewArc(start, rx, ry, rot, large, sweep, end))
}

// Close closes the path.
func (p *Path) Close() {
	p.closed = true
}

// Curves returns the curves of the path, excluding the implicit closing segment.
func (p *Path) Curves() []Curve {
	return p.curves
}

// closing returns the implicit closing segment and whether there is one.
func (p *Path) closing() (Line, bool) {
	if !p.closed || len(p.curves) == 0 {
		return Line{}, false
	}
	final, initial := p.Final(), p.Initial()
	if final.Equals(initial) {
		return Line{}, false
	}
	return Line{final, initial}, true
}

// Segments returns the curves of the path including the implicit closing segment.
func (p *Path) Segments() []Curve {
	if l, ok := p.closing(); ok {
		segs := make([]Curve, len(p.curves), len(p.curves)+1)
		copy(segs, p.curves)
		return append(segs, l)
	}
	return p.curves
}

// Size returns the number of segments including the implicit closing segment. Path parameters range over [0,Size()].
func (p *Path) Size() int {
	if _, ok := p.closing(); ok {
		return len(p.curves) + 1
	}
	return len(p.curves)
}

// Segment returns the i-th segment.
func (p *Path) Segment(i int) Curve {
	if i == len(p.curves) {
		if l, ok := p.closing(); ok {
			return l
		}
	}
	return p.curves[i]
}

// split returns the segment index and local parameter of path parameter t.
func (p *Path) split(t float64) (int, float64) {
	n := p.Size()
	i := int(math.Floor(t))
	if i < 0 {
		return 0, 0.0
	} else if n <= i {
		return n - 1, 1.0
	}
	return i, t - float64(i)
}

// PointAt returns the point at path parameter t, where the integer part selects the segment.
func (p *Path) PointAt(t float64) Point {
	if p.Empty() {
		return p.Initial()
	}
	i, u := p.split(t)
	return p.Segment(i).PointAt(u)
}

// Portion returns the open path between path parameters f and t. On closed paths t < f wraps around the end of the path, on open paths it returns the reversed portion.
func (p *Path) Portion(f, t float64) *Path {
	n := float64(p.Size())
	if p.Empty() {
		return &Path{start: p.Initial(), moved: true}
	}
	if p.closed {
		if t < f {
			t += n
		}
	} else if t < f {
		return p.Portion(t, f).Reverse()
	}
	f = math.Max(f, 0.0)
	if !p.closed {
		t = math.Min(t, n)
	}

	q := &Path{start: p.PointAt(math.Mod(f, n)), moved: true}
	for Epsilon < t-f {
		i := math.Floor(f)
		end := math.Min(t, i+1.0)
		if Epsilon < end-f {
			q.curves = append(q.curves, p.Segment(int(i)%int(n)).Portion(f-i, end-i))
		}
		f = end
	}
	if 0 < len(q.curves) {
		q.start = q.curves[0].Initial()
	}
	return q
}

// Reverse returns the path traversed in the opposite direction. The implicit closing segment of a closed path remains implicit.
func (p *Path) Reverse() *Path {
	q := &Path{
		start:  p.Final(),
		moved:  true,
		curves: make([]Curve, 0, len(p.curves)),
		closed: p.closed,
	}
	for i := len(p.curves) - 1; 0 <= i; i-- {
		q.curves = append(q.curves, p.curves[i].Reverse())
	}
	return q
}

// Copy returns a copy of p.
func (p *Path) Copy() *Path {
	q := *p
	q.curves = append([]Curve{}, p.curves...)
	return &q
}

// join appends the curves of q to p. A gap larger than Epsilon, which can remain between numerically computed crossing points, is bridged by a line segment.
func (p *Path) join(q *Path) {
	for i, c := range q.curves {
		if i == 0 && (p.moved || 0 < len(p.curves)) && !p.Final().Equals(c.Initial()) {
			p.curves = append(p.curves, Line{p.Final(), c.Initial()})
		}
		if !p.moved && len(p.curves) == 0 {
			p.start = c.Initial()
			p.moved = true
		}
		p.curves = append(p.curves, c)
	}
}

// Bounds returns the exact bounding rectangle of the path.
func (p *Path) Bounds() r2.Rect {
	r := pointsRect(p.Initial())
	for _, c := range p.Segments() {
		r = r.Union(c.BoundsExact())
	}
	return r
}

// Area returns the signed area enclosed by the path, including its closing segment even if the path is open. It is positive for counter clockwise paths when the Y axis points up.
func (p *Path) Area() float64 {
	segs := p.Segments()
	if l, ok := p.closingOpen(); ok {
		segs = append(segs[:len(segs):len(segs)], l)
	}

	a := 0.0
	for _, c := range segs {
		switch c := c.(type) {
		case Line:
			a += c.P0.PerpDot(c.P1)
		default:
			// Green's theorem, integrate x*dy - y*dx
			d := c.Derivative()
			f := func(t float64) float64 {
				return c.PointAt(t).PerpDot(d.PointAt(t))
			}
			n := 1
			if _, ok := c.(Arc); ok {
				n = 8
			}
			for k := 0; k < n; k++ {
				a += gaussLegendre5(f, float64(k)/float64(n), float64(k+1)/float64(n))
			}
		}
	}
	return a / 2.0
}

// closingOpen returns the line that would close an open path.
func (p *Path) closingOpen() (Line, bool) {
	if p.closed || len(p.curves) == 0 || p.Final().Equals(p.Initial()) {
		return Line{}, false
	}
	return Line{p.Final(), p.Initial()}, true
}

// Flatten returns the path as a polyline whose points deviate at most tolerance from the curves. The first point is the initial point and, for closed paths, the last point equals the first.
func (p *Path) Flatten(tolerance float64) []Point {
	ps := []Point{p.Initial()}
	for _, c := range p.Segments() {
		if _, ok := c.(Line); ok {
			ps = append(ps, c.Final())
			continue
		}
		ts := monotoneSplits(c)
		for i := 0; i+1 < len(ts); i++ {
			ps = flattenCurve(ps, c, ts[i], ts[i+1], tolerance, 0)
		}
	}
	if p.closed && !ps[len(ps)-1].Equals(ps[0]) {
		ps = append(ps, ps[0])
	}
	return ps
}

func flattenCurve(ps []Point, c Curve, t0, t1, tolerance float64, depth int) []Point {
	const maxDepth = 16
	if depth < maxDepth && tolerance <= chordDistance(c, r1.Interval{Lo: t0, Hi: t1}) {
		tm := (t0 + t1) / 2.0
		ps = flattenCurve(ps, c, t0, tm, tolerance, depth+1)
		return flattenCurve(ps, c, tm, t1, tolerance, depth+1)
	}
	return append(ps, c.PointAt(t1))
}

// String returns the path in SVG path data notation.
func (p *Path) String() string {
	return p.SVG()
}

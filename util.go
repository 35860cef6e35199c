package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Epsilon is the smallest number below which we assume the value to be zero. This is to avoid numerical floating point issues.
const Epsilon = 1e-10

// Precision is the number of significant digits at which floating point values are written out in path data.
var Precision = 8

// equal returns true if a and b are equal within an absolute tolerance of Epsilon.
func equal(a, b float64) bool {
	// avoid math.Abs
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

// angleNorm returns the angle theta in the range [0,2PI).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	return theta
}

func clamp(t, lo, hi float64) float64 {
	if t < lo {
		return lo
	} else if hi < t {
		return hi
	}
	return t
}

////////////////////////////////////////////////////////////////

// Dim selects a coordinate of a Point.
type Dim int

// see Dim
const (
	X Dim = iota
	Y
)

func (dim Dim) String() string {
	if dim == X {
		return "X"
	}
	return "Y"
}

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Coord returns the coordinate along dim.
func (p Point) Coord(dim Dim) float64 {
	if dim == X {
		return p.X
	}
	return p.Y
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Div divides x and y by f.
func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f}
}

// Rot90CW rotates the line OP by 90 degrees CW.
func (p Point) Rot90CW() Point {
	return Point{p.Y, -p.X}
}

// Rot90CCW rotates the line OP by 90 degrees CCW.
func (p Point) Rot90CCW() Point {
	return Point{-p.Y, p.X}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular. This is the cross product in two dimensions.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns the angle in radians between the x-axis and OP.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Norm normalises OP to be of given length.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if d == 0.0 {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns a point on PQ that is linearly interpolated by t in [0,1], ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

// String returns the string representation of a point, such as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

func (p Point) r2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

////////////////////////////////////////////////////////////////

// pointsRect returns the smallest rectangle containing all points.
func pointsRect(ps ...Point) r2.Rect {
	if len(ps) == 0 {
		return r2.EmptyRect()
	}
	r := r2.RectFromPoints(ps[0].r2())
	for _, p := range ps[1:] {
		r = r.AddPoint(p.r2())
	}
	return r
}

// unionRect returns the union of a and b, treating empty rectangles as neutral.
func unionRect(a, b r2.Rect) r2.Rect {
	if a.IsEmpty() {
		return b
	} else if b.IsEmpty() {
		return a
	}
	return a.Union(b)
}

func rectString(r r2.Rect) string {
	if r.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X.Lo, r.Y.Lo, r.X.Hi, r.Y.Hi)
}

////////////////////////////////////////////////////////////////

// solveQuadraticFormula solves a*x^2 + b*x + c = 0 and returns the solutions in increasing order. Missing solutions are returned as NaN.
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	if a == 0.0 {
		if b == 0.0 {
			if c == 0.0 {
				// all terms disappear, all x satisfy the solution
				return 0.0, math.NaN()
			}
			// linear term disappears, no solutions
			return math.NaN(), math.NaN()
		}
		// quadratic term disappears, solve linear equation
		return -c / b, math.NaN()
	}

	if c == 0.0 {
		// no constant term, one solution at zero and one from solving linearly
		if x := -b / a; x < 0.0 {
			return x, 0.0
		} else if x == 0.0 {
			return 0.0, math.NaN()
		} else {
			return 0.0, x
		}
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return -b / (2.0 * a), math.NaN()
	}

	// Avoid catastrophic cancellation, which occurs when we subtract two nearly equal numbers and causes a large error.
	// Calculate x where b and the radical have the same sign, and use the Citardauq formula for the other.
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}

// bisectionMethod finds the value x for which f(x) = y in the interval x in [xmin, xmax]. The function f must be monotonic in the interval.
func bisectionMethod(f func(float64) float64, y, xmin, xmax float64) float64 {
	const MaxIterations = 100
	const Tolerance = 1e-14

	fmin, fmax := f(xmin)-y, f(xmax)-y
	if fmin == 0.0 {
		return xmin
	} else if fmax == 0.0 {
		return xmax
	}
	increasing := fmin < fmax

	n := 0
	for {
		x := (xmin + xmax) / 2.0
		if xmax-xmin < Tolerance || MaxIterations <= n {
			return x
		}

		fx := f(x) - y
		if fx == 0.0 {
			return x
		} else if (fx < 0.0) == increasing {
			xmin = x
		} else {
			xmax = x
		}
		n++
	}
}

// polynomialRoots returns the sorted roots in [0,1] of c0 + c1*t + c2*t^2 + c3*t^3. Polynomials that vanish identically have no roots.
func polynomialRoots(c0, c1, c2, c3 float64) []float64 {
	var roots []float64
	add := func(t float64) {
		if math.IsNaN(t) || t < -Epsilon || 1.0+Epsilon < t {
			return
		}
		t = clamp(t, 0.0, 1.0)
		if 0 < len(roots) && math.Abs(roots[len(roots)-1]-t) < Epsilon {
			return
		}
		roots = append(roots, t)
	}

	if c3 == 0.0 {
		if c2 == 0.0 && c1 == 0.0 {
			return nil
		}
		x1, x2 := solveQuadraticFormula(c2, c1, c0)
		add(x1)
		add(x2)
		return roots
	}

	// split into monotonic brackets at the roots of the derivative
	f := func(t float64) float64 {
		return c0 + t*(c1+t*(c2+t*c3))
	}
	brackets := []float64{0.0}
	d1, d2 := solveQuadraticFormula(3.0*c3, 2.0*c2, c1)
	for _, d := range []float64{d1, d2} {
		if 0.0 < d && d < 1.0 {
			brackets = append(brackets, d)
		}
	}
	brackets = append(brackets, 1.0)

	for i := 0; i+1 < len(brackets); i++ {
		lo, hi := brackets[i], brackets[i+1]
		flo, fhi := f(lo), f(hi)
		if flo == 0.0 {
			add(lo)
		} else if fhi != 0.0 && (flo < 0.0) != (fhi < 0.0) {
			add(bisectionMethod(f, 0.0, lo, hi))
		}
	}
	if f(1.0) == 0.0 {
		add(1.0)
	}
	return roots
}

// gaussLegendre5 numerically integrates f(x) for x in [a,b] using five-point Gauss-Legendre quadrature.
func gaussLegendre5(f func(float64) float64, a, b float64) float64 {
	c := (b - a) / 2.0
	d := (a + b) / 2.0
	Qd1 := f(-0.906179845938664*c + d)
	Qd2 := f(-0.538469310105683*c + d)
	Qd3 := f(d)
	Qd4 := f(0.538469310105683*c + d)
	Qd5 := f(0.906179845938664*c + d)
	return c * (0.236926885056189*(Qd1+Qd5) + 0.478628670499366*(Qd2+Qd4) + 0.568888888888889*Qd3)
}

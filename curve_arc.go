package geom

import (
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Arc is an elliptical arc in center parametrisation. The ellipse with radii RX and RY is rotated by Rot radians around Center, and the arc runs from angle Theta0 to Theta1 in radians. Theta1 < Theta0 runs clockwise.
type Arc struct {
	Center         Point
	RX, RY, Rot    float64
	Theta0, Theta1 float64
}

// NewArc returns the elliptical arc from start to end as specified by the SVG arc command. The rotation rot is in degrees. Degenerate arcs are returned as a Line.
func NewArc(start Point, rx, ry, rot float64, large, sweep bool, end Point) Curve {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if start.Equals(end) || equal(rx, 0.0) || equal(ry, 0.0) {
		return Line{start, end}
	}
	center, rx, ry, theta0, theta1 := arcToCenter(start, rx, ry, rot*math.Pi/180.0, large, sweep, end)
	return Arc{
		Center: center,
		RX:     rx,
		RY:     ry,
		Rot:    rot * math.Pi / 180.0,
		Theta0: theta0,
		Theta1: theta1,
	}
}

// arcToCenter converts the endpoint parametrisation of an arc to its center parametrisation. Radii that are too small to span the end points are scaled up. See https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(p1 Point, rx, ry, phi float64, large, sweep bool, p2 Point) (Point, float64, float64, float64, float64) {
	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(p1.X-p2.X)/2.0 + sinphi*(p1.Y-p2.Y)/2.0
	y1p := -sinphi*(p1.X-p2.X)/2.0 + cosphi*(p1.Y-p2.Y)/2.0

	// reduce rounding errors
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if radiiCheck > 1.0 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (p1.X+p2.X)/2.0
	cy := sinphi*cxp + cosphi*cyp + (p1.Y+p2.Y)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(clamp(ux/math.Sqrt(ux*ux+uy*uy), -1.0, 1.0))
	if uy < 0.0 {
		theta = -theta
	}

	delta := math.Acos(clamp((ux*vx+uy*vy)/math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)), -1.0, 1.0))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	if !sweep && delta > 0.0 {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return Point{cx, cy}, rx, ry, theta, theta + delta
}

func (Arc) isCurve() {}

func (a Arc) pointAtAngle(theta float64) Point {
	sinphi, cosphi := math.Sincos(a.Rot)
	sintheta, costheta := math.Sincos(theta)
	x, y := a.RX*costheta, a.RY*sintheta
	return Point{a.Center.X + cosphi*x - sinphi*y, a.Center.Y + sinphi*x + cosphi*y}
}

func (a Arc) Initial() Point {
	return a.pointAtAngle(a.Theta0)
}

func (a Arc) Final() Point {
	return a.pointAtAngle(a.Theta1)
}

func (a Arc) PointAt(t float64) Point {
	return a.pointAtAngle(a.Theta0 + t*(a.Theta1-a.Theta0))
}

// Derivative returns the arc of tangents, which is an ellipse around the origin with the radii scaled by the swept angle and shifted by a quarter turn.
func (a Arc) Derivative() Curve {
	delta := a.Theta1 - a.Theta0
	return Arc{
		RX:     a.RX * delta,
		RY:     a.RY * delta,
		Rot:    a.Rot,
		Theta0: a.Theta0 + math.Pi/2.0,
		Theta1: a.Theta1 + math.Pi/2.0,
	}
}

// BoundsFast returns the exact bounds, the bounds of an arc are cheap to find.
func (a Arc) BoundsFast() r2.Rect {
	return boundsExtrema(a)
}

func (a Arc) BoundsExact() r2.Rect {
	return boundsExtrema(a)
}

func (a Arc) BoundsLocal(i r1.Interval) r2.Rect {
	return a.Portion(i.Lo, i.Hi).BoundsExact()
}

func (a Arc) Portion(f, t float64) Curve {
	delta := a.Theta1 - a.Theta0
	b := a
	b.Theta0 = a.Theta0 + f*delta
	b.Theta1 = a.Theta0 + t*delta
	return b
}

// Roots solves A*cos(theta) + B*sin(theta) = C for the angles on the arc.
func (a Arc) Roots(v float64, dim Dim) []float64 {
	delta := a.Theta1 - a.Theta0
	if math.Abs(delta) < Epsilon {
		return nil
	}

	sinphi, cosphi := math.Sincos(a.Rot)
	var A, B, C float64
	if dim == X {
		A, B, C = a.RX*cosphi, -a.RY*sinphi, v-a.Center.X
	} else {
		A, B, C = a.RX*sinphi, a.RY*cosphi, v-a.Center.Y
	}
	R := math.Hypot(A, B)
	if R < Epsilon {
		return nil
	}
	ratio := C / R
	if 1.0 < math.Abs(ratio) {
		if 1.0+Epsilon < math.Abs(ratio) {
			return nil
		}
		ratio = math.Copysign(1.0, ratio)
	}

	alpha := math.Atan2(B, A)
	beta := math.Acos(ratio)
	candidates := []float64{alpha + beta}
	if Epsilon < beta && beta < math.Pi-Epsilon {
		candidates = append(candidates, alpha-beta)
	}

	var ts []float64
	for _, theta := range candidates {
		var d float64
		if 0.0 < delta {
			d = angleNorm(theta - a.Theta0)
		} else {
			d = angleNorm(a.Theta0 - theta)
		}
		if 2.0*math.Pi-d < Epsilon {
			d = 0.0
		}
		if t := d / math.Abs(delta); t <= 1.0+Epsilon {
			ts = append(ts, math.Min(t, 1.0))
			if d == 0.0 && 2.0*math.Pi-Epsilon < math.Abs(delta) {
				ts = append(ts, 1.0)
			}
		}
	}
	slices.Sort(ts)
	return slices.CompactFunc(ts, func(a, b float64) bool {
		return math.Abs(a-b) < Epsilon
	})
}

func (a Arc) Reverse() Curve {
	b := a
	b.Theta0, b.Theta1 = a.Theta1, a.Theta0
	return b
}

func (a Arc) String() string {
	return fmt.Sprintf("A%v(%g,%g,%g)[%g,%g]", a.Center, a.RX, a.RY, a.Rot, a.Theta0, a.Theta1)
}

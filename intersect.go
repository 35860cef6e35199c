package geom

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"github.com/golang/geo/r1"
)

// CurveIntersection is a point where two curves meet, at parameter TA on the first curve and TB on the second.
type CurveIntersection struct {
	TA, TB float64
	Point  Point

	// Dir is true when the tangent of the second curve points to the left of the tangent of the first curve, ie. cross(tangentA, tangentB) > 0.
	Dir bool
}

// IntersectLines returns the intersection of the infinite lines through a0,a1 and through b0,b1. It returns false for parallel lines.
func IntersectLines(a0, a1, b0, b1 Point) (Point, bool) {
	da, db := a1.Sub(a0), b1.Sub(b0)
	det := da.PerpDot(db)
	if math.Abs(det) <= Epsilon*da.Length()*db.Length() || det == 0.0 {
		return Point{}, false
	}
	s := b0.Sub(a0).PerpDot(db) / det
	return a0.Add(da.Mul(s)), true
}

// IntersectCurves returns the intersections of a and b sorted by the parameter on a, using DefaultEngine.
func IntersectCurves(a, b Curve) []CurveIntersection {
	return DefaultEngine.IntersectCurves(a, b)
}

// IntersectCurves returns the intersections of a and b sorted by the parameter on a. Both curves are split into X- and Y-monotonic pieces, and each pair of pieces is intersected by recursive subdivision until both pieces are flat. Overlapping curves are not supported.
func (e *Engine) IntersectCurves(a, b Curve) []CurveIntersection {
	x := &intersector{
		tol: e.tolerance(),
		log: e.logger(),
		a:   a,
		b:   b,
	}
	tsa, tsb := monotoneSplits(a), monotoneSplits(b)
	for i := 0; i+1 < len(tsa); i++ {
		ia := r1.Interval{Lo: tsa[i], Hi: tsa[i+1]}
		for j := 0; j+1 < len(tsb); j++ {
			ib := r1.Interval{Lo: tsb[j], Hi: tsb[j+1]}
			x.monoA, x.monoB = ia, ib
			x.recurse(ia, ib, 0)
		}
	}
	return x.result()
}

type intersector struct {
	tol  Tolerance
	log  *slog.Logger
	a, b Curve

	monoA, monoB r1.Interval
	hits         []CurveIntersection
}

// chordSlack admits chord solutions slightly outside the pieces so that hits at piece boundaries are not lost to rounding, duplicates are removed afterwards.
const chordSlack = 1e-9

func (x *intersector) flat(c Curve, i r1.Interval) bool {
	if _, ok := c.(Line); ok {
		return true
	}
	return chordDistance(c, i) < x.tol.Flatness
}

func (x *intersector) recurse(ia, ib r1.Interval, depth int) {
	ra := x.a.BoundsLocal(ia).ExpandedByMargin(x.tol.Flatness)
	rb := x.b.BoundsLocal(ib).ExpandedByMargin(x.tol.Flatness)
	if !ra.Intersects(rb) {
		return
	}

	flatA, flatB := x.flat(x.a, ia), x.flat(x.b, ib)
	if flatA && flatB {
		x.chord(ia, ib, false)
		return
	} else if x.tol.MaxDepth <= depth {
		x.log.Debug("intersection approximated at recursion limit", "depth", depth, "a", ia, "b", ib)
		x.chord(ia, ib, true)
		return
	}

	// alternate between the curves, but never split a flat curve
	if !flatA && (depth%2 == 0 || flatB) {
		m := ia.Center()
		x.recurse(r1.Interval{Lo: ia.Lo, Hi: m}, ib, depth+1)
		x.recurse(r1.Interval{Lo: m, Hi: ia.Hi}, ib, depth+1)
	} else {
		m := ib.Center()
		x.recurse(ia, r1.Interval{Lo: ib.Lo, Hi: m}, depth+1)
		x.recurse(ia, r1.Interval{Lo: m, Hi: ib.Hi}, depth+1)
	}
}

// chord intersects the chords of both pieces using Cramer's rule. Unless approx is set, hits where the curves themselves are further apart than the flatness allows are rejected.
func (x *intersector) chord(ia, ib r1.Interval, approx bool) {
	a0, a1 := x.a.PointAt(ia.Lo), x.a.PointAt(ia.Hi)
	b0, b1 := x.b.PointAt(ib.Lo), x.b.PointAt(ib.Hi)
	da, db := a1.Sub(a0), b1.Sub(b0)
	det := da.PerpDot(db)
	if math.Abs(det) <= Epsilon*da.Length()*db.Length() || det == 0.0 {
		// parallel or degenerate
		return
	}
	r := b0.Sub(a0)
	s := r.PerpDot(db) / det
	u := r.PerpDot(da) / det
	if s < -chordSlack || 1.0+chordSlack < s || u < -chordSlack || 1.0+chordSlack < u {
		return
	}
	ta := ia.Lo + clamp(s, 0.0, 1.0)*ia.Length()
	tb := ib.Lo + clamp(u, 0.0, 1.0)*ib.Length()
	ta, tb = x.polish(ta, tb)
	if !approx && 2.0*x.tol.Flatness < x.a.PointAt(ta).Sub(x.b.PointAt(tb)).Length() {
		return
	}
	x.hits = append(x.hits, CurveIntersection{TA: ta, TB: tb})
}

// polish refines a hit with Newton's method on A(ta) - B(tb) = 0, keeping the parameters within the monotonic pieces.
func (x *intersector) polish(ta, tb float64) (float64, float64) {
	if x.tol.Polish == 0 {
		return ta, tb
	}
	da, db := x.a.Derivative(), x.b.Derivative()
	for range x.tol.Polish {
		f := x.a.PointAt(ta).Sub(x.b.PointAt(tb))
		if f.Length() < Epsilon*Epsilon {
			break
		}
		ja, jb := da.PointAt(ta), db.PointAt(tb)
		det := jb.PerpDot(ja)
		if math.Abs(det) < Epsilon {
			break
		}
		// solve ja*dta - jb*dtb = -f
		dta := f.PerpDot(jb) / det
		dtb := f.PerpDot(ja) / det
		nta, ntb := ta+dta, tb+dtb
		if !x.monoA.Contains(nta) || !x.monoB.Contains(ntb) {
			break
		}
		ta, tb = nta, ntb
	}
	return ta, tb
}

// result removes duplicate hits and computes the intersection points and directions.
func (x *intersector) result() []CurveIntersection {
	slices.SortFunc(x.hits, func(a, b CurveIntersection) int {
		if c := cmp.Compare(a.TA, b.TA); c != 0 {
			return c
		}
		return cmp.Compare(a.TB, b.TB)
	})
	zs := x.hits[:0]
	for _, z := range x.hits {
		dup := false
		for _, y := range zs {
			if math.Abs(y.TA-z.TA) < x.tol.CrossingEpsilon && math.Abs(y.TB-z.TB) < x.tol.CrossingEpsilon {
				dup = true
				break
			}
		}
		if !dup {
			zs = append(zs, z)
		}
	}
	zs = x.resolveTangents(zs)
	for i, z := range zs {
		zs[i].Point = x.a.PointAt(z.TA)
		zs[i].Dir = 0.0 < tangentAt(x.a, z.TA).PerpDot(tangentAt(x.b, z.TB))
	}
	return zs
}

const (
	// nearTangent is the sine of the angle between both tangents below which a hit is checked with the side test.
	nearTangent = 1e-2

	// sideStep is the minimum parameter distance on a from a run of near-tangent hits at which the sides are compared.
	sideStep = 1e-3
)

func (x *intersector) sine(z CurveIntersection) float64 {
	return math.Abs(tangentAt(x.a, z.TA).Norm(1.0).PerpDot(tangentAt(x.b, z.TB).Norm(1.0)))
}

// near returns true if a at ta lies within a few flatness tolerances of b, starting the search on b at tb.
func (x *intersector) near(ta, tb float64) bool {
	p := x.a.PointAt(ta)
	return p.Sub(x.b.PointAt(project(x.b, p, tb))).Length() < 8.0*x.tol.Flatness
}

// resolveTangents replaces every run of near-tangent hits, where both curves stay close together, by at most one hit. Where the curves touch without changing sides the run is dropped.
func (x *intersector) resolveTangents(zs []CurveIntersection) []CurveIntersection {
	out := make([]CurveIntersection, 0, len(zs))
	for i := 0; i < len(zs); {
		if nearTangent <= x.sine(zs[i]) {
			out = append(out, zs[i])
			i++
			continue
		}
		j := i + 1
		for j < len(zs) && x.sine(zs[j]) < nearTangent && x.near((zs[j-1].TA+zs[j].TA)/2.0, (zs[j-1].TB+zs[j].TB)/2.0) {
			j++
		}
		if z, ok := x.resolveRun(zs[i:j]); ok {
			out = append(out, z)
		}
		i = j
	}
	return out
}

// resolveRun compares the side of a with respect to b just before and just after a run of near-tangent hits. A run that ends where both curves meet at an end point collapses onto that end point, so that the joint is decided at the path level.
func (x *intersector) resolveRun(zs []CurveIntersection) (CurveIntersection, bool) {
	first, last := zs[0], zs[len(zs)-1]
	d := math.Max(last.TA-first.TA, sideStep)
	lo, hi := math.Max(first.TA-d, 0.0), math.Min(last.TA+d, 1.0)
	tblo, slo := x.side(lo, first.TB)
	tbhi, shi := x.side(hi, last.TB)
	if slo == 0.0 {
		return CurveIntersection{TA: lo, TB: tblo}, true
	} else if shi == 0.0 {
		return CurveIntersection{TA: hi, TB: tbhi}, true
	}

	// the run reaches an end point of b that lies on a
	for _, tb := range []float64{tblo, tbhi} {
		if tb == 0.0 || tb == 1.0 {
			q := x.b.PointAt(tb)
			if ta := project(x.a, q, (first.TA+last.TA)/2.0); x.a.PointAt(ta).Sub(q).Length() < 8.0*x.tol.Flatness {
				return CurveIntersection{TA: ta, TB: tb}, true
			}
		}
	}

	if (slo < 0.0) != (shi < 0.0) {
		best := first
		for _, z := range zs[1:] {
			if x.sine(best) < x.sine(z) {
				best = z
			}
		}
		return best, true
	}
	x.log.Debug("dropped tangential touch", "hits", len(zs), "ta", first.TA, "tb", first.TB)
	return CurveIntersection{}, false
}

// side returns the parameter on b closest to a at ta, and the side of a at ta with respect to b. The side is positive to the left of b and zero when a lies on b.
func (x *intersector) side(ta, tb float64) (float64, float64) {
	p := x.a.PointAt(ta)
	tb = project(x.b, p, tb)
	q := x.b.PointAt(tb)
	if p.Sub(q).Length() < Epsilon {
		return tb, 0.0
	}
	return tb, tangentAt(x.b, tb).PerpDot(p.Sub(q))
}

// project returns the parameter of the point on c closest to p, using Newton iterations from t.
func project(c Curve, p Point, t float64) float64 {
	d := c.Derivative()
	for range 16 {
		q, dq := c.PointAt(t), d.PointAt(t)
		dd := dq.Dot(dq)
		if dd < Epsilon {
			break
		}
		next := clamp(t+p.Sub(q).Dot(dq)/dd, 0.0, 1.0)
		if next == t {
			break
		}
		t = next
	}
	return t
}

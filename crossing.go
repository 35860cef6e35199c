package geom

import (
	"cmp"
	"math"
	"slices"

	"github.com/golang/geo/r2"
)

// Crossing is a transversal crossing between path A and path B at path parameters TA and TB. Dir is true when A leaves the interior of B, assuming B is oriented with its interior on the left, ie. cross(tangentA, tangentB) > 0.
type Crossing struct {
	A, B   int
	TA, TB float64
	Dir    bool
}

// T returns the parameter of the crossing along path p, which must be A or B.
func (c Crossing) T(p int) float64 {
	if c.A == p {
		return c.TA
	}
	return c.TB
}

type crossingRef struct {
	id   int
	side int // 0 if the path is A of the crossing, 1 if it is B
}

// CrossingSet holds the crossings between a collection of paths. For each path it keeps the crossings on that path sorted by parameter, and for each crossing its position in the lists of both of its paths.
type CrossingSet struct {
	crossings []Crossing
	lists     [][]crossingRef
	pos       [][2]int
}

func newCrossingSet(n int) *CrossingSet {
	return &CrossingSet{
		lists: make([][]crossingRef, n),
	}
}

func (cs *CrossingSet) param(ref crossingRef) float64 {
	if ref.side == 0 {
		return cs.crossings[ref.id].TA
	}
	return cs.crossings[ref.id].TB
}

// index builds the sorted per-path lists.
func (cs *CrossingSet) index() {
	for i := range cs.lists {
		cs.lists[i] = cs.lists[i][:0]
	}
	for id, c := range cs.crossings {
		cs.lists[c.A] = append(cs.lists[c.A], crossingRef{id, 0})
		cs.lists[c.B] = append(cs.lists[c.B], crossingRef{id, 1})
	}
	cs.pos = make([][2]int, len(cs.crossings))
	for _, list := range cs.lists {
		slices.SortFunc(list, func(a, b crossingRef) int {
			if c := cmp.Compare(cs.param(a), cs.param(b)); c != 0 {
				return c
			}
			return cmp.Compare(a.id, b.id)
		})
		for k, ref := range list {
			cs.pos[ref.id][ref.side] = k
		}
	}
}

// Len returns the number of crossings.
func (cs *CrossingSet) Len() int {
	return len(cs.crossings)
}

// Crossing returns the crossing with the given id.
func (cs *CrossingSet) Crossing(id int) Crossing {
	return cs.crossings[id]
}

// Crossings returns all crossings indexed by id.
func (cs *CrossingSet) Crossings() []Crossing {
	return cs.crossings
}

// Paths returns the number of paths.
func (cs *CrossingSet) Paths() int {
	return len(cs.lists)
}

// OnPath returns the ids of the crossings on path p sorted by their parameter along p.
func (cs *CrossingSet) OnPath(p int) []int {
	ids := make([]int, len(cs.lists[p]))
	for k, ref := range cs.lists[p] {
		ids[k] = ref.id
	}
	return ids
}

// Next returns the id of the crossing that follows crossing id along path p, wrapping around at the end of the path.
func (cs *CrossingSet) Next(p, id int) int {
	side := 0
	if cs.crossings[id].A != p {
		side = 1
	}
	list := cs.lists[p]
	return list[(cs.pos[id][side]+1)%len(list)].id
}

////////////////////////////////////////////////////////////////

// Crossings returns the transversal crossings between a and b sorted by their parameter along a. Path a has index 0 and path b index 1.
func (e *Engine) Crossings(a, b *Path) []Crossing {
	cs := e.CrossingSet([]*Path{a}, []*Path{b})
	ids := cs.OnPath(0)
	zs := make([]Crossing, len(ids))
	for i, id := range ids {
		zs[i] = cs.Crossing(id)
	}
	return zs
}

// CrossingSet returns the crossings between each path of as and each path of bs. Paths of as have indices [0,len(as)) and paths of bs follow at [len(as),len(as)+len(bs)). Crossings between paths of the same collection are not computed.
func (e *Engine) CrossingSet(as, bs []*Path) *CrossingSet {
	cs := newCrossingSet(len(as) + len(bs))
	pairs := SweepPairs(pathBounds(as), pathBounds(bs))
	for i, js := range pairs {
		for _, j := range js {
			cs.crossings = append(cs.crossings, e.pathCrossings(as[i], bs[j], i, len(as)+j)...)
		}
	}
	cs.index()
	return cs
}

// SelfCrossings returns the crossings between each pair of distinct paths in ps.
func (e *Engine) SelfCrossings(ps []*Path) *CrossingSet {
	cs := newCrossingSet(len(ps))
	for i, js := range SweepSelf(pathBounds(ps)) {
		for _, j := range js {
			cs.crossings = append(cs.crossings, e.pathCrossings(ps[i], ps[j], i, j)...)
		}
	}
	cs.index()
	return cs
}

func pathBounds(ps []*Path) []r2.Rect {
	rs := make([]r2.Rect, len(ps))
	for i, p := range ps {
		if p.Empty() {
			rs[i] = r2.EmptyRect()
		} else {
			rs[i] = p.Bounds()
		}
	}
	return rs
}

// pathCrossings returns the crossings between a and b, labelled with path indices ia and ib.
func (e *Engine) pathCrossings(a, b *Path, ia, ib int) []Crossing {
	tol := e.tolerance()
	log := e.logger()
	segsA, segsB := a.Segments(), b.Segments()
	boundsA := make([]r2.Rect, len(segsA))
	for i, c := range segsA {
		boundsA[i] = c.BoundsFast()
	}
	boundsB := make([]r2.Rect, len(segsB))
	for j, c := range segsB {
		boundsB[j] = c.BoundsFast()
	}

	var zs []Crossing
	for i, js := range SweepPairs(boundsA, boundsB) {
		for _, j := range js {
			for _, z := range e.IntersectCurves(segsA[i], segsB[j]) {
				zs = append(zs, Crossing{
					A:  ia,
					B:  ib,
					TA: canonicalParam(a, float64(i)+z.TA, tol.CrossingEpsilon),
					TB: canonicalParam(b, float64(j)+z.TB, tol.CrossingEpsilon),
				})
			}
		}
	}
	slices.SortFunc(zs, func(x, y Crossing) int {
		return cmp.Compare(x.TA, y.TA)
	})

	// remove duplicates found at segment joints or piece boundaries
	kept := zs[:0]
	for _, z := range zs {
		dup := false
		for _, y := range kept {
			if paramDist(a, y.TA, z.TA) < tol.CrossingEpsilon && paramDist(b, y.TB, z.TB) < tol.CrossingEpsilon {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, z)
		}
	}

	// drop tangential touches and determine direction
	zs = kept[:0]
	for _, z := range kept {
		inA, outA := pathTangents(a, z.TA)
		inB, outB := pathTangents(b, z.TB)
		before := leftOf(inB, outB, inA.Neg())
		after := leftOf(inB, outB, outA)
		smooth := inA.Equals(outA) && inB.Equals(outB)
		if before == after || smooth && math.Abs(outA.PerpDot(outB)) < Epsilon {
			log.Debug("dropped tangential hit", "a", ia, "ta", z.TA, "b", ib, "tb", z.TB, "point", a.PointAt(z.TA))
			continue
		}
		z.Dir = !after
		zs = append(zs, z)
	}
	return zs
}

// canonicalParam snaps path parameters close to a segment joint onto the joint, and wraps the end of a closed path to its start.
func canonicalParam(p *Path, t, eps float64) float64 {
	if r := math.Round(t); math.Abs(t-r) < eps {
		t = r
	}
	if n := float64(p.Size()); p.Closed() && n <= t {
		t -= n
	}
	return t
}

// paramDist returns the distance between two path parameters, measured around the path if it is closed.
func paramDist(p *Path, s, t float64) float64 {
	d := math.Abs(s - t)
	if p.Closed() {
		d = math.Min(d, float64(p.Size())-d)
	}
	return d
}

// pathTangents returns the unit tangents arriving at and leaving path parameter t. They differ only at segment joints.
func pathTangents(p *Path, t float64) (Point, Point) {
	n := p.Size()
	k := int(math.Floor(t))
	if float64(k) != t || k < 0 || n < k {
		i, u := p.split(t)
		d := tangentAt(p.Segment(i), u).Norm(1.0)
		return d, d
	}

	var in, out Point
	if k < n {
		out = tangentAt(p.Segment(k), 0.0)
	}
	if 0 < k {
		in = tangentAt(p.Segment(k-1), 1.0)
	} else if p.Closed() {
		in = tangentAt(p.Segment(n-1), 1.0)
	} else {
		in = out
	}
	if n == k {
		out = in
	}
	return in.Norm(1.0), out.Norm(1.0)
}

// leftOf returns true if direction v points into the region left of a path that arrives with direction in and leaves with direction out.
func leftOf(in, out, v Point) bool {
	l0, l1 := Epsilon < in.PerpDot(v), Epsilon < out.PerpDot(v)
	turn := in.PerpDot(out)
	if math.Abs(turn) < Epsilon {
		if 0.0 <= in.Dot(out) {
			return Epsilon < in.Add(out).PerpDot(v)
		}
		// cusp
		return l0 || l1
	} else if 0.0 < turn {
		// left turn, the left side is the narrow wedge
		return l0 && l1
	}
	return l0 || l1
}

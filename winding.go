package geom

// Winding returns the winding number of the path around pt, counting counter clockwise turns positively when the Y axis points up. The path is treated as closed.
//
// A ray is cast from pt towards +X. Each curve is split at its Y extrema and every Y-monotonic piece covers the half-open range [minY,maxY), which equals shifting the ray infinitesimally upwards. A ray through a vertex is thus counted once when the path crosses and not at all when it touches, and horizontal tangents need no special care.
func (p *Path) Winding(pt Point) int {
	segs := p.Segments()
	if l, ok := p.closingOpen(); ok {
		segs = append(segs[:len(segs):len(segs)], l)
	}

	n := 0
	for _, c := range segs {
		n += windingCurve(c, pt)
	}
	return n
}

func windingCurve(c Curve, pt Point) int {
	b := c.BoundsFast()
	if b.X.Hi <= pt.X || pt.Y < b.Y.Lo || b.Y.Hi < pt.Y {
		return 0
	}

	n := 0
	t0, p0 := 0.0, c.Initial()
	ts := append(extrema(c, Y), 1.0)
	for _, t1 := range ts {
		p1 := c.PointAt(t1)
		if t1 == 1.0 {
			p1 = c.Final()
		}
		n += windingMonotone(c, t0, t1, p0, p1, pt)
		t0, p0 = t1, p1
	}
	return n
}

// windingMonotone counts the crossing of the Y-monotonic piece of c over [t0,t1] with the ray from pt.
func windingMonotone(c Curve, t0, t1 float64, p0, p1, pt Point) int {
	dir := 1
	lo, hi := p0.Y, p1.Y
	if hi < lo {
		dir = -1
		lo, hi = hi, lo
	}
	if lo == hi || pt.Y < lo || hi <= pt.Y {
		return 0
	}

	var x float64
	if l, ok := c.(Line); ok {
		x = l.P0.X + (pt.Y-l.P0.Y)*(l.P1.X-l.P0.X)/(l.P1.Y-l.P0.Y)
	} else if pt.Y == p0.Y {
		x = p0.X
	} else {
		t := bisectionMethod(func(t float64) float64 {
			return c.PointAt(t).Y
		}, pt.Y, t0, t1)
		x = c.PointAt(t).X
	}
	if pt.X < x {
		return dir
	}
	return 0
}

// Winding returns the sum of the winding numbers of the regions around pt, after orienting each region according to its fill flag.
func (s Shape) Winding(pt Point) int {
	n := 0
	for _, r := range s {
		w := r.Path.Winding(pt)
		if (0.0 < r.Path.Area()) != r.Fill {
			w = -w
		}
		n += w
	}
	return n
}

// Contains returns true if pt lies inside the shape under the given fill rule.
func (s Shape) Contains(pt Point, fillRule FillRule) bool {
	return fillRule.Fills(s.Winding(pt))
}

// Package orbconv converts shapes to and from the polygon types of github.com/paulmach/orb.
package orbconv

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/tdewolff/geom"
)

// Ring returns the path flattened to a closed ring, with its curves approximated within tolerance.
func Ring(p *geom.Path, tolerance float64) orb.Ring {
	ps := p.Flatten(tolerance)
	r := make(orb.Ring, 0, len(ps)+1)
	for _, q := range ps {
		r = append(r, orb.Point{q.X, q.Y})
	}
	if !r.Closed() {
		r = append(r, r[0])
	}
	return r
}

// MultiPolygon returns the shape as a multi polygon. Each filled region becomes a polygon with a counter clockwise outer ring, and each hole is attached as a clockwise ring to the smallest polygon that contains it. Holes outside of any filled region are dropped.
func MultiPolygon(s geom.Shape, tolerance float64) orb.MultiPolygon {
	mp := orb.MultiPolygon{}
	areas := []float64{}
	var holes []orb.Ring
	for _, r := range s.Normalize() {
		if r.Path.Empty() {
			continue
		}
		ring := Ring(r.Path, tolerance)
		if r.Fill {
			mp = append(mp, orb.Polygon{ring})
			areas = append(areas, planar.Area(ring))
		} else {
			holes = append(holes, ring)
		}
	}

	for _, hole := range holes {
		k, min := -1, math.Inf(1)
		for i, poly := range mp {
			if areas[i] < min && planar.RingContains(poly[0], hole[0]) {
				k, min = i, areas[i]
			}
		}
		if k != -1 {
			mp[k] = append(mp[k], hole)
		}
	}
	return mp
}

func ringPath(r orb.Ring) *geom.Path {
	if r.Closed() {
		r = r[:len(r)-1]
	}
	ps := make([]geom.Point, len(r))
	for i, q := range r {
		ps[i] = geom.Point{X: q[0], Y: q[1]}
	}
	return geom.Polygon(ps...)
}

// FromPolygon returns the polygon as a shape, where the first ring is filled and the others are holes.
func FromPolygon(poly orb.Polygon) geom.Shape {
	s := geom.Shape{}
	for i, r := range poly {
		if p := ringPath(r); !p.Empty() {
			s = append(s, geom.NewRegion(p, i == 0))
		}
	}
	return s.Normalize()
}

// FromMultiPolygon returns the multi polygon as a shape.
func FromMultiPolygon(mp orb.MultiPolygon) geom.Shape {
	s := geom.Shape{}
	for _, poly := range mp {
		s = append(s, FromPolygon(poly)...)
	}
	return s
}

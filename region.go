package geom

import (
	"github.com/golang/geo/r2"
)

// FillRule is the fill rule that defines which areas are inside a shape.
type FillRule int

// see FillRule
const (
	NonZero FillRule = iota
	EvenOdd
)

func (fillRule FillRule) String() string {
	switch fillRule {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	}
	return "FillRule(?)"
}

// Fills returns true if a winding number of windings is inside under the fill rule.
func (fillRule FillRule) Fills(windings int) bool {
	if fillRule == NonZero {
		return windings != 0
	}
	return windings%2 != 0
}

// Region is a closed path that either bounds a filled area or a hole.
type Region struct {
	Path *Path
	Fill bool
}

// NewRegion returns a region of p, closing p if needed.
func NewRegion(p *Path, fill bool) Region {
	if !p.Closed() {
		p = p.Copy()
		p.Close()
	}
	return Region{p, fill}
}

// Bounds returns the bounding rectangle of the region.
func (r Region) Bounds() r2.Rect {
	return r.Path.Bounds()
}

// Area returns the signed area of the region's path.
func (r Region) Area() float64 {
	return r.Path.Area()
}

// normalized returns the region with its path oriented so that filled regions have a positive area and holes a negative area.
func (r Region) normalized() Region {
	if (0.0 < r.Path.Area()) != r.Fill {
		return Region{r.Path.Reverse(), r.Fill}
	}
	return r
}

// Shape is a set of regions, such as an outline with holes or multiple disjoint outlines.
type Shape []Region

// ShapeFromPaths returns a shape of the given paths. A path is a hole if it is enclosed by an odd number of the other paths, and a fill otherwise. Regions are oriented to have a positive area for fills and negative area for holes.
func ShapeFromPaths(ps []*Path) Shape {
	s := make(Shape, 0, len(ps))
	for i, p := range ps {
		if p.Empty() {
			continue
		}
		pt := p.Initial()
		depth := 0
		for j, q := range ps {
			if i != j && !q.Empty() && q.Winding(pt) != 0 {
				depth++
			}
		}
		s = append(s, NewRegion(p, depth%2 == 0).normalized())
	}
	return s
}

// ShapeFromOrientation returns a shape of the given paths where paths with a positive area are fills and paths with a negative area are holes.
func ShapeFromOrientation(ps []*Path) Shape {
	s := make(Shape, 0, len(ps))
	for _, p := range ps {
		if !p.Empty() {
			s = append(s, NewRegion(p, 0.0 < p.Area()))
		}
	}
	return s
}

// Normalize returns the shape with each region oriented according to its fill flag.
func (s Shape) Normalize() Shape {
	t := make(Shape, len(s))
	for i, r := range s {
		t[i] = r.normalized()
	}
	return t
}

// Paths returns the paths of all regions.
func (s Shape) Paths() []*Path {
	ps := make([]*Path, len(s))
	for i, r := range s {
		ps[i] = r.Path
	}
	return ps
}

// Bounds returns the bounding rectangle of all regions.
func (s Shape) Bounds() r2.Rect {
	b := r2.EmptyRect()
	for _, r := range s {
		b = unionRect(b, r.Bounds())
	}
	return b
}

// Area returns the filled area, counting holes negatively.
func (s Shape) Area() float64 {
	a := 0.0
	for _, r := range s.Normalize() {
		a += r.Area()
	}
	return a
}

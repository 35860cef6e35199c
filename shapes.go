package geom

import (
	"math"
)

// Rectangle returns a counter clockwise rectangle with its lower-left corner at (x,y), of width w and height h.
func Rectangle(x, y, w, h float64) *Path {
	if equal(w, 0.0) || equal(h, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// RoundedRectangle returns a rectangle like Rectangle with rounded corners of radius r. A negative radius will cast the corners inwards (i.e. concave).
func RoundedRectangle(x, y, w, h, r float64) *Path {
	if equal(w, 0.0) || equal(h, 0.0) {
		return &Path{}
	} else if equal(r, 0.0) {
		return Rectangle(x, y, w, h)
	}

	sweep := true
	if r < 0.0 {
		sweep = false
		r = -r
	}
	r = math.Min(r, w/2.0)
	r = math.Min(r, h/2.0)

	p := &Path{}
	p.MoveTo(x, y+r)
	p.ArcTo(r, r, 0.0, false, sweep, x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(r, r, 0.0, false, sweep, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(r, r, 0.0, false, sweep, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.ArcTo(r, r, 0.0, false, sweep, x, y+h-r)
	p.Close()
	return p
}

// Circle returns a counter clockwise circle around (cx,cy) of radius r.
func Circle(cx, cy, r float64) *Path {
	return Ellipse(cx, cy, r, r)
}

// Ellipse returns a counter clockwise ellipse around (cx,cy) of radii rx and ry.
func Ellipse(cx, cy, rx, ry float64) *Path {
	if equal(rx, 0.0) || equal(ry, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(cx+rx, cy)
	p.ArcTo(rx, ry, 0.0, false, true, cx-rx, cy)
	p.ArcTo(rx, ry, 0.0, false, true, cx+rx, cy)
	p.Close()
	return p
}

// Polygon returns the closed path through the given points.
func Polygon(ps ...Point) *Path {
	if len(ps) < 2 {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(ps[0].X, ps[0].Y)
	for _, q := range ps[1:] {
		if !q.Equals(p.Final()) {
			p.LineTo(q.X, q.Y)
		}
	}
	p.Close()
	return p
}

// RegularPolygon returns a counter clockwise regular polygon around (cx,cy) with radius r. It uses n vertices/edges, so when n approaches infinity this will return a path that approximates a circle. n must be 3 or more. The up boolean defines whether the first point will point north or not.
func RegularPolygon(n int, cx, cy, r float64, up bool) *Path {
	if n < 3 || equal(r, 0.0) {
		return &Path{}
	}

	dtheta := 2.0 * math.Pi / float64(n)
	theta0 := 0.5 * math.Pi
	if !up {
		theta0 += dtheta / 2.0
	}

	ps := make([]Point, n)
	for i := range ps {
		sintheta, costheta := math.Sincos(theta0 + float64(i)*dtheta)
		ps[i] = Point{cx + r*costheta, cy + r*sintheta}
	}
	return Polygon(ps...)
}

// StarPolygon returns a star polygon around (cx,cy) of n points with alternating radius R and r. The up boolean defines whether the first point (true) or second point (false) will be pointing north.
func StarPolygon(n int, cx, cy, R, r float64, up bool) *Path {
	if n < 3 || equal(R, 0.0) || equal(r, 0.0) {
		return &Path{}
	}

	n *= 2
	dtheta := 2.0 * math.Pi / float64(n)
	theta0 := 0.5 * math.Pi
	if !up {
		theta0 += dtheta
	}

	ps := make([]Point, n)
	for i := range ps {
		radius := R
		if i%2 == 1 {
			radius = r
		}
		sintheta, costheta := math.Sincos(theta0 + float64(i)*dtheta)
		ps[i] = Point{cx + radius*costheta, cy + radius*sintheta}
	}
	return Polygon(ps...)
}

// Grid returns a grid of width w and height h with its lower-left corner at (x,y), with grid line thickness r, and the number of cells horizontally and vertically as nx and ny respectively. The cells are holes.
func Grid(x, y, w, h float64, nx, ny int, r float64) Shape {
	if nx < 1 || ny < 1 || w <= float64(nx+1)*r || h <= float64(ny+1)*r {
		return nil
	}

	s := Shape{{Rectangle(x, y, w, h), true}}
	dx, dy := (w-float64(nx+1)*r)/float64(nx), (h-float64(ny+1)*r)/float64(ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			cell := Rectangle(x+r+float64(i)*(r+dx), y+r+float64(j)*(r+dy), dx, dy)
			s = append(s, Region{cell.Reverse(), false})
		}
	}
	return s
}

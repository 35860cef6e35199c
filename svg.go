package geom

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

// ParseError is returned for malformed SVG path data.
type ParseError struct {
	Pos int
	Msg string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("svg path: %s at position %d", err.Msg, err.Pos)
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

type svgParser struct {
	path []byte
	i    int
}

func (z *svgParser) num() (float64, error) {
	z.i += skipCommaWhitespace(z.path[z.i:])
	f, n := strconv.ParseFloat(z.path[z.i:])
	if n == 0 {
		return 0.0, &ParseError{z.i, "expected number"}
	} else if math.IsInf(f, 0) {
		return 0.0, &ParseError{z.i, "number out of range"}
	} else if math.IsNaN(f) {
		f = 0.0 // zero mantissa with an overflowing exponent
	}
	z.i += n
	return f, nil
}

func (z *svgParser) nums(fs ...*float64) error {
	for _, f := range fs {
		var err error
		if *f, err = z.num(); err != nil {
			return err
		}
	}
	return nil
}

func (z *svgParser) flag() (bool, error) {
	z.i += skipCommaWhitespace(z.path[z.i:])
	if z.i < len(z.path) && (z.path[z.i] == '0' || z.path[z.i] == '1') {
		z.i++
		return z.path[z.i-1] == '1', nil
	}
	return false, &ParseError{z.i, "expected flag"}
}

// ParseSVGPath parses SVG path data and returns one path per subpath. All commands of the SVG path grammar are supported, in absolute and relative form.
func ParseSVGPath(s string) ([]*Path, error) {
	z := &svgParser{path: []byte(s)}
	var ps []*Path
	var p *Path
	var prevCmd byte
	var start, cp Point // subpath start and last control point

	z.i = skipCommaWhitespace(z.path)
	for z.i < len(z.path) {
		cmd := prevCmd
		if c := z.path[z.i]; ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') {
			cmd = c
			z.i++
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return nil, &ParseError{z.i, "expected command"}
		} else if prevCmd == 'M' {
			cmd = 'L'
		} else if prevCmd == 'm' {
			cmd = 'l'
		}

		if cmd != 'M' && cmd != 'm' && p == nil {
			if prevCmd == 0 {
				return nil, &ParseError{z.i - 1, "path must start with a move command"}
			}
			// a command after close starts a new subpath at the start of the previous one
			p = &Path{}
			p.MoveTo(start.X, start.Y)
			ps = append(ps, p)
		}

		cur := start
		if p != nil {
			cur = p.Final()
		}
		var a, b, c, d, e, f float64
		switch cmd {
		case 'M', 'm':
			if err := z.nums(&a, &b); err != nil {
				return nil, err
			}
			if cmd == 'm' {
				a += cur.X
				b += cur.Y
			}
			p = &Path{}
			p.MoveTo(a, b)
			ps = append(ps, p)
			start = Point{a, b}
		case 'Z', 'z':
			p.Close()
			p = nil
		case 'L', 'l':
			if err := z.nums(&a, &b); err != nil {
				return nil, err
			}
			if cmd == 'l' {
				a += cur.X
				b += cur.Y
			}
			p.LineTo(a, b)
		case 'H', 'h':
			if err := z.nums(&a); err != nil {
				return nil, err
			}
			if cmd == 'h' {
				a += cur.X
			}
			p.LineTo(a, cur.Y)
		case 'V', 'v':
			if err := z.nums(&b); err != nil {
				return nil, err
			}
			if cmd == 'v' {
				b += cur.Y
			}
			p.LineTo(cur.X, b)
		case 'C', 'c':
			if err := z.nums(&a, &b, &c, &d, &e, &f); err != nil {
				return nil, err
			}
			if cmd == 'c' {
				a, b, c, d, e, f = a+cur.X, b+cur.Y, c+cur.X, d+cur.Y, e+cur.X, f+cur.Y
			}
			p.CubeTo(a, b, c, d, e, f)
			cp = Point{c, d}
		case 'S', 's':
			if err := z.nums(&c, &d, &e, &f); err != nil {
				return nil, err
			}
			if cmd == 's' {
				c, d, e, f = c+cur.X, d+cur.Y, e+cur.X, f+cur.Y
			}
			a, b = cur.X, cur.Y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2.0*cur.X-cp.X, 2.0*cur.Y-cp.Y
			}
			p.CubeTo(a, b, c, d, e, f)
			cp = Point{c, d}
		case 'Q', 'q':
			if err := z.nums(&a, &b, &c, &d); err != nil {
				return nil, err
			}
			if cmd == 'q' {
				a, b, c, d = a+cur.X, b+cur.Y, c+cur.X, d+cur.Y
			}
			p.QuadTo(a, b, c, d)
			cp = Point{a, b}
		case 'T', 't':
			if err := z.nums(&c, &d); err != nil {
				return nil, err
			}
			if cmd == 't' {
				c, d = c+cur.X, d+cur.Y
			}
			a, b = cur.X, cur.Y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2.0*cur.X-cp.X, 2.0*cur.Y-cp.Y
			}
			p.QuadTo(a, b, c, d)
			cp = Point{a, b}
		case 'A', 'a':
			if err := z.nums(&a, &b, &c); err != nil {
				return nil, err
			}
			large, err := z.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := z.flag()
			if err != nil {
				return nil, err
			}
			if err := z.nums(&e, &f); err != nil {
				return nil, err
			}
			if cmd == 'a' {
				e += cur.X
				f += cur.Y
			}
			p.ArcTo(a, b, c, large, sweep, e, f)
		default:
			return nil, &ParseError{z.i - 1, fmt.Sprintf("unknown command %q", cmd)}
		}
		prevCmd = cmd
		z.i += skipCommaWhitespace(z.path[z.i:])
	}

	// drop subpaths consisting of a single move
	qs := ps[:0]
	for _, p := range ps {
		if !p.Empty() {
			qs = append(qs, p)
		}
	}
	return qs, nil
}

// MustParseSVGPath parses SVG path data and panics on error.
func MustParseSVGPath(s string) []*Path {
	ps, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return ps
}

// ParseSVGShape parses SVG path data into a shape, see ShapeFromPaths.
func ParseSVGShape(s string) (Shape, error) {
	ps, err := ParseSVGPath(s)
	if err != nil {
		return nil, err
	}
	return ShapeFromPaths(ps), nil
}

// MustParseSVGShape parses SVG path data into a shape and panics on error.
func MustParseSVGShape(s string) Shape {
	return ShapeFromPaths(MustParseSVGPath(s))
}

////////////////////////////////////////////////////////////////

type dec float64

func (f dec) String() string {
	s := string(minify.Decimal([]byte(fmt.Sprintf("%.*f", Precision, float64(f))), Precision))
	if s == "" || s == "-0" {
		return "0"
	}
	return s
}

func writePoints(sb *strings.Builder, cmd byte, ps ...Point) {
	sb.WriteByte(cmd)
	for i, p := range ps {
		if i != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "%v %v", dec(p.X), dec(p.Y))
	}
}

// SVG returns the path in SVG path data notation.
func (p *Path) SVG() string {
	sb := &strings.Builder{}
	writePoints(sb, 'M', p.Initial())
	for _, c := range p.curves {
		switch c := c.(type) {
		case Line:
			writePoints(sb, 'L', c.P1)
		case Quad:
			writePoints(sb, 'Q', c.P1, c.P2)
		case Cube:
			writePoints(sb, 'C', c.P1, c.P2, c.P3)
		case SBasisCurve:
			cube := c.Cube()
			writePoints(sb, 'C', cube.P1, cube.P2, cube.P3)
		case Arc:
			delta := c.Theta1 - c.Theta0
			large := math.Pi < math.Abs(delta)
			sweep := 0.0 < delta
			if 2.0*math.Pi-Epsilon < math.Abs(delta) {
				// a full ellipse is written as two halves
				half := c.Portion(0.0, 0.5).(Arc)
				fmt.Fprintf(sb, "A%v %v %v 0 %s ", dec(math.Abs(c.RX)), dec(math.Abs(c.RY)), dec(c.Rot*180.0/math.Pi), flag(sweep))
				fmt.Fprintf(sb, "%v %v", dec(half.Final().X), dec(half.Final().Y))
				large = false
			}
			fmt.Fprintf(sb, "A%v %v %v %s %s ", dec(math.Abs(c.RX)), dec(math.Abs(c.RY)), dec(c.Rot*180.0/math.Pi), flag(large), flag(sweep))
			fmt.Fprintf(sb, "%v %v", dec(c.Final().X), dec(c.Final().Y))
		default:
			panic(fmt.Sprintf("bug: unknown curve %T", c))
		}
	}
	if p.closed {
		sb.WriteByte('z')
	}
	return sb.String()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// SVG returns the regions of the shape in SVG path data notation.
func (s Shape) SVG() string {
	sb := &strings.Builder{}
	for _, r := range s {
		sb.WriteString(r.Path.SVG())
	}
	return sb.String()
}

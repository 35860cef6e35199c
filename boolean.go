package geom

import (
	"fmt"
	"math"
	"slices"
)

// Op is a boolean operation between two shapes.
type Op int

// see Op
const (
	OpUnion           Op = iota // A or B
	OpIntersect                 // A and B
	OpSubtract                  // A and not B
	OpSubtractReverse           // B and not A
	OpXor                       // A or B, but not both
)

var opNames = map[Op]string{
	OpUnion:           "union",
	OpIntersect:       "intersect",
	OpSubtract:        "subtract",
	OpSubtractReverse: "subtract-reverse",
	OpXor:             "xor",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// ParseOp returns the operation by its name as returned by Op.String.
func ParseOp(s string) (Op, error) {
	for op, name := range opNames {
		if name == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown boolean operation %q", s)
}

// Union returns the union of a and b using DefaultEngine.
func Union(a, b Shape) Shape {
	return DefaultEngine.Combine(OpUnion, a, b)
}

// Intersect returns the intersection of a and b using DefaultEngine.
func Intersect(a, b Shape) Shape {
	return DefaultEngine.Combine(OpIntersect, a, b)
}

// Subtract returns a minus b using DefaultEngine.
func Subtract(a, b Shape) Shape {
	return DefaultEngine.Combine(OpSubtract, a, b)
}

// SubtractReverse returns b minus a using DefaultEngine.
func SubtractReverse(a, b Shape) Shape {
	return DefaultEngine.Combine(OpSubtractReverse, a, b)
}

// Xor returns the symmetric difference of a and b using DefaultEngine.
func Xor(a, b Shape) Shape {
	return DefaultEngine.Combine(OpXor, a, b)
}

type combineState int

const (
	selectStart combineState = iota
	walk
	closeLoop
	classifyLeftovers
	done
)

// Combine returns the boolean operation op of a and b, where the inside of each shape is given by the nonzero winding rule over its normalised regions. Boundaries that touch or coincide without crossing are kept once where both shapes fill the same side and dropped otherwise, so that combining a shape with itself is idempotent. The regions of the result are oriented with positive area for fills and negative area for holes.
func (e *Engine) Combine(op Op, a, b Shape) Shape {
	switch op {
	case OpUnion, OpIntersect, OpSubtract, OpSubtractReverse:
		return e.combine(op, a.Normalize(), b.Normalize())
	case OpXor:
		a, b = a.Normalize(), b.Normalize()
		return append(e.combine(OpSubtract, a, b), e.combine(OpSubtractReverse, a, b)...)
	}
	e.logger().Debug("unknown boolean operation", "op", op)
	return nil
}

// combine walks the boundaries of both shapes from crossing to crossing. Subtraction is an intersection with the reversed subtrahend, since reversing a region turns it into its complement.
func (e *Engine) combine(op Op, a, b Shape) Shape {
	log := e.logger()
	intersectLike := op != OpUnion
	as := orientedPaths(a, op == OpSubtractReverse)
	bs := orientedPaths(b, op == OpSubtract)
	ps := slices.Concat(as, bs)
	cs := e.CrossingSet(as, bs)

	var out Shape
	visited := make([]bool, cs.Len())
	var start, cur, steps int
	var loop *Path

	state := selectStart
	for state != done {
		switch state {
		case selectStart:
			start = slices.Index(visited, false)
			if start == -1 {
				state = classifyLeftovers
				break
			}
			cur, steps = start, 0
			loop = &Path{}
			state = walk

		case walk:
			c := cs.Crossing(cur)
			visited[cur] = true

			// follow A when it leaves B for unions, or when it enters B for intersections
			p := c.B
			if c.Dir != intersectLike {
				p = c.A
			}
			next := cs.Next(p, cur)
			f, t := c.T(p), cs.Crossing(next).T(p)
			if next == cur {
				t = f + float64(ps[p].Size())
			}
			loop.join(ps[p].Portion(f, t))

			cur = next
			steps++
			if cur == start {
				state = closeLoop
			} else if visited[cur] || cs.Len() < steps {
				log.Debug("aborted boolean loop", "op", op, "start", start, "crossing", cur, "steps", steps)
				state = selectStart
			}

		case closeLoop:
			loop.Close()
			out = append(out, Region{loop, 0.0 < loop.Area()})
			state = selectStart

		case classifyLeftovers:
			for i, p := range ps {
				if len(cs.OnPath(i)) != 0 || p.Empty() {
					continue
				}
				fromA := i < len(as)
				if e.keepLeftover(op, p, fromA, a, b) {
					q := p.Copy()
					out = append(out, Region{q, 0.0 < q.Area()})
				}
			}
			state = done
		}
	}
	return out
}

// keepLeftover decides whether path p without crossings is part of the result. It is classified at the first sample on its boundary that does not lie on the other shape's boundary. When every sample does, p coincides with the other boundary and is kept from a only if both shapes fill the same side of it.
func (e *Engine) keepLeftover(op Op, p *Path, fromA bool, a, b Shape) bool {
	other, reversed := b, op == OpSubtract
	if !fromA {
		other, reversed = a, op == OpSubtractReverse
	}
	tol := boundaryTolerance * e.tolerance().Flatness

	n := p.Size()
	for _, u := range []float64{0.5, 0.25, 0.75} {
		for k := range n {
			pt := p.PointAt(float64(k) + u)
			if onBoundary(other, pt, tol) {
				continue
			}
			inside := other.Contains(pt, NonZero) != reversed
			keep := inside == (op != OpUnion)
			e.logger().Debug("leftover path", "op", op, "fromA", fromA, "inside", inside, "keep", keep)
			return keep
		}
	}

	// p lies on the boundary of the other shape, compare the sides they fill
	seg := p.Segment(0)
	for k := 1; k < n; k++ {
		if c := p.Segment(k); seg.Final().Sub(seg.Initial()).Length() < c.Final().Sub(c.Initial()).Length() {
			seg = c
		}
	}
	d := tangentAt(seg, 0.5).Norm(1.0)
	r := p.Bounds()
	delta := math.Min(leftoverOffset*e.tolerance().Flatness, 0.01*math.Max(r.Size().X, r.Size().Y))
	left := seg.PointAt(0.5).Add(d.Rot90CCW().Mul(delta))
	same := other.Contains(left, NonZero) != reversed
	e.logger().Debug("coincident leftover path", "op", op, "fromA", fromA, "same", same)
	return same && fromA
}

const (
	// boundaryTolerance is the distance in flatness tolerances below which a point lies on a boundary.
	boundaryTolerance = 16.0

	// leftoverOffset is the distance in flatness tolerances from a coincident boundary at which its fill side is tested.
	leftoverOffset = 1000.0
)

// onBoundary returns true if pt lies within tol of the boundary of s.
func onBoundary(s Shape, pt Point, tol float64) bool {
	for _, r := range s {
		if !r.Path.Bounds().ExpandedByMargin(tol).ContainsPoint(pt.r2()) {
			continue
		}
		for _, c := range r.Path.Segments() {
			if !c.BoundsFast().ExpandedByMargin(tol).ContainsPoint(pt.r2()) {
				continue
			}
			for _, t := range []float64{0.0, 0.5, 1.0} {
				if pt.Sub(c.PointAt(project(c, pt, t))).Length() <= tol {
					return true
				}
			}
		}
	}
	return false
}

func orientedPaths(s Shape, reverse bool) []*Path {
	ps := make([]*Path, len(s))
	for i, r := range s {
		if reverse {
			ps[i] = r.Path.Reverse()
		} else {
			ps[i] = r.Path
		}
	}
	return ps
}

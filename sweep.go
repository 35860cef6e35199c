package geom

import (
	"cmp"
	"slices"

	"github.com/golang/geo/r2"
)

type sweepEvent struct {
	x    float64
	open bool
	set  int // 0 for a, 1 for b
	idx  int
}

func sweepEvents(sets ...[]r2.Rect) []sweepEvent {
	n := 0
	for _, rs := range sets {
		n += 2 * len(rs)
	}
	events := make([]sweepEvent, 0, n)
	for set, rs := range sets {
		for i, r := range rs {
			if r.IsEmpty() {
				continue
			}
			events = append(events, sweepEvent{r.X.Lo, true, set, i})
			events = append(events, sweepEvent{r.X.Hi, false, set, i})
		}
	}
	slices.SortStableFunc(events, func(a, b sweepEvent) int {
		if c := cmp.Compare(a.x, b.x); c != 0 {
			return c
		} else if a.open != b.open {
			// open before close so that touching rectangles overlap
			if a.open {
				return -1
			}
			return 1
		}
		return 0
	})
	return events
}

// removeIndex removes the first occurrence of idx from the unordered list.
func removeIndex(active []int, idx int) []int {
	for i, j := range active {
		if j == idx {
			active[i] = active[len(active)-1]
			return active[:len(active)-1]
		}
	}
	return active
}

// SweepPairs returns for each rectangle in a the sorted indices of the rectangles in b that overlap it. Touching rectangles overlap and empty rectangles overlap nothing.
func SweepPairs(a, b []r2.Rect) [][]int {
	pairs := make([][]int, len(a))
	var active [2][]int
	rects := [2][]r2.Rect{a, b}
	for _, e := range sweepEvents(a, b) {
		if !e.open {
			active[e.set] = removeIndex(active[e.set], e.idx)
			continue
		}
		other := 1 - e.set
		y := rects[e.set][e.idx].Y
		for _, j := range active[other] {
			if y.Intersects(rects[other][j].Y) {
				if e.set == 0 {
					pairs[e.idx] = append(pairs[e.idx], j)
				} else {
					pairs[j] = append(pairs[j], e.idx)
				}
			}
		}
		active[e.set] = append(active[e.set], e.idx)
	}
	for _, js := range pairs {
		slices.Sort(js)
	}
	return pairs
}

// SweepSelf returns for each rectangle i the sorted indices j > i of the rectangles that overlap it.
func SweepSelf(rs []r2.Rect) [][]int {
	pairs := make([][]int, len(rs))
	var active []int
	for _, e := range sweepEvents(rs) {
		if !e.open {
			active = removeIndex(active, e.idx)
			continue
		}
		y := rs[e.idx].Y
		for _, j := range active {
			if y.Intersects(rs[j].Y) {
				i, j := min(e.idx, j), max(e.idx, j)
				pairs[i] = append(pairs[i], j)
			}
		}
		active = append(active, e.idx)
	}
	for _, js := range pairs {
		slices.Sort(js)
	}
	return pairs
}

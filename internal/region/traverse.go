package region

import "halo-fixer/pkg/geometry"

// Connectivity selects the neighborhood used when walking the grid.
type Connectivity int

const (
	// FourConnected links orthogonal neighbors only.
	FourConnected Connectivity = 4
	// EightConnected links orthogonal and diagonal neighbors.
	EightConnected Connectivity = 8
)

var (
	fourOffsets = [...]geometry.PointInt{
		{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
	}
	eightOffsets = [...]geometry.PointInt{
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
)

// Offsets returns a fresh copy of the neighbor offsets. Any value other
// than FourConnected means eight-connected.
func (c Connectivity) Offsets() []geometry.PointInt {
	if c == FourConnected {
		out := fourOffsets
		return out[:]
	}
	out := eightOffsets
	return out[:]
}

func (c Connectivity) String() string {
	if c == FourConnected {
		return "4-connected"
	}
	return "8-connected"
}

// visitSet is the per-call visited arena: one bit per pixel.
type visitSet []uint64

func newVisitSet(n int) visitSet { return make(visitSet, (n+63)/64) }

func (v visitSet) has(i int) bool { return v[i>>6]&(1<<(uint(i)&63)) != 0 }

func (v visitSet) mark(i int) { v[i>>6] |= 1 << (uint(i) & 63) }

// traversal is the one walking primitive behind flood fill, component
// selection and labeling. It owns its visited arena; callers create one per
// operation and drop it afterwards.
type traversal struct {
	grid    *Grid
	match   Classifier
	offsets []geometry.PointInt
	visited visitSet
}

func newTraversal(g *Grid, match Classifier, offsets []geometry.PointInt) *traversal {
	return &traversal{
		grid:    g,
		match:   match,
		offsets: offsets,
		visited: newVisitSet(g.Len()),
	}
}

// claim marks idx visited and reports whether it starts or extends a region.
// A pixel is examined at most once per traversal; pixels that do not
// qualify stay marked so they are never re-examined.
func (t *traversal) claim(idx int) bool {
	if t.visited.has(idx) {
		return false
	}
	t.visited.mark(idx)
	return t.match.Match(t.grid.atIndex(idx))
}

// trace walks breadth-first from already-claimed seeds and returns every
// reached pixel in visiting order, seeds first. Classification happens
// here; no pixel is modified, so the result depends only on reachability.
func (t *traversal) trace(seeds []int) []int {
	queue := make([]int, 0, max(len(seeds), 16))
	queue = append(queue, seeds...)

	for head := 0; head < len(queue); head++ {
		x, y := t.grid.Coords(queue[head])
		for _, d := range t.offsets {
			nx, ny := x+d.X, y+d.Y
			if !t.grid.InBounds(nx, ny) {
				continue
			}
			n := t.grid.Index(nx, ny)
			if t.claim(n) {
				queue = append(queue, n)
			}
		}
	}
	return queue
}

// fill runs one multi-source walk from the qualifying candidates.
func (t *traversal) fill(candidates []int) []int {
	var seeds []int
	for _, idx := range candidates {
		if idx < 0 || idx >= t.grid.Len() {
			continue
		}
		if t.claim(idx) {
			seeds = append(seeds, idx)
		}
	}
	if len(seeds) == 0 {
		return nil
	}
	return t.trace(seeds)
}

// scan visits the whole grid in row-major order and hands every maximal
// region to fn in discovery order.
func (t *traversal) scan(fn func(region []int)) {
	n := t.grid.Len()
	for idx := 0; idx < n; idx++ {
		if !t.claim(idx) {
			continue
		}
		fn(t.trace([]int{idx}))
	}
}

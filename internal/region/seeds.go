package region

import "halo-fixer/pkg/geometry"

// SeedSource yields candidate starting pixels for a flood fill. Candidates
// that do not satisfy the fill's classifier are dropped by the traversal,
// so sources need not pre-filter.
type SeedSource interface {
	Seeds(g *Grid) []int
}

// SeedFunc adapts a plain function to SeedSource.
type SeedFunc func(g *Grid) []int

// Seeds calls f(g).
func (f SeedFunc) Seeds(g *Grid) []int { return f(g) }

// BorderSeeds offers every pixel on the four edges of the grid.
type BorderSeeds struct{}

// Seeds implements SeedSource.
func (BorderSeeds) Seeds(g *Grid) []int {
	w, h := g.Width(), g.Height()
	if w == 0 || h == 0 {
		return nil
	}
	seeds := make([]int, 0, 2*(w+h))
	for x := 0; x < w; x++ {
		seeds = append(seeds, g.Index(x, 0), g.Index(x, h-1))
	}
	for y := 0; y < h; y++ {
		seeds = append(seeds, g.Index(0, y), g.Index(w-1, y))
	}
	return seeds
}

// CornerSeeds offers the four corner pixels only.
type CornerSeeds struct{}

// Seeds implements SeedSource.
func (CornerSeeds) Seeds(g *Grid) []int {
	w, h := g.Width(), g.Height()
	if w == 0 || h == 0 {
		return nil
	}
	return []int{
		g.Index(0, 0),
		g.Index(w-1, 0),
		g.Index(0, h-1),
		g.Index(w-1, h-1),
	}
}

// PointSeeds offers explicit coordinates. Points outside the grid are skipped.
type PointSeeds []geometry.PointInt

// Seeds implements SeedSource.
func (ps PointSeeds) Seeds(g *Grid) []int {
	seeds := make([]int, 0, len(ps))
	for _, p := range ps {
		if g.InBounds(p.X, p.Y) {
			seeds = append(seeds, g.Index(p.X, p.Y))
		}
	}
	return seeds
}

package region

import "halo-fixer/pkg/geometry"

// AlphaBounds returns the smallest rectangle holding every pixel with
// non-zero alpha. ok is false when the grid has no visible pixel.
func AlphaBounds(g *Grid) (r geometry.RectInt, ok bool) {
	left, top := g.Width(), g.Height()
	right, bottom := -1, -1

	pix, stride := g.img.Pix, g.img.Stride
	for y := 0; y < g.Height(); y++ {
		row := pix[y*stride : y*stride+g.Width()*4]
		for x := 0; x < g.Width(); x++ {
			if row[x*4+3] == 0 {
				continue
			}
			left = min(left, x)
			right = max(right, x)
			top = min(top, y)
			bottom = max(bottom, y)
		}
	}
	if right < 0 {
		return geometry.RectInt{}, false
	}
	return geometry.RectFromEdges(left, top, right+1, bottom+1), true
}

// PeelBounds is AlphaBounds grown by one pixel on each side and clamped to
// the grid, so pixels on the edge of the visible area see their
// transparent neighbors.
func PeelBounds(g *Grid) (geometry.RectInt, bool) {
	r, ok := AlphaBounds(g)
	if !ok {
		return geometry.RectInt{}, false
	}
	return r.Expand(1).Intersect(g.Bounds()), true
}

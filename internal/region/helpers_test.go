package region

import (
	"image/color"

	"halo-fixer/pkg/geometry"
)

var (
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red         = color.NRGBA{R: 200, G: 0, B: 0, A: 255}
	fringe      = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	slate       = color.NRGBA{R: 0x1f, G: 0x29, B: 0x37, A: 255}
	transparent = color.NRGBA{}
)

func solidGrid(w, h int, c color.NRGBA) *Grid {
	g := NewGrid(w, h)
	paint(g, g.Bounds(), c)
	return g
}

func paint(g *Grid, r geometry.RectInt, c color.NRGBA) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			g.Set(x, y, c)
		}
	}
}

// ring paints the one-pixel outline of r.
func ring(g *Grid, r geometry.RectInt, c color.NRGBA) {
	for x := r.X; x < r.Right(); x++ {
		g.Set(x, r.Y, c)
		g.Set(x, r.Bottom()-1, c)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		g.Set(r.X, y, c)
		g.Set(r.Right()-1, y, c)
	}
}

func countAlpha(g *Grid, a uint8) int {
	n := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y).A == a {
				n++
			}
		}
	}
	return n
}

func reversed(in []geometry.PointInt) []geometry.PointInt {
	out := make([]geometry.PointInt, len(in))
	for i, p := range in {
		out[len(in)-1-i] = p
	}
	return out
}

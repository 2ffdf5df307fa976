// Package region implements the pixel classification and region extraction
// engine: flood fill, connected-component selection, iterative border
// peeling and alpha-bleed correction over an in-memory RGBA grid.
//
// Every operation runs synchronously over a Grid owned by the caller and
// mutates it in place. Nothing in this package keeps state between calls.
package region

import (
	"image"
	"image/color"

	"halo-fixer/pkg/geometry"
)

// Grid is a fixed-size, non-premultiplied RGBA pixel grid with
// random-access get/set. Coordinates always start at (0, 0).
type Grid struct {
	img    *image.NRGBA
	width  int
	height int
}

// NewGrid allocates a fully transparent width x height grid.
// Negative sizes are treated as zero.
func NewGrid(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	return &Grid{
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
}

// FromImage copies src into a new grid. NRGBA sources are copied byte for
// byte so the RGB stored under zero alpha survives; other image types go
// through color.NRGBAModel.
func FromImage(src image.Image) *Grid {
	b := src.Bounds()
	g := NewGrid(b.Dx(), b.Dy())

	if n, ok := src.(*image.NRGBA); ok {
		rowLen := g.width * 4
		for y := 0; y < g.height; y++ {
			s := n.PixOffset(b.Min.X, b.Min.Y+y)
			d := y * g.img.Stride
			copy(g.img.Pix[d:d+rowLen], n.Pix[s:s+rowLen])
		}
		return g
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			g.Set(x, y, c)
		}
	}
	return g
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g *Grid) Height() int { return g.height }

// Len returns the number of pixels in the grid.
func (g *Grid) Len() int { return g.width * g.height }

// Bounds returns the grid rectangle.
func (g *Grid) Bounds() geometry.RectInt {
	return geometry.NewRectInt(0, 0, g.width, g.height)
}

// Image exposes the backing image. Writes to it are visible through the grid.
func (g *Grid) Image() *image.NRGBA { return g.img }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	copy(c.img.Pix, g.img.Pix)
	return c
}

// InBounds reports whether (x, y) addresses a pixel of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index converts (x, y) to a row-major pixel index.
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Coords converts a row-major pixel index back to (x, y).
func (g *Grid) Coords(idx int) (x, y int) { return idx % g.width, idx / g.width }

// At returns the pixel at (x, y). The caller guarantees the coordinates are in bounds.
func (g *Grid) At(x, y int) color.NRGBA {
	return g.atOffset(y*g.img.Stride + x*4)
}

// Set stores the pixel at (x, y). The caller guarantees the coordinates are in bounds.
func (g *Grid) Set(x, y int, c color.NRGBA) {
	g.setOffset(y*g.img.Stride+x*4, c)
}

func (g *Grid) atIndex(idx int) color.NRGBA {
	x, y := g.Coords(idx)
	return g.At(x, y)
}

func (g *Grid) setIndex(idx int, c color.NRGBA) {
	x, y := g.Coords(idx)
	g.Set(x, y, c)
}

func (g *Grid) atOffset(i int) color.NRGBA {
	p := g.img.Pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (g *Grid) setOffset(i int, c color.NRGBA) {
	p := g.img.Pix[i : i+4 : i+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

package region

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"halo-fixer/pkg/geometry"
)

func TestFixAlphaBleedNoopWhenAlreadyClean(t *testing.T) {
	g := NewGrid(4, 4)
	paint(g, g.Bounds(), color.NRGBA{R: slate.R, G: slate.G, B: slate.B})
	paint(g, geometry.NewRectInt(1, 1, 2, 2), red)
	before := g.Clone()

	assert.Equal(t, 0, FixAlphaBleed(g, slate))
	assert.Empty(t, cmp.Diff(before.Image().Pix, g.Image().Pix))
}

func TestFixAlphaBleedRewritesHiddenWhite(t *testing.T) {
	g := solidGrid(4, 4, red)
	hidden := color.NRGBA{R: 255, G: 255, B: 255, A: 0}
	for _, p := range []geometry.PointInt{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}, {X: 3, Y: 3}} {
		g.Set(p.X, p.Y, hidden)
	}
	g.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 1}) // visible, must stay

	n := FixAlphaBleed(g, slate)

	assert.Equal(t, 4, n)
	assert.Equal(t, color.NRGBA{R: slate.R, G: slate.G, B: slate.B}, g.At(3, 3))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 1}, g.At(1, 1))
	assert.Equal(t, red, g.At(2, 2))
}

func TestFillTransparentCountsEveryTransparentPixel(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, red)
	g.Set(0, 0, color.NRGBA{R: slate.R, G: slate.G, B: slate.B})

	assert.Equal(t, 8, FillTransparent(g, slate))
	assert.Equal(t, 8, countAlpha(g, 0))
	assert.Equal(t, color.NRGBA{R: slate.R, G: slate.G, B: slate.B}, g.At(2, 2))
}

func TestSolidify(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, red)
	g.Set(1, 0, color.NRGBA{R: 9, G: 9, B: 9, A: 40})

	assert.Equal(t, 4, Solidify(g, slate))
	assert.Equal(t, slate, g.At(2, 1))
	assert.Equal(t, red, g.At(0, 0))
	assert.Equal(t, uint8(40), g.At(1, 0).A, "partially transparent pixels are not solidified")
}

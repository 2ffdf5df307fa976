package region

import (
	"image/color"

	"halo-fixer/pkg/colorutil"
)

// FixAlphaBleed rewrites the hidden RGB of every fully transparent pixel to
// rgb, keeping alpha at zero, so resampling cannot pull a stale color into
// visible pixels. Pixels already holding rgb are left alone and not counted.
func FixAlphaBleed(g *Grid, rgb color.NRGBA) int {
	return rewriteTransparent(g, func(c color.NRGBA) (color.NRGBA, bool) {
		if colorutil.SameRGB(c, rgb) {
			return c, false
		}
		return colorutil.WithAlpha(rgb, 0), true
	})
}

// FillTransparent stores rgb under every fully transparent pixel and counts
// every such pixel, changed or not.
func FillTransparent(g *Grid, rgb color.NRGBA) int {
	return rewriteTransparent(g, func(color.NRGBA) (color.NRGBA, bool) {
		return colorutil.WithAlpha(rgb, 0), true
	})
}

// Solidify turns every fully transparent pixel into opaque rgb.
func Solidify(g *Grid, rgb color.NRGBA) int {
	return rewriteTransparent(g, func(color.NRGBA) (color.NRGBA, bool) {
		return colorutil.WithAlpha(rgb, 255), true
	})
}

func rewriteTransparent(g *Grid, fn func(color.NRGBA) (color.NRGBA, bool)) int {
	n := 0
	pix, stride := g.img.Pix, g.img.Stride
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			off := y*stride + x*4
			if pix[off+3] != 0 {
				continue
			}
			c, ok := fn(g.atOffset(off))
			if !ok {
				continue
			}
			g.setOffset(off, c)
			n++
		}
	}
	return n
}

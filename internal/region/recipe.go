package region

import (
	"image/color"

	"halo-fixer/pkg/colorutil"
)

// RobustOptions parameterizes RobustRecolor.
type RobustOptions struct {
	Tolerance     int // per-channel match distance for the background flood
	Gray          LightGray
	NeighborAlpha uint8
	MaxIterations int
}

// RobustRecolor removes a light ring around a motif sitting on a solid
// background: the background connected to the border is made transparent,
// the light-gray fringe touching it is peeled, and the result is flattened
// back onto opaque rgb.
func RobustRecolor(g *Grid, rgb color.NRGBA, opts RobustOptions) PeelStats {
	FloodFill(g, FillOptions{
		Seeds:        BorderSeeds{},
		Match:        NearColor{Color: rgb, Tolerance: opts.Tolerance},
		Connectivity: FourConnected,
		Transform:    Erase{Color: colorutil.Transparent},
	})
	stats := PeelLightGray(g, opts.Gray, opts.NeighborAlpha, opts.MaxIterations)
	CompositeOver(g, rgb)
	return stats
}

// PeelRecolorOptions parameterizes PeelAndRecolor.
type PeelRecolorOptions struct {
	Min           int // channel floor for the Bright classifier
	MaxIterations int
}

// PeelAndRecolor treats the exact background color reachable from the
// corners as transparent, peels bright pixels touching it, then fills every
// transparent pixel back with opaque rgb.
func PeelAndRecolor(g *Grid, rgb color.NRGBA, opts PeelRecolorOptions) PeelStats {
	ClearBackground(g, rgb, 0)
	stats := Peel(g, PeelOptions{
		Match:         Bright{Min: opts.Min},
		NeighborAlpha: 0,
		MaxIterations: opts.MaxIterations,
		Transform:     Erase{Color: rgb},
	})
	Solidify(g, rgb)
	return stats
}

// CompositeOver alpha-blends every pixel over an opaque background, leaving
// the whole grid opaque. Returns the number of pixels that were not already
// opaque.
func CompositeOver(g *Grid, bg color.NRGBA) int {
	n := 0
	pix, stride := g.img.Pix, g.img.Stride
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			off := y*stride + x*4
			a := uint32(pix[off+3])
			if a == 255 {
				continue
			}
			c := g.atOffset(off)
			g.setOffset(off, color.NRGBA{
				R: blend(c.R, bg.R, a),
				G: blend(c.G, bg.G, a),
				B: blend(c.B, bg.B, a),
				A: 255,
			})
			n++
		}
	}
	return n
}

func blend(fg, bg uint8, a uint32) uint8 {
	return uint8((uint32(fg)*a + uint32(bg)*(255-a) + 127) / 255)
}

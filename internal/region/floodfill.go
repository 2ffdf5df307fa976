package region

import (
	"image/color"

	"halo-fixer/pkg/geometry"
)

// FillOptions parameterizes a seeded flood fill.
type FillOptions struct {
	Seeds        SeedSource
	Match        Classifier
	Connectivity Connectivity
	Transform    Transform // nil means ClearAlpha
}

// Stats reports what an operation touched.
type Stats struct {
	Matched int // pixels selected by the traversal
	Changed int // selected pixels whose value the transform actually changed
}

// FloodFill transforms every pixel reachable from a qualifying seed through
// a chain of qualifying pixels. The selected set is computed completely
// before any pixel is rewritten. No qualifying seed leaves the grid untouched.
func FloodFill(g *Grid, opts FillOptions) Stats {
	return floodFill(g, opts, opts.Connectivity.Offsets())
}

func floodFill(g *Grid, opts FillOptions, offsets []geometry.PointInt) Stats {
	if g.Len() == 0 || opts.Seeds == nil || opts.Match == nil {
		return Stats{}
	}
	t := newTraversal(g, opts.Match, offsets)
	region := t.fill(opts.Seeds.Seeds(g))
	if len(region) == 0 {
		return Stats{}
	}
	return Stats{
		Matched: len(region),
		Changed: applyAll(g, region, opts.Transform),
	}
}

// ClearEdgeWhite makes transparent the near-white background connected
// (8-way) to the image border.
func ClearEdgeWhite(g *Grid, threshold int) Stats {
	return FloodFill(g, FillOptions{
		Seeds:        BorderSeeds{},
		Match:        EdgeWhite{Threshold: threshold},
		Connectivity: EightConnected,
		Transform:    ClearAlpha{},
	})
}

// RecolorEdgeWhite paints the near-white background connected (8-way) to the
// image border with an opaque replacement color.
func RecolorEdgeWhite(g *Grid, threshold int, rgb color.NRGBA) Stats {
	return FloodFill(g, FillOptions{
		Seeds:        BorderSeeds{},
		Match:        EdgeWhite{Threshold: threshold},
		Connectivity: EightConnected,
		Transform:    Recolor{Color: rgb},
	})
}

// ClearBackground makes transparent the region of pixels within tolerance of
// target that is 4-connected to one of the four corners.
func ClearBackground(g *Grid, target color.NRGBA, tolerance int) Stats {
	return FloodFill(g, FillOptions{
		Seeds:        CornerSeeds{},
		Match:        NearColor{Color: target, Tolerance: tolerance},
		Connectivity: FourConnected,
		Transform:    ClearAlpha{},
	})
}

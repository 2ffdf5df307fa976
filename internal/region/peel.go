package region

import (
	"halo-fixer/pkg/colorutil"
	"halo-fixer/pkg/geometry"
)

// PeelOptions parameterizes Peel.
type PeelOptions struct {
	Match Classifier
	// NeighborAlpha is the highest alpha a neighbor may have and still count
	// as transparent. Partially transparent neighbors trigger a peel when
	// their alpha is at or below it.
	NeighborAlpha uint8
	// MaxIterations caps the number of clearing passes. Zero or less peels nothing.
	MaxIterations int
	// Transform rewrites each peeled pixel; its alpha is then forced to 0.
	// nil means ClearAlpha.
	Transform Transform
}

// PeelStats reports the outcome of Peel.
type PeelStats struct {
	Cleared    int
	Iterations int // completed clearing passes; the final no-op pass is not counted
}

// Peel erodes a fringe one ring per pass. Each pass reads the current grid,
// collects every visible matching pixel inside the padded alpha bounding box
// that has an 8-neighbor with alpha <= NeighborAlpha, then clears them all at
// once. Pixels cleared in one pass become transparent neighbors for the next.
// It stops at the first pass that finds nothing, or after MaxIterations
// passes. A grid with no visible pixel is left untouched.
func Peel(g *Grid, opts PeelOptions) PeelStats {
	var stats PeelStats
	if opts.Match == nil || opts.MaxIterations <= 0 {
		return stats
	}
	box, ok := PeelBounds(g)
	if !ok {
		return stats
	}

	tf := opts.Transform
	if tf == nil {
		tf = ClearAlpha{}
	}
	offsets := EightConnected.Offsets()
	frame := g.Bounds()
	var batch []int
	for stats.Iterations < opts.MaxIterations {
		batch = batch[:0]
		for y := box.Y; y < box.Bottom(); y++ {
			for x := box.X; x < box.Right(); x++ {
				c := g.At(x, y)
				if c.A == 0 || !opts.Match.Match(c) {
					continue
				}
				if touchesTransparent(g, frame, geometry.PointInt{X: x, Y: y}, offsets, opts.NeighborAlpha) {
					batch = append(batch, g.Index(x, y))
				}
			}
		}
		if len(batch) == 0 {
			break
		}

		for _, idx := range batch {
			g.setIndex(idx, colorutil.WithAlpha(tf.Apply(g.atIndex(idx)), 0))
		}
		stats.Cleared += len(batch)
		stats.Iterations++
	}
	return stats
}

func touchesTransparent(g *Grid, frame geometry.RectInt, p geometry.PointInt, offsets []geometry.PointInt, limit uint8) bool {
	for _, d := range offsets {
		n := p.Add(d)
		if !frame.Contains(n) {
			continue
		}
		if g.At(n.X, n.Y).A <= limit {
			return true
		}
	}
	return false
}

// PeelLightGray peels light-gray fringe pixels that touch transparency.
func PeelLightGray(g *Grid, params LightGray, neighborAlpha uint8, maxIterations int) PeelStats {
	return Peel(g, PeelOptions{
		Match:         params,
		NeighborAlpha: neighborAlpha,
		MaxIterations: maxIterations,
	})
}

package region

import "halo-fixer/pkg/geometry"

// Component is one maximal connected set of qualifying pixels.
type Component struct {
	Pixels []int // row-major indices in visiting order
	Bounds geometry.RectInt
}

// Size returns the number of pixels in the component.
func (c Component) Size() int { return len(c.Pixels) }

// ComponentOptions parameterizes LargestComponent.
type ComponentOptions struct {
	Match        Classifier
	Transform    Transform    // nil means ClearAlpha
	Connectivity Connectivity // zero value means eight-connected
}

// LargestComponent partitions every qualifying pixel of the grid into
// connected components, keeps the largest one and applies the transform to
// it alone. Components are discovered in row-major scan order and a later
// component must be strictly larger to win, so ties go to the component
// whose first pixel comes first in that order. Stats.Matched is the size of
// the winning component; zero when nothing qualifies.
func LargestComponent(g *Grid, opts ComponentOptions) Stats {
	if g.Len() == 0 || opts.Match == nil {
		return Stats{}
	}

	var best []int
	t := newTraversal(g, opts.Match, opts.Connectivity.Offsets())
	t.scan(func(region []int) {
		if len(region) > len(best) {
			best = region
		}
	})
	if len(best) == 0 {
		return Stats{}
	}
	return Stats{
		Matched: len(best),
		Changed: applyAll(g, best, opts.Transform),
	}
}

// Components labels the whole grid and returns every component in
// discovery order. The grid is not modified.
func Components(g *Grid, match Classifier, conn Connectivity) []Component {
	if g.Len() == 0 || match == nil {
		return nil
	}

	var out []Component
	t := newTraversal(g, match, conn.Offsets())
	t.scan(func(region []int) {
		out = append(out, Component{Pixels: region, Bounds: regionBounds(g, region)})
	})
	return out
}

// ClearLargestEdgeWhite makes transparent the largest 8-connected region of
// near-white pixels, wherever it sits in the image.
func ClearLargestEdgeWhite(g *Grid, threshold int) Stats {
	return LargestComponent(g, ComponentOptions{
		Match:     EdgeWhite{Threshold: threshold},
		Transform: ClearAlpha{},
	})
}

// ClearLargestLightGray makes transparent the largest 8-connected region of
// light-gray pixels. Used when the halo is enclosed by artwork and never
// reaches the border.
func ClearLargestLightGray(g *Grid, params LightGray) Stats {
	return LargestComponent(g, ComponentOptions{
		Match:     params,
		Transform: ClearAlpha{},
	})
}

func regionBounds(g *Grid, region []int) geometry.RectInt {
	if len(region) == 0 {
		return geometry.RectInt{}
	}
	x0, y0 := g.Coords(region[0])
	left, top, right, bottom := x0, y0, x0+1, y0+1
	for _, idx := range region[1:] {
		x, y := g.Coords(idx)
		left = min(left, x)
		top = min(top, y)
		right = max(right, x+1)
		bottom = max(bottom, y+1)
	}
	return geometry.RectFromEdges(left, top, right, bottom)
}

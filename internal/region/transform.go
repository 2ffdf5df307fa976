package region

import (
	"image/color"

	"halo-fixer/pkg/colorutil"
)

// Transform is the terminal rewrite applied to every pixel of a selected region.
type Transform interface {
	Apply(c color.NRGBA) color.NRGBA
}

// ClearAlpha makes the pixel fully transparent and keeps its RGB.
type ClearAlpha struct{}

// Apply implements Transform.
func (ClearAlpha) Apply(c color.NRGBA) color.NRGBA {
	return colorutil.WithAlpha(c, 0)
}

// Recolor replaces the pixel with an opaque Color.
type Recolor struct {
	Color color.NRGBA
}

// Apply implements Transform.
func (t Recolor) Apply(color.NRGBA) color.NRGBA {
	return colorutil.WithAlpha(t.Color, 255)
}

// Erase makes the pixel fully transparent and stores Color's RGB underneath.
type Erase struct {
	Color color.NRGBA
}

// Apply implements Transform.
func (t Erase) Apply(color.NRGBA) color.NRGBA {
	return colorutil.WithAlpha(t.Color, 0)
}

// applyAll rewrites the listed pixels and returns how many actually changed.
func applyAll(g *Grid, pixels []int, tf Transform) int {
	if tf == nil {
		tf = ClearAlpha{}
	}
	changed := 0
	for _, idx := range pixels {
		c := g.atIndex(idx)
		n := tf.Apply(c)
		if n != c {
			g.setIndex(idx, n)
			changed++
		}
	}
	return changed
}

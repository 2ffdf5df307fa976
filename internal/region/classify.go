package region

import (
	"image/color"

	"halo-fixer/pkg/colorutil"
)

// Classifier decides whether a single pixel belongs to a region.
// Implementations must be pure: same pixel in, same answer out.
type Classifier interface {
	Match(c color.NRGBA) bool
}

// ClassifierFunc adapts a plain function to Classifier.
type ClassifierFunc func(c color.NRGBA) bool

// Match calls f(c).
func (f ClassifierFunc) Match(c color.NRGBA) bool { return f(c) }

// EdgeWhite matches visible near-white background.
type EdgeWhite struct {
	Threshold int // per-channel distance allowed below 255
}

// Match implements Classifier.
func (p EdgeWhite) Match(c color.NRGBA) bool { return IsEdgeWhite(c, p.Threshold) }

// IsEdgeWhite reports whether c is visible (alpha > 0) and every channel is
// at least 255-threshold. Fully transparent pixels are never edge white.
func IsEdgeWhite(c color.NRGBA, threshold int) bool {
	if c.A == 0 {
		return false
	}
	floor := 255 - threshold
	return int(c.R) >= floor && int(c.G) >= floor && int(c.B) >= floor
}

// LightGray matches desaturated, bright, sufficiently opaque pixels: the
// antialiased fringe left around artwork.
type LightGray struct {
	MinValue int `json:"min_value"` // darkest channel must reach this
	MaxDelta int `json:"max_delta"` // max-min channel spread ceiling
	MinAlpha int `json:"min_alpha"` // alpha floor
}

// Match implements Classifier.
func (p LightGray) Match(c color.NRGBA) bool { return IsLightGray(c, p) }

// IsLightGray reports whether alpha >= MinAlpha, min(r,g,b) >= MinValue and
// max(r,g,b)-min(r,g,b) <= MaxDelta.
func IsLightGray(c color.NRGBA, p LightGray) bool {
	if int(c.A) < p.MinAlpha {
		return false
	}
	lo, hi := colorutil.MinMax(c)
	if int(lo) < p.MinValue {
		return false
	}
	return int(hi-lo) <= p.MaxDelta
}

// NearColor matches pixels whose RGB is within Tolerance of Color on every
// channel. Alpha is ignored.
type NearColor struct {
	Color     color.NRGBA
	Tolerance int
}

// Match implements Classifier.
func (p NearColor) Match(c color.NRGBA) bool {
	return colorutil.AbsDiff(c.R, p.Color.R) <= p.Tolerance &&
		colorutil.AbsDiff(c.G, p.Color.G) <= p.Tolerance &&
		colorutil.AbsDiff(c.B, p.Color.B) <= p.Tolerance
}

// Bright matches visible pixels whose every channel is at least Min.
type Bright struct {
	Min int
}

// Match implements Classifier.
func (p Bright) Match(c color.NRGBA) bool {
	return c.A > 0 && int(c.R) >= p.Min && int(c.G) >= p.Min && int(c.B) >= p.Min
}

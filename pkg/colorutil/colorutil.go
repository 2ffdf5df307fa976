// Package colorutil provides shared color utilities for the halo fixer.
package colorutil

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Common colors used throughout the application.
var (
	Black       = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	Transparent = color.NRGBA{}
)

// ParseHex parses "#rrggbb", "rrggbb" or "#rgb" into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 && len(s) != 4 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #rrggbb or #rgb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex formats the RGB part of c as "#rrggbb".
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MinMax returns the smallest and largest of the three color channels.
func MinMax(c color.NRGBA) (lo, hi uint8) {
	lo, hi = c.R, c.R
	for _, v := range [2]uint8{c.G, c.B} {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// SameRGB reports whether two colors have identical RGB channels, ignoring alpha.
func SameRGB(a, b color.NRGBA) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// AbsDiff returns |a-b| for two channel values.
func AbsDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

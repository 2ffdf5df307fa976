// Package analyze reports where light pixels sit in an icon, to tell a
// visible halo apart from stale color hidden under transparency.
package analyze

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/gonum/stat"

	"halo-fixer/internal/region"
	"halo-fixer/pkg/geometry"
)

// Options controls Census.
type Options struct {
	Floor   int // a pixel is light when every channel is above Floor
	Samples int // samples kept per bucket
	// Gray classifies halo candidates for the component count. Zero value
	// disables the count.
	Gray region.LightGray
}

// DefaultOptions returns the census settings used by haloanalyze.
func DefaultOptions() Options {
	return Options{
		Floor:   120,
		Samples: 5,
		Gray:    region.LightGray{MinValue: 160, MaxDelta: 80, MinAlpha: 20},
	}
}

// Sample is one light pixel.
type Sample struct {
	At    geometry.PointInt
	Color color.NRGBA
}

// Report is the outcome of Census.
type Report struct {
	Width, Height int

	Visible            int // light pixels with alpha > 0
	Transparent        int // light pixels with alpha == 0
	VisibleSamples     []Sample
	TransparentSamples []Sample

	// Alpha statistics over every pixel with alpha > 0.
	AlphaMean   float64
	AlphaStdDev float64
	Partial     int // pixels with 0 < alpha < 255

	GrayComponents int // 8-connected light-gray regions
	LargestGray    int // size of the largest one
	LargestBounds  geometry.RectInt
}

// Census scans g once, splitting light pixels by visibility and keeping the
// first samples of each in row-major order.
func Census(g *region.Grid, opts Options) Report {
	rep := Report{Width: g.Width(), Height: g.Height()}

	var alphas []float64
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.At(x, y)
			if c.A > 0 {
				alphas = append(alphas, float64(c.A))
				if c.A < 255 {
					rep.Partial++
				}
			}
			if int(c.R) <= opts.Floor || int(c.G) <= opts.Floor || int(c.B) <= opts.Floor {
				continue
			}
			s := Sample{At: geometry.PointInt{X: x, Y: y}, Color: c}
			if c.A > 0 {
				rep.Visible++
				if len(rep.VisibleSamples) < opts.Samples {
					rep.VisibleSamples = append(rep.VisibleSamples, s)
				}
			} else {
				rep.Transparent++
				if len(rep.TransparentSamples) < opts.Samples {
					rep.TransparentSamples = append(rep.TransparentSamples, s)
				}
			}
		}
	}

	if len(alphas) > 0 {
		rep.AlphaMean, rep.AlphaStdDev = stat.MeanStdDev(alphas, nil)
	}

	if opts.Gray != (region.LightGray{}) {
		comps := region.Components(g, opts.Gray, region.EightConnected)
		rep.GrayComponents = len(comps)
		for _, c := range comps {
			if c.Size() > rep.LargestGray {
				rep.LargestGray = c.Size()
				rep.LargestBounds = c.Bounds
			}
		}
	}
	return rep
}

// Write prints the report in the haloanalyze text layout.
func (r Report) Write(w io.Writer) {
	fmt.Fprintf(w, "Size: %dx%d\n", r.Width, r.Height)
	fmt.Fprintf(w, "Visible light pixels: %d\n", r.Visible)
	for _, s := range r.VisibleSamples {
		fmt.Fprintf(w, "  %s\n", s)
	}
	fmt.Fprintf(w, "Transparent light pixels: %d\n", r.Transparent)
	for _, s := range r.TransparentSamples {
		fmt.Fprintf(w, "  %s\n", s)
	}
	fmt.Fprintf(w, "Alpha: mean=%.1f stddev=%.1f partial=%d\n", r.AlphaMean, r.AlphaStdDev, r.Partial)
	fmt.Fprintf(w, "Light-gray components: %d (largest %d px", r.GrayComponents, r.LargestGray)
	if r.LargestGray > 0 {
		b := r.LargestBounds
		fmt.Fprintf(w, " at %d,%d %dx%d", b.X, b.Y, b.Width, b.Height)
	}
	fmt.Fprintln(w, ")")
}

func (s Sample) String() string {
	return fmt.Sprintf("(%d, %d, (%d, %d, %d, %d))", s.At.X, s.At.Y, s.Color.R, s.Color.G, s.Color.B, s.Color.A)
}

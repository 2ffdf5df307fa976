// Package cvcheck labels halo masks with OpenCV, to cross-check the pure-Go
// component selector on real assets.
package cvcheck

import (
	"sort"

	"gocv.io/x/gocv"

	"halo-fixer/internal/region"
	"halo-fixer/pkg/geometry"
)

// Columns of the stats matrix returned by ConnectedComponentsWithStats.
const (
	statLeft = iota
	statTop
	statWidth
	statHeight
	statArea
)

// Blob is one labeled component.
type Blob struct {
	Bounds geometry.RectInt
	Area   int
}

// Mask builds a single-channel mask with 255 where match accepts the pixel.
// The caller owns the returned Mat.
func Mask(g *region.Grid, match region.Classifier) gocv.Mat {
	mask := gocv.NewMatWithSize(g.Height(), g.Width(), gocv.MatTypeCV8U)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if match.Match(g.At(x, y)) {
				mask.SetUCharAt(y, x, 255)
			} else {
				mask.SetUCharAt(y, x, 0)
			}
		}
	}
	return mask
}

// Components labels every 8-connected region of pixels match accepts and
// returns them largest first. Equal areas keep OpenCV's label order.
func Components(g *region.Grid, match region.Classifier) []Blob {
	if g.Len() == 0 {
		return nil
	}

	mask := Mask(g, match)
	defer mask.Close()

	labels := gocv.NewMat()
	defer labels.Close()
	stats := gocv.NewMat()
	defer stats.Close()
	centroids := gocv.NewMat()
	defer centroids.Close()

	n := gocv.ConnectedComponentsWithStats(mask, &labels, &stats, &centroids)

	// Label 0 is the unmatched background.
	blobs := make([]Blob, 0, max(n-1, 0))
	for i := 1; i < n; i++ {
		blobs = append(blobs, Blob{
			Bounds: geometry.NewRectInt(
				int(stats.GetIntAt(i, statLeft)),
				int(stats.GetIntAt(i, statTop)),
				int(stats.GetIntAt(i, statWidth)),
				int(stats.GetIntAt(i, statHeight)),
			),
			Area: int(stats.GetIntAt(i, statArea)),
		})
	}
	sort.SliceStable(blobs, func(a, b int) bool { return blobs[a].Area > blobs[b].Area })
	return blobs
}

// EdgeWhiteComponents labels near-white regions at the given threshold.
func EdgeWhiteComponents(g *region.Grid, threshold int) []Blob {
	return Components(g, region.EdgeWhite{Threshold: threshold})
}

// Command haloanalyze reports light pixels and halo candidates in an icon.
package main

import (
	"flag"
	"fmt"
	"os"

	"halo-fixer/internal/analyze"
	"halo-fixer/internal/cvcheck"
	"halo-fixer/internal/image"
	"halo-fixer/internal/region"
)

func main() {
	floor := flag.Int("floor", 120, "Channel floor for light pixels")
	samples := flag.Int("samples", 5, "Samples to print per bucket")
	threshold := flag.Int("threshold", 10, "Edge-white threshold for the OpenCV cross-check")
	minValue := flag.Int("min-value", 160, "Light-gray min_value")
	maxDelta := flag.Int("max-delta", 80, "Light-gray max_delta")
	minAlpha := flag.Int("min-alpha", 20, "Light-gray min_alpha")
	noCV := flag.Bool("no-opencv", false, "Skip the OpenCV component cross-check")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("Usage: haloanalyze [-floor 120] [-samples 5] [-threshold 10] <image> [image...]")
		os.Exit(1)
	}

	opts := analyze.Options{
		Floor:   *floor,
		Samples: *samples,
		Gray:    region.LightGray{MinValue: *minValue, MaxDelta: *maxDelta, MinAlpha: *minAlpha},
	}

	failed := false
	for _, path := range flag.Args() {
		asset, err := image.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			failed = true
			continue
		}

		fmt.Printf("\nAnalyzing %s (%s, alpha=%v)\n", path, asset.Format, asset.HasAlpha)
		g := region.FromImage(asset.Image)
		analyze.Census(g, opts).Write(os.Stdout)

		if *noCV {
			continue
		}
		blobs := cvcheck.EdgeWhiteComponents(g, *threshold)
		fmt.Printf("OpenCV edge-white components (threshold %d): %d\n", *threshold, len(blobs))
		for i, b := range blobs {
			if i == *samples {
				fmt.Printf("  ... %d more\n", len(blobs)-i)
				break
			}
			fmt.Printf("  %6d px at %d,%d %dx%d\n", b.Area, b.Bounds.X, b.Bounds.Y, b.Bounds.Width, b.Bounds.Height)
		}
		sel := region.LargestComponent(g.Clone(), region.ComponentOptions{Match: region.EdgeWhite{Threshold: *threshold}})
		fmt.Printf("Region selector largest: %d px\n", sel.Matched)
	}

	if failed {
		os.Exit(1)
	}
}

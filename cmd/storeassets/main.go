// Command storeassets renders the Play Store icon and feature graphic.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	himage "halo-fixer/internal/image"
	"halo-fixer/internal/storeassets"
)

func main() {
	iconPath := flag.String("icon", "assets/images/icon.png", "Source icon")
	bgPath := flag.String("background", "assets/images/android-icon-background.png", "Feature graphic background")
	outDir := flag.String("out", "store/assets", "Output directory")
	flag.Parse()

	icon, err := himage.Load(*iconPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Not found: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	square, err := storeassets.ResizeSquare(icon.Image, storeassets.IconSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Icon: %v\n", err)
		os.Exit(1)
	}
	write(filepath.Join(*outDir, fmt.Sprintf("play-icon-%d.png", storeassets.IconSize)), square)

	bg, err := himage.Load(*bgPath)
	if err != nil {
		fmt.Printf("Skipped feature graphic: %v\n", err)
		return
	}
	feature, err := storeassets.FeatureGraphic(icon.Image, bg.Image, storeassets.FeatureWidth, storeassets.FeatureHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Feature graphic: %v\n", err)
		os.Exit(1)
	}
	write(filepath.Join(*outDir, fmt.Sprintf("play-feature-%dx%d.png", storeassets.FeatureWidth, storeassets.FeatureHeight)), feature)
}

func write(path string, img image.Image) {
	if err := himage.Save(path, img, himage.SaveOptions{}); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote: %s (%.1f KB)\n", path, float64(info.Size())/1024)
}

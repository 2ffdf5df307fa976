package image

import (
	"image"
	"image/color"
	"image/draw"
)

// Flatten composites img over an opaque background and returns a fully
// opaque copy anchored at the origin.
func Flatten(img image.Image, bg color.NRGBA) *image.RGBA {
	b := img.Bounds()
	result := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	bg.A = 255
	draw.Draw(result, result.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	draw.Draw(result, result.Bounds(), img, b.Min, draw.Over)

	return result
}

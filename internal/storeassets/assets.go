// Package storeassets renders the store listing images from a fixed icon.
package storeassets

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"

	"halo-fixer/pkg/geometry"
)

// Store listing sizes.
const (
	IconSize      = 512
	FeatureWidth  = 1024
	FeatureHeight = 500
)

// ErrEmptyImage is returned when a source image has no pixels.
var ErrEmptyImage = errors.New("empty source image")

// ResizeSquare scales img to size x size with a Lanczos filter, keeping alpha.
func ResizeSquare(img image.Image, size int) (*image.NRGBA, error) {
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return imaging.Resize(img, size, size, imaging.Lanczos), nil
}

// FeatureGraphic cover-crops bg to width x height around its center and
// composites icon, scaled to half the height, in the middle.
func FeatureGraphic(icon, bg image.Image, width, height int) (*image.NRGBA, error) {
	if icon.Bounds().Empty() || bg.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	canvas := imaging.Fill(bg, width, height, imaging.Center, imaging.Lanczos)

	iconSize := height / 2
	scaled := imaging.Resize(icon, iconSize, iconSize, imaging.Lanczos)
	slot := geometry.NewRectInt(0, 0, width, height).Centered(iconSize, iconSize)

	return imaging.Overlay(canvas, scaled, image.Pt(slot.X, slot.Y), 1.0), nil
}

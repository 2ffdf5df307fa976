// Package image loads and saves the raster assets halo-fixer works on.
package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when a file extension names a format
// that cannot be written.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Asset is one decoded image file.
type Asset struct {
	Path   string      // Original file path
	Format string      // Decoder name: "png", "jpeg", "webp", ...
	Image  image.Image // Decoded pixels
	// HasAlpha is true when at least one pixel is not fully opaque.
	HasAlpha bool
}

// Load decodes the image at path.
func Load(path string) (*Asset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return &Asset{
		Path:     path,
		Format:   format,
		Image:    img,
		HasAlpha: hasAlpha(img),
	}, nil
}

// Width returns the image width in pixels.
func (a *Asset) Width() int {
	if a.Image == nil {
		return 0
	}
	return a.Image.Bounds().Dx()
}

// Height returns the image height in pixels.
func (a *Asset) Height() int {
	if a.Image == nil {
		return 0
	}
	return a.Image.Bounds().Dy()
}

func hasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}

// SupportedFormats returns the extensions Load understands.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".tiff", ".tif", ".bmp"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}

// FormatFromPath maps a file extension to the encoder Save would use.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".tif", ".tiff":
		return "tiff", nil
	case ".bmp":
		return "bmp", nil
	case ".webp":
		return "webp", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

package image

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// newFileMode is the permission of a file Save creates.
const newFileMode os.FileMode = 0o644

// SaveOptions controls how Save writes an image.
type SaveOptions struct {
	// Opaque flattens the image over Background and writes it without alpha.
	Opaque     bool
	Background color.NRGBA
}

// Save encodes img to path, choosing the format from the extension. The
// file is written to a temporary sibling first and renamed into place,
// keeping the permissions of the file it replaces. JPEG has no alpha
// channel and is always flattened. WebP is written lossless.
func Save(path string, img image.Image, opts SaveOptions) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if opts.Opaque || format == "jpeg" {
		img = Flatten(img, opts.Background)
	}

	mode := newFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".halo-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}

	if err := encode(tmp, img, format); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		return bmp.Encode(w, img)
	case "webp":
		return nativewebp.Encode(w, img, nil)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

package storeassets

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeSquareKeepsAlpha(t *testing.T) {
	src := imaging.New(64, 64, color.NRGBA{})
	for y := 16; y < 48; y++ {
		for x := 16; x < 48; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, A: 255})
		}
	}

	out, err := ResizeSquare(src, IconSize)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, IconSize, IconSize), out.Bounds())
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
	assert.Equal(t, color.NRGBA{R: 200, A: 255}, out.NRGBAAt(256, 256))
}

func TestFeatureGraphicCentersIcon(t *testing.T) {
	// Wide background with a blue band on the left. Cover crop keeps the
	// central 1024 columns, which are all green.
	bg := imaging.New(3000, 500, color.NRGBA{G: 255, A: 255})
	for y := 0; y < 500; y++ {
		for x := 0; x < 900; x++ {
			bg.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	icon := imaging.New(100, 100, color.NRGBA{R: 255, A: 255})

	out, err := FeatureGraphic(icon, bg, FeatureWidth, FeatureHeight)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, FeatureWidth, FeatureHeight), out.Bounds())
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, out.NRGBAAt(5, 5), "crop keeps the center")
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(512, 250))
	// Icon spans 250 px: x in [387, 637), y in [125, 375).
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, out.NRGBAAt(380, 250))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(390, 130))
}

func TestEmptySources(t *testing.T) {
	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	full := imaging.New(4, 4, color.White)

	_, err := ResizeSquare(empty, 16)
	assert.ErrorIs(t, err, ErrEmptyImage)
	_, err = FeatureGraphic(empty, full, 10, 10)
	assert.ErrorIs(t, err, ErrEmptyImage)
	_, err = FeatureGraphic(full, empty, 10, 10)
	assert.ErrorIs(t, err, ErrEmptyImage)
}

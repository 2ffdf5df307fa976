package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// HaloTheme is the preview window theme: a slate primary that matches the
// default icon background, and a checker-friendly gray for image wells.
type HaloTheme struct{}

var _ fyne.Theme = (*HaloTheme)(nil)

// ColorNameWell is the background drawn behind preview images.
const ColorNameWell fyne.ThemeColorName = "haloWell"

func (t *HaloTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x38, G: 0xBD, B: 0xF8, A: 0x80}
	case theme.ColorNameScrollBar:
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	case ColorNameWell:
		return color.NRGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF} // mid gray shows both white and dark halos
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *HaloTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *HaloTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *HaloTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameScrollBar:
		return 16
	case theme.SizeNameScrollBarSmall:
		return 12
	default:
		return theme.DefaultTheme().Size(name)
	}
}

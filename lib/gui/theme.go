package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ChartTheme keeps the default theme but uses the chart accent color and a
// light variant so rendered charts sit on a page-like background.
type ChartTheme struct{}

var _ fyne.Theme = (*ChartTheme)(nil)

var accent = color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}

func (t *ChartTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	switch n {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return accent
	}
	return theme.DefaultTheme().Color(n, theme.VariantLight)
}

func (t *ChartTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (t *ChartTheme) Font(s fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(s)
}

func (t *ChartTheme) Size(n fyne.ThemeSizeName) float32 {
	size := theme.DefaultTheme().Size(n)
	switch n {
	case theme.SizeNameText:
		return size * 0.9
	default:
		return size
	}
}

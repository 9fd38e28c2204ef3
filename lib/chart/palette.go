package chart

// Palette is an ordered list of colors, indexed cyclically.
type Palette []string

// DefaultPalette is used when no colors are configured.
var DefaultPalette = Palette{"#3498db", "#27ae60", "#f39c12", "#e74c3c"}

// At returns the color for index i, wrapping around the palette.
func (p Palette) At(i int) string {
	if len(p) == 0 {
		return DefaultPalette.At(i)
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

package surface

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor reads a #rgb, #rgba, #rrggbb or #rrggbbaa hex color. The leading
// '#' is optional.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4:
		expanded := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// mustColor parses s and falls back to opaque black, logging the problem.
func mustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		log.WithError(err).Warn("Falling back to black")
		return color.NRGBA{A: 0xff}
	}
	return c
}

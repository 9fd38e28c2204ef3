package surface

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"simplechart/lib/chart"
)

// The font family requested by the renderer is advisory; text is always set
// in the Go fonts, which are embedded and need no system lookup.
var (
	fontsOnce sync.Once
	regular   *truetype.Font
	bold      *truetype.Font
	fontsErr  error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		regular, fontsErr = truetype.Parse(goregular.TTF)
		if fontsErr != nil {
			return
		}
		bold, fontsErr = truetype.Parse(gobold.TTF)
	})
	return fontsErr
}

// trueTypeFont returns the parsed Go font matching f's weight.
func trueTypeFont(f chart.Font) (*truetype.Font, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	if f.Bold {
		return bold, nil
	}
	return regular, nil
}

type faceKey struct {
	bold bool
	size float64
}

// faceCache hands out font faces sized in pixels.
type faceCache struct {
	faces map[faceKey]font.Face
}

func (c *faceCache) face(f chart.Font) (font.Face, error) {
	key := faceKey{bold: f.Bold, size: f.Size}
	if face, ok := c.faces[key]; ok {
		return face, nil
	}
	tt, err := trueTypeFont(f)
	if err != nil {
		return nil, err
	}
	// At 72 DPI one point is one pixel.
	face := truetype.NewFace(tt, &truetype.Options{Size: f.Size, DPI: 72})
	if c.faces == nil {
		c.faces = make(map[faceKey]font.Face)
	}
	c.faces[key] = face
	return face, nil
}

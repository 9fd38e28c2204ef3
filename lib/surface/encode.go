package surface

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	gochart "github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"

	"simplechart/lib/chart"
)

// Format is an image encoding supported by Encode.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat accepts "png" and "svg" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

// Encode replays the current frame of rec through a go-chart renderer and
// writes the result to w. Arcs are flattened before they reach go-chart and
// coordinates are rounded to whole pixels. Line caps and joins are not
// carried over.
func Encode(rec *Recorder, format Format, w io.Writer) error {
	var provider gochart.RendererProvider
	switch format {
	case FormatPNG:
		provider = gochart.PNG
	case FormatSVG:
		provider = gochart.SVG
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	width := int(math.Ceil(rec.Width()))
	height := int(math.Ceil(rec.Height()))
	rr, err := provider(width, height)
	if err != nil {
		return fmt.Errorf("failed to create %s renderer: %w", format, err)
	}

	shapes := rec.Shapes()
	log.WithFields(logrus.Fields{
		"format": format,
		"width":  width,
		"height": height,
		"shapes": len(shapes),
	}).Debug("Encoding recorded frame")

	for _, shape := range shapes {
		switch shape.Paint {
		case PaintStroke:
			if !tracePath(rr, shape.Segments) {
				continue
			}
			rr.SetStrokeColor(drawingColor(shape.Color))
			rr.SetStrokeWidth(shape.LineWidth)
			rr.Stroke()
		case PaintFill:
			if !tracePath(rr, shape.Segments) {
				continue
			}
			rr.SetFillColor(drawingColor(shape.Color))
			rr.Fill()
		case PaintText:
			if err := drawText(rr, shape); err != nil {
				return err
			}
		}
		rr.ResetStyle()
	}

	if err := rr.Save(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", format, err)
	}
	return nil
}

// tracePath feeds the flattened path to rr and reports whether anything was
// traced.
func tracePath(rr gochart.Renderer, segments []Op) bool {
	lines := Flatten(segments)
	for _, line := range lines {
		for i, p := range line.Points {
			x, y := int(math.Round(p.X)), int(math.Round(p.Y))
			if i == 0 {
				rr.MoveTo(x, y)
			} else {
				rr.LineTo(x, y)
			}
		}
		if line.Closed {
			rr.Close()
		}
	}
	return len(lines) > 0
}

func drawText(rr gochart.Renderer, shape Shape) error {
	if shape.Text == "" {
		return nil
	}
	tt, err := trueTypeFont(shape.Font)
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	rr.SetFont(tt)
	rr.SetFontColor(drawingColor(shape.Color))
	// go-chart sizes text in points at the renderer DPI.
	rr.SetFontSize(shape.Font.Size * 72 / rr.GetDPI())

	x := shape.X
	switch shape.Align {
	case chart.TextAlignCenter:
		x -= float64(rr.MeasureText(shape.Text).Width()) / 2
	case chart.TextAlignRight:
		x -= float64(rr.MeasureText(shape.Text).Width())
	}
	rr.Text(shape.Text, int(math.Round(x)), int(math.Round(shape.Y)))
	return nil
}

func drawingColor(s string) drawing.Color {
	c := mustColor(s)
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

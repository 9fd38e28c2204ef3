package surface

/*
A lightweight canvas-style chart renderer.
Copyright (C) 2024 Haris Khan

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/sirupsen/logrus"

	"simplechart/lib/chart"
)

var log = logrus.StandardLogger()

// Raster is a chart.Surface that paints into an RGBA image through gg.
type Raster struct {
	dc     *gg.Context
	fill   color.Color
	stroke color.Color
	align  chart.TextAlign
	faces  faceCache
}

var _ chart.Surface = (*Raster)(nil)

// NewRaster returns a transparent raster surface of width x height pixels.
func NewRaster(width, height int) *Raster {
	r := &Raster{
		dc:     gg.NewContext(width, height),
		fill:   color.Black,
		stroke: color.Black,
	}
	r.dc.SetFillStyle(gg.NewSolidPattern(r.fill))
	r.dc.SetStrokeStyle(gg.NewSolidPattern(r.stroke))
	r.dc.SetLineWidth(1)
	r.dc.SetLineCap(gg.LineCapButt)
	if err := r.setFace(chart.Font{Family: "sans-serif", Size: 10}); err != nil {
		log.WithError(err).Warn("Failed to load default font")
	}
	return r
}

func (r *Raster) Width() float64  { return float64(r.dc.Width()) }
func (r *Raster) Height() float64 { return float64(r.dc.Height()) }

// ClearRect resets the covered pixels to transparent.
func (r *Raster) ClearRect(x, y, w, h float64) {
	img, ok := r.dc.Image().(*image.RGBA)
	if !ok {
		return
	}
	rect := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
	draw.Draw(img, rect, image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) BeginPath()          { r.dc.ClearPath() }
func (r *Raster) MoveTo(x, y float64) { r.dc.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float64) { r.dc.LineTo(x, y) }
func (r *Raster) ClosePath()          { r.dc.ClosePath() }

func (r *Raster) Arc(cx, cy, radius, start, end float64, counterclockwise bool) {
	sw := sweep(start, end, counterclockwise)
	if sw == 0 {
		return
	}
	r.dc.DrawArc(cx, cy, radius, start, start+sw)
}

// Stroke and Fill keep the path, matching canvas semantics.
func (r *Raster) Stroke() { r.dc.StrokePreserve() }
func (r *Raster) Fill()   { r.dc.FillPreserve() }

func (r *Raster) SetFillStyle(c string) {
	r.fill = mustColor(c)
	r.dc.SetFillStyle(gg.NewSolidPattern(r.fill))
}

func (r *Raster) SetStrokeStyle(c string) {
	r.stroke = mustColor(c)
	r.dc.SetStrokeStyle(gg.NewSolidPattern(r.stroke))
}

func (r *Raster) SetLineWidth(width float64) { r.dc.SetLineWidth(width) }

func (r *Raster) SetLineCap(lineCap chart.LineCap) {
	switch lineCap {
	case chart.LineCapRound:
		r.dc.SetLineCap(gg.LineCapRound)
	case chart.LineCapSquare:
		r.dc.SetLineCap(gg.LineCapSquare)
	default:
		r.dc.SetLineCap(gg.LineCapButt)
	}
}

// SetLineJoin maps miter joins to bevel, gg has no miter join.
func (r *Raster) SetLineJoin(lineJoin chart.LineJoin) {
	if lineJoin == chart.LineJoinRound {
		r.dc.SetLineJoin(gg.LineJoinRound)
		return
	}
	r.dc.SetLineJoin(gg.LineJoinBevel)
}

func (r *Raster) SetFont(f chart.Font) {
	if err := r.setFace(f); err != nil {
		log.WithError(err).WithField("size", f.Size).Warn("Failed to load font face")
	}
}

func (r *Raster) setFace(f chart.Font) error {
	face, err := r.faces.face(f)
	if err != nil {
		return err
	}
	r.dc.SetFontFace(face)
	return nil
}

func (r *Raster) SetTextAlign(align chart.TextAlign) { r.align = align }

// FillText draws text with its baseline at y.
func (r *Raster) FillText(text string, x, y float64) {
	var ax float64
	switch r.align {
	case chart.TextAlignCenter:
		ax = 0.5
	case chart.TextAlignRight:
		ax = 1
	}
	// gg draws text with its single current color, which also resets both
	// patterns; restore the stroke afterwards.
	r.dc.SetColor(r.fill)
	r.dc.DrawStringAnchored(text, x, y, ax, 0)
	r.dc.SetStrokeStyle(gg.NewSolidPattern(r.stroke))
}

// Image returns the painted image. It is shared with the surface.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the surface as a PNG image.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// SavePNG writes the surface to a PNG file.
func (r *Raster) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

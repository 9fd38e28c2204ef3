package chart

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

// LineCap is the shape drawn at the ends of stroked open paths.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the shape drawn where two stroked segments meet.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// TextAlign positions text horizontally relative to the x passed to FillText.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// Font describes the text style used by FillText. Size is in pixels.
type Font struct {
	Family string
	Size   float64
	Bold   bool
}

// Surface is an immediate-mode 2D drawing context with a fixed size.
//
// Coordinates are in device independent pixels with the origin in the top
// left corner and y growing downwards. Angles are in radians, 0 pointing to
// 3 o'clock and increasing clockwise. The current path survives Stroke and
// Fill and is only discarded by BeginPath.
type Surface interface {
	Width() float64
	Height() float64

	ClearRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc from start to end. When the path already has a
	// current point a straight line joins it to the start of the arc.
	Arc(cx, cy, r, start, end float64, counterclockwise bool)
	ClosePath()
	Stroke()
	Fill()

	SetFillStyle(color string)
	SetStrokeStyle(color string)
	SetLineWidth(width float64)
	SetLineCap(lineCap LineCap)
	SetLineJoin(lineJoin LineJoin)

	SetFont(font Font)
	SetTextAlign(align TextAlign)
	FillText(text string, x, y float64)
}

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
	"fmt"

	"simplechart/lib/chart"
)

// OpKind identifies a recorded surface call.
type OpKind int

const (
	OpClearRect OpKind = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpArc
	OpClosePath
	OpStroke
	OpFill
	OpFillStyle
	OpStrokeStyle
	OpLineWidth
	OpLineCap
	OpLineJoin
	OpFont
	OpTextAlign
	OpFillText
)

var opNames = [...]string{
	OpClearRect:   "clearRect",
	OpBeginPath:   "beginPath",
	OpMoveTo:      "moveTo",
	OpLineTo:      "lineTo",
	OpArc:         "arc",
	OpClosePath:   "closePath",
	OpStroke:      "stroke",
	OpFill:        "fill",
	OpFillStyle:   "fillStyle",
	OpStrokeStyle: "strokeStyle",
	OpLineWidth:   "lineWidth",
	OpLineCap:     "lineCap",
	OpLineJoin:    "lineJoin",
	OpFont:        "font",
	OpTextAlign:   "textAlign",
	OpFillText:    "fillText",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one recorded call. Only the fields relevant to Kind are set.
type Op struct {
	Kind OpKind

	// X and Y are the point of MoveTo/LineTo/FillText, the center of Arc
	// and the origin of ClearRect.
	X, Y float64
	// W and H are the ClearRect size.
	W, H float64

	R          float64
	Start, End float64
	CCW        bool

	LineWidth float64
	Color     string
	Text      string
	Cap       chart.LineCap
	Join      chart.LineJoin
	Font      chart.Font
	Align     chart.TextAlign
}

// Recorder is a chart.Surface that keeps every call as a display list.
type Recorder struct {
	width, height float64
	ops           []Op
}

var _ chart.Surface = (*Recorder)(nil)

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Width() float64  { return r.width }
func (r *Recorder) Height() float64 { return r.height }

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Kind: OpClearRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) BeginPath() { r.ops = append(r.ops, Op{Kind: OpBeginPath}) }

func (r *Recorder) MoveTo(x, y float64) { r.ops = append(r.ops, Op{Kind: OpMoveTo, X: x, Y: y}) }

func (r *Recorder) LineTo(x, y float64) { r.ops = append(r.ops, Op{Kind: OpLineTo, X: x, Y: y}) }

func (r *Recorder) Arc(cx, cy, radius, start, end float64, counterclockwise bool) {
	r.ops = append(r.ops, Op{Kind: OpArc, X: cx, Y: cy, R: radius, Start: start, End: end, CCW: counterclockwise})
}

func (r *Recorder) ClosePath() { r.ops = append(r.ops, Op{Kind: OpClosePath}) }
func (r *Recorder) Stroke()    { r.ops = append(r.ops, Op{Kind: OpStroke}) }
func (r *Recorder) Fill()      { r.ops = append(r.ops, Op{Kind: OpFill}) }

func (r *Recorder) SetFillStyle(color string) {
	r.ops = append(r.ops, Op{Kind: OpFillStyle, Color: color})
}

func (r *Recorder) SetStrokeStyle(color string) {
	r.ops = append(r.ops, Op{Kind: OpStrokeStyle, Color: color})
}

func (r *Recorder) SetLineWidth(width float64) {
	r.ops = append(r.ops, Op{Kind: OpLineWidth, LineWidth: width})
}

func (r *Recorder) SetLineCap(lineCap chart.LineCap) {
	r.ops = append(r.ops, Op{Kind: OpLineCap, Cap: lineCap})
}

func (r *Recorder) SetLineJoin(lineJoin chart.LineJoin) {
	r.ops = append(r.ops, Op{Kind: OpLineJoin, Join: lineJoin})
}

func (r *Recorder) SetFont(font chart.Font) {
	r.ops = append(r.ops, Op{Kind: OpFont, Font: font})
}

func (r *Recorder) SetTextAlign(align chart.TextAlign) {
	r.ops = append(r.ops, Op{Kind: OpTextAlign, Align: align})
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.ops = append(r.ops, Op{Kind: OpFillText, Text: text, X: x, Y: y})
}

// Ops returns a copy of every recorded call.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return ops
}

// Frame returns the calls made since the last ClearRect covering the whole
// surface, starting with that ClearRect.
func (r *Recorder) Frame() []Op {
	start := 0
	for i := len(r.ops) - 1; i >= 0; i-- {
		if r.coversSurface(r.ops[i]) {
			start = i
			break
		}
	}
	frame := make([]Op, len(r.ops)-start)
	copy(frame, r.ops[start:])
	return frame
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

func (r *Recorder) coversSurface(op Op) bool {
	return op.Kind == OpClearRect &&
		op.X <= 0 && op.Y <= 0 &&
		op.X+op.W >= r.width && op.Y+op.H >= r.height
}

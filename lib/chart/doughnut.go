package chart

import (
	"math"

	"github.com/sirupsen/logrus"
)

const (
	// StartAngle puts the first slice at 12 o'clock.
	StartAngle = -math.Pi / 2
	// RingRatio is the inner radius as a fraction of the outer radius.
	RingRatio = 0.6

	centerColor  = "#2c3e50"
	centerNudge  = 8.0
	outlineColor = gridColor
)

var centerFont = Font{Family: "Inter, sans-serif", Size: 24, Bold: true}

// Slice is one ring segment of a doughnut chart. Angles are in radians.
type Slice struct {
	Index int
	Value float64
	Start float64
	Span  float64
}

// End returns the angle where the slice stops.
func (s Slice) End() float64 {
	return s.Start + s.Span
}

// DoughnutLayout is the geometry of a doughnut chart.
type DoughnutLayout struct {
	CX, CY       float64
	Outer, Inner float64
	Total        float64
	// Slices holds one entry per value, including zero-valued ones. It is
	// empty when the total is zero.
	Slices []Slice
}

// NewDoughnutLayout computes ring geometry and slice angles for values on a
// width x height surface.
func NewDoughnutLayout(width, height float64, values []float64) DoughnutLayout {
	outer := math.Min(width, height) / 3
	l := DoughnutLayout{
		CX:    width / 2,
		CY:    height / 2,
		Outer: outer,
		Inner: outer * RingRatio,
		Total: Dataset{Values: values}.Total(),
	}
	if l.Total == 0 {
		return l
	}

	l.Slices = make([]Slice, len(values))
	angle := StartAngle
	for i, v := range values {
		span := (v / l.Total) * 2 * math.Pi
		l.Slices[i] = Slice{Index: i, Value: v, Start: angle, Span: span}
		angle += span
	}
	return l
}

func (r *Renderer) drawDoughnut() {
	s := r.surface
	w, h := s.Width(), s.Height()
	layout := NewDoughnutLayout(w, h, r.data.Values)

	s.ClearRect(0, 0, w, h)

	if len(layout.Slices) == 0 {
		log.WithField("values", len(r.data.Values)).Warn("Doughnut chart total is zero, drawing ring outline only")

		s.SetStrokeStyle(outlineColor)
		s.SetLineWidth(1)
		s.SetLineCap(LineCapButt)
		for _, radius := range []float64{layout.Outer, layout.Inner} {
			s.BeginPath()
			s.Arc(layout.CX, layout.CY, radius, 0, 2*math.Pi, false)
			s.Stroke()
		}
	}

	for _, slice := range layout.Slices {
		if slice.Span == 0 {
			continue
		}
		s.BeginPath()
		s.Arc(layout.CX, layout.CY, layout.Outer, slice.Start, slice.End(), false)
		s.Arc(layout.CX, layout.CY, layout.Inner, slice.End(), slice.Start, true)
		s.ClosePath()

		s.SetFillStyle(r.opts.Colors.At(slice.Index))
		s.Fill()
	}

	log.WithFields(logrus.Fields{
		"total":  layout.Total,
		"slices": len(layout.Slices),
	}).Debug("Doughnut slices drawn")

	if r.opts.CenterLabel == "" {
		return
	}
	s.SetFillStyle(centerColor)
	s.SetFont(centerFont)
	s.SetTextAlign(TextAlignCenter)
	s.FillText(r.opts.CenterLabel, layout.CX, layout.CY+centerNudge)
}

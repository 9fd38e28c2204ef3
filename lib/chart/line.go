package chart

import (
	"math"

	"github.com/sirupsen/logrus"
)

const (
	// Padding is reserved on every side of a line chart.
	Padding = 40.0

	gridLines   = 5
	gridColor   = "#e9ecef"
	lineWidth   = 3.0
	markerSize  = 4.0
	labelColor  = "#666"
	labelOffset = 10.0
)

var labelFont = Font{Family: "Inter, sans-serif", Size: 12}

// Point is a position on the surface.
type Point struct {
	X, Y float64
}

// LineLayout is the pixel geometry of a line chart.
type LineLayout struct {
	Width, Height         float64
	PlotWidth, PlotHeight float64
	Min, Max              float64
	// GridY holds the y of each horizontal grid line, top to bottom.
	GridY []float64
	// Points holds the mapped data points in index order. Their x values
	// double as the positions of the vertical grid lines and labels.
	Points []Point
}

// NewLineLayout maps values onto a width x height surface.
//
// A single value sits in the horizontal center of the plot. When all values
// are equal every point sits at half the plot height.
func NewLineLayout(width, height float64, values []float64) LineLayout {
	l := LineLayout{
		Width:      width,
		Height:     height,
		PlotWidth:  width - 2*Padding,
		PlotHeight: height - 2*Padding,
	}
	l.Min, l.Max = Dataset{Values: values}.Bounds()

	l.GridY = make([]float64, gridLines+1)
	for i := range l.GridY {
		l.GridY[i] = Padding + (l.PlotHeight/gridLines)*float64(i)
	}

	l.Points = make([]Point, len(values))
	for i, v := range values {
		l.Points[i] = Point{X: l.x(i, len(values)), Y: l.y(v)}
	}
	return l
}

func (l LineLayout) x(i, n int) float64 {
	if n < 2 {
		return Padding + l.PlotWidth/2
	}
	return Padding + (l.PlotWidth/float64(n-1))*float64(i)
}

func (l LineLayout) y(v float64) float64 {
	span := l.Max - l.Min
	if span == 0 {
		return Padding + l.PlotHeight/2
	}
	return Padding + l.PlotHeight - ((v-l.Min)/span)*l.PlotHeight
}

func (r *Renderer) drawLine() {
	s := r.surface
	w, h := s.Width(), s.Height()
	layout := NewLineLayout(w, h, r.data.Values)

	if len(layout.Points) == 1 {
		log.WithField("value", r.data.Values[0]).Warn("Line chart has a single point, drawing marker only")
	} else if layout.Min == layout.Max {
		log.WithFields(logrus.Fields{
			"value":  layout.Min,
			"points": len(layout.Points),
		}).Warn("Line chart values have no range, centering line")
	}

	s.ClearRect(0, 0, w, h)

	// Stroke state outlives a render; reset what the previous one changed.
	s.SetStrokeStyle(gridColor)
	s.SetLineWidth(1)
	s.SetLineCap(LineCapButt)
	s.SetLineJoin(LineJoinMiter)
	for _, y := range layout.GridY {
		s.BeginPath()
		s.MoveTo(Padding, y)
		s.LineTo(w-Padding, y)
		s.Stroke()
	}
	for _, p := range layout.Points {
		s.BeginPath()
		s.MoveTo(p.X, Padding)
		s.LineTo(p.X, h-Padding)
		s.Stroke()
	}

	color := r.opts.Colors.At(0)
	if len(layout.Points) > 1 {
		s.SetStrokeStyle(color)
		s.SetLineWidth(lineWidth)
		s.SetLineCap(LineCapRound)
		s.SetLineJoin(LineJoinRound)

		s.BeginPath()
		for i, p := range layout.Points {
			if i == 0 {
				s.MoveTo(p.X, p.Y)
			} else {
				s.LineTo(p.X, p.Y)
			}
		}
		s.Stroke()
	}

	s.SetFillStyle(color)
	for _, p := range layout.Points {
		s.BeginPath()
		s.Arc(p.X, p.Y, markerSize, 0, 2*math.Pi, false)
		s.Fill()
	}

	s.SetFillStyle(labelColor)
	s.SetFont(labelFont)
	s.SetTextAlign(TextAlignCenter)
	for i, label := range r.data.Labels {
		s.FillText(label, layout.Points[i].X, h-labelOffset)
	}
}

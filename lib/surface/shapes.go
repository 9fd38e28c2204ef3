package surface

import "simplechart/lib/chart"

// Paint is how a Shape reached the surface.
type Paint int

const (
	PaintStroke Paint = iota
	PaintFill
	PaintText
)

// Shape is a painted path or text run together with the drawing state that
// was active when it was painted.
type Shape struct {
	Paint Paint
	Color string

	// Stroke state.
	LineWidth float64
	Cap       chart.LineCap
	Join      chart.LineJoin

	// Segments holds the MoveTo, LineTo, Arc and ClosePath calls of the path.
	Segments []Op

	// Text state.
	Text  string
	X, Y  float64
	Font  chart.Font
	Align chart.TextAlign
}

type drawState struct {
	fill, stroke string
	lineWidth    float64
	lineCap      chart.LineCap
	lineJoin     chart.LineJoin
	font         chart.Font
	align        chart.TextAlign
}

func defaultState() drawState {
	return drawState{
		fill:      "#000",
		stroke:    "#000",
		lineWidth: 1,
		font:      chart.Font{Family: "sans-serif", Size: 10},
	}
}

// Shapes replays the current frame and returns what it painted, in order.
// Drawing state starts from the canvas defaults: black fill and stroke,
// 1 px butt-capped miter-joined lines, 10 px sans-serif left-aligned text.
func (r *Recorder) Shapes() []Shape {
	var (
		shapes []Shape
		path   []Op
		st     = defaultState()
	)

	for _, op := range r.Frame() {
		switch op.Kind {
		case OpBeginPath:
			path = nil
		case OpMoveTo, OpLineTo, OpArc, OpClosePath:
			path = append(path, op)
		case OpStroke:
			shapes = append(shapes, Shape{
				Paint:     PaintStroke,
				Color:     st.stroke,
				LineWidth: st.lineWidth,
				Cap:       st.lineCap,
				Join:      st.lineJoin,
				Segments:  clonePath(path),
			})
		case OpFill:
			shapes = append(shapes, Shape{
				Paint:    PaintFill,
				Color:    st.fill,
				Segments: clonePath(path),
			})
		case OpFillText:
			shapes = append(shapes, Shape{
				Paint: PaintText,
				Color: st.fill,
				Text:  op.Text,
				X:     op.X,
				Y:     op.Y,
				Font:  st.font,
				Align: st.align,
			})
		case OpFillStyle:
			st.fill = op.Color
		case OpStrokeStyle:
			st.stroke = op.Color
		case OpLineWidth:
			st.lineWidth = op.LineWidth
		case OpLineCap:
			st.lineCap = op.Cap
		case OpLineJoin:
			st.lineJoin = op.Join
		case OpFont:
			st.font = op.Font
		case OpTextAlign:
			st.align = op.Align
		}
	}
	return shapes
}

func clonePath(path []Op) []Op {
	out := make([]Op, len(path))
	copy(out, path)
	return out
}

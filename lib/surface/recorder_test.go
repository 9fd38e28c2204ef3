package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplechart/lib/chart"
)

func TestRecorderRecordsCalls(t *testing.T) {
	rec := NewRecorder(200, 100)
	assert.Equal(t, 200.0, rec.Width())
	assert.Equal(t, 100.0, rec.Height())

	rec.ClearRect(0, 0, 200, 100)
	rec.BeginPath()
	rec.MoveTo(1, 2)
	rec.LineTo(3, 4)
	rec.Arc(5, 6, 7, 0, 1, true)
	rec.ClosePath()
	rec.SetStrokeStyle("#123456")
	rec.SetLineWidth(2)
	rec.Stroke()
	rec.FillText("hi", 8, 9)

	ops := rec.Ops()
	require.Len(t, ops, 10)
	assert.Equal(t, Op{Kind: OpArc, X: 5, Y: 6, R: 7, Start: 0, End: 1, CCW: true}, ops[4])
	assert.Equal(t, Op{Kind: OpFillText, Text: "hi", X: 8, Y: 9}, ops[9])

	ops[0].Kind = OpFill
	assert.Equal(t, OpClearRect, rec.Ops()[0].Kind, "Ops returns a copy")
}

func TestRecorderFrame(t *testing.T) {
	rec := NewRecorder(100, 100)
	rec.MoveTo(1, 1)
	assert.Len(t, rec.Frame(), 1, "without a clear the frame is everything")

	rec.ClearRect(0, 0, 100, 100)
	rec.LineTo(2, 2)
	rec.ClearRect(10, 10, 5, 5)
	rec.LineTo(3, 3)

	frame := rec.Frame()
	require.Len(t, frame, 4)
	assert.Equal(t, OpClearRect, frame[0].Kind)
	assert.Equal(t, OpClearRect, frame[2].Kind, "partial clears do not start a frame")

	rec.ClearRect(-5, -5, 200, 200)
	assert.Len(t, rec.Frame(), 1)

	rec.Reset()
	assert.Empty(t, rec.Ops())
}

func TestShapesTrackState(t *testing.T) {
	rec := NewRecorder(100, 100)
	rec.ClearRect(0, 0, 100, 100)

	rec.BeginPath()
	rec.MoveTo(0, 0)
	rec.LineTo(10, 0)
	rec.Stroke()

	rec.SetStrokeStyle("#ff0000")
	rec.SetFillStyle("#00ff00")
	rec.SetLineWidth(3)
	rec.SetLineCap(chart.LineCapRound)
	rec.SetLineJoin(chart.LineJoinBevel)
	rec.Stroke()
	rec.Fill()

	rec.BeginPath()
	rec.Arc(50, 50, 5, 0, 1, false)
	rec.Fill()

	rec.SetFont(chart.Font{Size: 12, Bold: true})
	rec.SetTextAlign(chart.TextAlignRight)
	rec.FillText("label", 90, 95)

	shapes := rec.Shapes()
	require.Len(t, shapes, 5)

	assert.Equal(t, PaintStroke, shapes[0].Paint)
	assert.Equal(t, "#000", shapes[0].Color)
	assert.Equal(t, 1.0, shapes[0].LineWidth)
	assert.Len(t, shapes[0].Segments, 2)

	assert.Equal(t, "#ff0000", shapes[1].Color)
	assert.Equal(t, 3.0, shapes[1].LineWidth)
	assert.Equal(t, chart.LineCapRound, shapes[1].Cap)
	assert.Equal(t, chart.LineJoinBevel, shapes[1].Join)
	assert.Len(t, shapes[1].Segments, 2, "stroke keeps the path")

	assert.Equal(t, PaintFill, shapes[2].Paint)
	assert.Equal(t, "#00ff00", shapes[2].Color)
	assert.Len(t, shapes[2].Segments, 2)

	assert.Len(t, shapes[3].Segments, 1, "begin path discards the old path")
	assert.Equal(t, OpArc, shapes[3].Segments[0].Kind)

	text := shapes[4]
	assert.Equal(t, PaintText, text.Paint)
	assert.Equal(t, "#00ff00", text.Color)
	assert.Equal(t, "label", text.Text)
	assert.Equal(t, 12.0, text.Font.Size)
	assert.Equal(t, chart.TextAlignRight, text.Align)
}

func TestOpKindString(t *testing.T) {
	assert.Equal(t, "arc", OpArc.String())
	assert.Equal(t, "fillText", OpFillText.String())
	assert.Equal(t, "OpKind(99)", OpKind(99).String())
}

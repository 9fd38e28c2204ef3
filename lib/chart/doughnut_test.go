package chart_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplechart/lib/chart"
	"simplechart/lib/surface"
)

var scoreColors = chart.Palette{"#27ae60", "#3498db", "#f39c12", "#e74c3c", "#9b59b6"}

func TestNewDoughnutLayout(t *testing.T) {
	l := chart.NewDoughnutLayout(300, 300, scoreValues)

	assert.Equal(t, 150.0, l.CX)
	assert.Equal(t, 150.0, l.CY)
	assert.Equal(t, 100.0, l.Outer)
	assert.InDelta(t, 60.0, l.Inner, 1e-9)
	assert.Equal(t, 85.0, l.Total)
	require.Len(t, l.Slices, len(scoreValues))

	first := l.Slices[0]
	assert.Equal(t, -math.Pi/2, first.Start)
	assert.InDelta(t, 28.0/85.0*360.0, first.Span*180/math.Pi, 1e-9)

	var sum float64
	prevEnd := chart.StartAngle
	for i, s := range l.Slices {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, prevEnd, s.Start, "slice %d starts where the previous ended", i)
		assert.Greater(t, s.End(), s.Start, "boundaries increase")
		sum += s.Span
		prevEnd = s.End()
	}
	assert.InDelta(t, 2*math.Pi, sum, 1e-12)
	assert.InDelta(t, chart.StartAngle+2*math.Pi, prevEnd, 1e-12)
}

func TestDoughnutLayoutUsesShorterSide(t *testing.T) {
	l := chart.NewDoughnutLayout(600, 240, []float64{1})
	assert.Equal(t, 300.0, l.CX)
	assert.Equal(t, 120.0, l.CY)
	assert.Equal(t, 80.0, l.Outer)
	assert.InDelta(t, 48.0, l.Inner, 1e-9)
	require.Len(t, l.Slices, 1)
	assert.Equal(t, 2*math.Pi, l.Slices[0].Span)
}

func TestDoughnutLayoutZeroTotal(t *testing.T) {
	l := chart.NewDoughnutLayout(300, 300, []float64{0, 0})
	assert.Zero(t, l.Total)
	assert.Empty(t, l.Slices)
}

func TestDoughnutSlicesAreRingSegments(t *testing.T) {
	rec := render(t, 300, 300, chart.Dataset{Values: scoreValues}, chart.Options{
		Kind:   chart.KindDoughnut,
		Colors: scoreColors,
	})
	assertFinite(t, rec.Ops())
	layout := chart.NewDoughnutLayout(300, 300, scoreValues)

	fills := shapesOf(rec.Shapes(), surface.PaintFill, "")
	require.Len(t, fills, len(scoreValues))

	for i, f := range fills {
		slice := layout.Slices[i]
		assert.Equal(t, scoreColors[i], f.Color)
		require.Len(t, f.Segments, 3)

		outer, inner, closeOp := f.Segments[0], f.Segments[1], f.Segments[2]
		assert.Equal(t, surface.Op{
			Kind: surface.OpArc, X: 150, Y: 150, R: layout.Outer,
			Start: slice.Start, End: slice.End(), CCW: false,
		}, outer)
		assert.Equal(t, surface.Op{
			Kind: surface.OpArc, X: 150, Y: 150, R: layout.Inner,
			Start: slice.End(), End: slice.Start, CCW: true,
		}, inner)
		assert.Equal(t, surface.OpClosePath, closeOp.Kind)
	}
}

func TestDoughnutPaletteCycles(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	rec := render(t, 300, 300, chart.Dataset{Values: values}, chart.Options{
		Kind:   chart.KindDoughnut,
		Colors: chart.Palette{"#000001", "#000002", "#000003", "#000004"},
	})
	fills := shapesOf(rec.Shapes(), surface.PaintFill, "")
	require.Len(t, fills, len(values))
	assert.Equal(t, "#000001", fills[4].Color)
	assert.Equal(t, "#000002", fills[5].Color)
}

func TestDoughnutSkipsZeroSlices(t *testing.T) {
	rec := render(t, 300, 300, chart.Dataset{Values: []float64{1, 0, 1}}, chart.Options{
		Kind:   chart.KindDoughnut,
		Colors: chart.Palette{"#000001", "#000002", "#000003"},
	})
	fills := shapesOf(rec.Shapes(), surface.PaintFill, "")
	require.Len(t, fills, 2)
	assert.Equal(t, "#000001", fills[0].Color)
	assert.Equal(t, "#000003", fills[1].Color, "palette index follows the data index")
}

func TestDoughnutZeroTotalDrawsOutline(t *testing.T) {
	rec := render(t, 300, 300, chart.Dataset{Values: []float64{0, 0, 0}}, chart.Options{
		Kind:        chart.KindDoughnut,
		CenterLabel: "0/100",
	})
	assertFinite(t, rec.Ops())
	shapes := rec.Shapes()

	assert.Empty(t, shapesOf(shapes, surface.PaintFill, ""))

	outline := shapesOf(shapes, surface.PaintStroke, "")
	require.Len(t, outline, 2)
	assert.Equal(t, 100.0, outline[0].Segments[0].R)
	assert.InDelta(t, 60.0, outline[1].Segments[0].R, 1e-9)
	for _, s := range outline {
		assert.Equal(t, gridColor, s.Color)
		assert.Equal(t, 1.0, s.LineWidth)
	}

	texts := shapesOf(shapes, surface.PaintText, "")
	require.Len(t, texts, 1)
	assert.Equal(t, "0/100", texts[0].Text)
}

func TestDoughnutCenterLabel(t *testing.T) {
	rec := render(t, 300, 300, chart.Dataset{Values: scoreValues}, chart.Options{
		Kind:        chart.KindDoughnut,
		CenterLabel: "85/100",
	})
	texts := shapesOf(rec.Shapes(), surface.PaintText, "")
	require.Len(t, texts, 1)

	label := texts[0]
	assert.Equal(t, "85/100", label.Text)
	assert.Equal(t, 150.0, label.X)
	assert.Equal(t, 158.0, label.Y)
	assert.Equal(t, "#2c3e50", label.Color)
	assert.Equal(t, 24.0, label.Font.Size)
	assert.True(t, label.Font.Bold)
	assert.Equal(t, chart.TextAlignCenter, label.Align)
}

func TestDoughnutCenterLabelDefaultsToBlank(t *testing.T) {
	rec := render(t, 300, 300, chart.Dataset{Values: scoreValues}, chart.Options{Kind: chart.KindDoughnut})
	assert.Empty(t, shapesOf(rec.Shapes(), surface.PaintText, ""))
}

func TestDoughnutIgnoresLabels(t *testing.T) {
	withLabels := render(t, 300, 300,
		chart.Dataset{Values: scoreValues, Labels: []string{"only one"}},
		chart.Options{Kind: chart.KindDoughnut},
	)
	without := render(t, 300, 300, chart.Dataset{Values: scoreValues}, chart.Options{Kind: chart.KindDoughnut})
	assert.Equal(t, without.Ops(), withLabels.Ops())
}

func TestDoughnutRejectsOverflowingTotal(t *testing.T) {
	rec := surface.NewRecorder(300, 300)
	r, err := chart.New(rec,
		chart.Dataset{Values: []float64{math.MaxFloat64, math.MaxFloat64}},
		chart.Options{Kind: chart.KindDoughnut},
	)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, chart.ErrTotalOverflow)
	assert.Empty(t, rec.Ops())
}

func TestDoughnutLargeTotalStaysFinite(t *testing.T) {
	quarter := math.MaxFloat64 / 4
	rec := render(t, 300, 300, chart.Dataset{Values: []float64{quarter, quarter}}, chart.Options{
		Kind:   chart.KindDoughnut,
		Colors: scoreColors,
	})
	assertFinite(t, rec.Ops())

	fills := shapesOf(rec.Shapes(), surface.PaintFill, "")
	require.Len(t, fills, 2)
	assert.InDelta(t, math.Pi/2, fills[1].Segments[0].Start, 1e-12)
}

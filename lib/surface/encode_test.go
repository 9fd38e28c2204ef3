package surface

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplechart/lib/chart"
)

func recordChart(t *testing.T, w, h float64, data chart.Dataset, opts chart.Options) *Recorder {
	t.Helper()
	rec := NewRecorder(w, h)
	r, err := chart.New(rec, data, opts)
	require.NoError(t, err)
	r.Render()
	return rec
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PNG")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	f, err = ParseFormat(" svg ")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

func TestEncodePNG(t *testing.T) {
	rec := recordChart(t, 600, 300, trend, chart.Options{})

	var buf bytes.Buffer
	require.NoError(t, Encode(rec, FormatPNG, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 600, 300), img.Bounds())
}

func TestEncodeSVG(t *testing.T) {
	rec := recordChart(t, 300, 300, score, chart.Options{Kind: chart.KindDoughnut, CenterLabel: "85/100"})

	var buf bytes.Buffer
	require.NoError(t, Encode(rec, FormatSVG, &buf))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "<path")
	assert.Contains(t, out, "85/100")
}

func TestEncodeOnlyUsesLastFrame(t *testing.T) {
	rec := NewRecorder(300, 300)
	r, err := chart.New(rec, score, chart.Options{Kind: chart.KindDoughnut, CenterLabel: "first"})
	require.NoError(t, err)
	r.Render()

	r, err = chart.New(rec, score, chart.Options{Kind: chart.KindDoughnut, CenterLabel: "second"})
	require.NoError(t, err)
	r.Render()

	var buf bytes.Buffer
	require.NoError(t, Encode(rec, FormatSVG, &buf))
	assert.NotContains(t, buf.String(), "first")
	assert.Contains(t, buf.String(), "second")
}

func TestEncodeRejectsUnknownFormat(t *testing.T) {
	rec := recordChart(t, 600, 300, trend, chart.Options{})
	var buf bytes.Buffer
	assert.Error(t, Encode(rec, Format("bmp"), &buf))
	assert.Zero(t, buf.Len())
}

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/sirupsen/logrus"

	"simplechart/lib/config"
	"simplechart/lib/render"
)

// ChartView shows one chart definition as an image.
type ChartView struct {
	Definition config.Definition
	Image      *canvas.Image
	renders    int
}

// NewChartView renders def once and wraps the result in an image.
func NewChartView(def config.Definition) (*ChartView, error) {
	cv := &ChartView{
		Definition: def,
		Image:      canvas.NewImageFromImage(nil),
	}
	cv.Image.FillMode = canvas.ImageFillOriginal
	cv.Image.SetMinSize(fyne.NewSize(float32(def.Width), float32(def.Height)))
	if err := cv.Redraw(); err != nil {
		return nil, err
	}
	return cv, nil
}

// Update swaps in a new definition and redraws.
func (cv *ChartView) Update(def config.Definition) error {
	prev := cv.Definition
	cv.Definition = def
	if err := cv.Redraw(); err != nil {
		cv.Definition = prev
		return err
	}
	cv.Image.SetMinSize(fyne.NewSize(float32(def.Width), float32(def.Height)))
	return nil
}

// Redraw renders the definition from scratch and refreshes the image.
func (cv *ChartView) Redraw() error {
	raster, err := render.Image(cv.Definition)
	if err != nil {
		log.WithError(err).WithField("chart", cv.Definition.Name).Error("Failed to render chart")
		return err
	}
	cv.renders++
	log.WithFields(logrus.Fields{
		"chart":   cv.Definition.Name,
		"renders": cv.renders,
	}).Debug("Chart redrawn")

	cv.Image.Image = raster.Image()
	cv.Image.Refresh()
	return nil
}

package render

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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"simplechart/lib/chart"
	"simplechart/lib/config"
	"simplechart/lib/surface"
)

var log = logrus.StandardLogger()

// Backend selects the surface a definition is drawn on.
type Backend string

const (
	// BackendGG paints straight into a raster image.
	BackendGG Backend = "gg"
	// BackendGoChart records the drawing and replays it through go-chart.
	BackendGoChart Backend = "gochart"
)

var ErrUnsupported = errors.New("render: format not supported by backend")

// ParseBackend accepts "gg" and "gochart".
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendGG, BackendGoChart:
		return b, nil
	default:
		return "", fmt.Errorf("unknown backend %q", s)
	}
}

// Draw renders def onto s.
func Draw(s chart.Surface, def config.Definition) error {
	opts, err := def.Options()
	if err != nil {
		return fmt.Errorf("chart %q: %w", def.Name, err)
	}
	r, err := chart.New(s, def.Dataset(), opts)
	if err != nil {
		return fmt.Errorf("chart %q: %w", def.Name, err)
	}
	r.Render()
	return nil
}

// Image renders def onto a new raster surface.
func Image(def config.Definition) (*surface.Raster, error) {
	raster := surface.NewRaster(def.Width, def.Height)
	if err := Draw(raster, def); err != nil {
		return nil, err
	}
	return raster, nil
}

// Record renders def into a new recorder.
func Record(def config.Definition) (*surface.Recorder, error) {
	rec := surface.NewRecorder(float64(def.Width), float64(def.Height))
	if err := Draw(rec, def); err != nil {
		return nil, err
	}
	return rec, nil
}

// Write renders def with backend and encodes it to w.
func Write(w io.Writer, def config.Definition, backend Backend, format surface.Format) error {
	switch backend {
	case BackendGG:
		if format != surface.FormatPNG {
			return fmt.Errorf("%w: %s cannot encode %s", ErrUnsupported, backend, format)
		}
		raster, err := Image(def)
		if err != nil {
			return err
		}
		return raster.EncodePNG(w)
	case BackendGoChart:
		rec, err := Record(def)
		if err != nil {
			return err
		}
		return surface.Encode(rec, format, w)
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}
}

// WriteFile renders def into dir as <name>.<format> and returns the path.
func WriteFile(dir string, def config.Definition, backend Backend, format surface.Format) (string, error) {
	if err := def.Validate(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := Write(&buf, def, backend, format); err != nil {
		return "", err
	}

	path := filepath.Join(dir, def.Name+"."+string(format))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"chart":   def.Name,
		"backend": backend,
		"path":    path,
		"bytes":   buf.Len(),
	}).Info("Chart written")
	return path, nil
}

package config

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
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"simplechart/lib/chart"
)

var log = logrus.StandardLogger()

const (
	DefaultLineWidth      = 600
	DefaultLineHeight     = 300
	DefaultDoughnutWidth  = 300
	DefaultDoughnutHeight = 300
)

var (
	ErrNoCharts      = errors.New("config: no charts defined")
	ErrMissingName   = errors.New("config: chart has no name")
	ErrDuplicateName = errors.New("config: duplicate chart name")
	ErrBadSize       = errors.New("config: width and height must be positive")
	ErrBadName       = errors.New("config: chart name must be a plain file name")
)

// Definition describes one chart embedded in a page.
type Definition struct {
	Name        string    `yaml:"name"`
	Kind        string    `yaml:"kind"`
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	Labels      []string  `yaml:"labels"`
	Data        []float64 `yaml:"data"`
	Colors      []string  `yaml:"colors"`
	CenterLabel string    `yaml:"center_label"`
	Animate     bool      `yaml:"animate"`
}

// File is the top level of a chart definition file.
type File struct {
	Charts []Definition `yaml:"charts"`
}

// ChartKind parses the definition kind.
func (d Definition) ChartKind() (chart.Kind, error) {
	return chart.ParseKind(d.Kind)
}

// Dataset returns the values and labels of the definition.
func (d Definition) Dataset() chart.Dataset {
	return chart.Dataset{Values: d.Data, Labels: d.Labels}
}

// Options returns renderer options for the definition.
func (d Definition) Options() (chart.Options, error) {
	kind, err := d.ChartKind()
	if err != nil {
		return chart.Options{}, err
	}
	return chart.Options{
		Kind:        kind,
		Colors:      chart.Palette(d.Colors),
		Animate:     d.Animate,
		CenterLabel: d.CenterLabel,
	}, nil
}

// withDefaults fills in the size for the definition's kind.
func (d Definition) withDefaults() Definition {
	kind, err := d.ChartKind()
	if err != nil {
		return d
	}
	w, h := DefaultLineWidth, DefaultLineHeight
	if kind == chart.KindDoughnut {
		w, h = DefaultDoughnutWidth, DefaultDoughnutHeight
	}
	if d.Width == 0 {
		d.Width = w
	}
	if d.Height == 0 {
		d.Height = h
	}
	return d
}

// Validate checks the definition without rendering it.
func (d Definition) Validate() error {
	if d.Name == "" {
		return ErrMissingName
	}
	// The name becomes the output file name.
	if strings.ContainsAny(d.Name, `/\`) || d.Name == "." || strings.Contains(d.Name, "..") {
		return fmt.Errorf("%w: %q", ErrBadName, d.Name)
	}
	kind, err := d.ChartKind()
	if err != nil {
		return fmt.Errorf("chart %q: %w", d.Name, err)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("chart %q: %w (got %dx%d)", d.Name, ErrBadSize, d.Width, d.Height)
	}
	if kind == chart.KindLine && (float64(d.Width) <= 2*chart.Padding || float64(d.Height) <= 2*chart.Padding) {
		return fmt.Errorf("chart %q: %w", d.Name, chart.ErrSurfaceTooSmall)
	}
	if err := d.Dataset().Validate(kind); err != nil {
		return fmt.Errorf("chart %q: %w", d.Name, err)
	}
	return nil
}

// Parse decodes a definition file, applies defaults and validates every chart.
func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCharts
		}
		return nil, fmt.Errorf("failed to decode chart definitions: %w", err)
	}
	if len(f.Charts) == 0 {
		return nil, ErrNoCharts
	}

	seen := make(map[string]bool, len(f.Charts))
	for i := range f.Charts {
		f.Charts[i] = f.Charts[i].withDefaults()
		d := f.Charts[i]
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, d.Name)
		}
		seen[d.Name] = true
	}
	return &f, nil
}

// Load reads a definition file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithFields(logrus.Fields{
		"path":   path,
		"charts": len(f.Charts),
	}).Debug("Loaded chart definitions")
	return f, nil
}

// Builtin returns the charts of the landing page: the monthly metrics trend
// and the system scorecard.
func Builtin() *File {
	return &File{Charts: []Definition{
		{
			Name:   "metrics-trend",
			Kind:   "line",
			Width:  DefaultLineWidth,
			Height: DefaultLineHeight,
			Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			Data:   []float64{120, 135, 142, 150, 155, 150},
			Colors: []string{"#3498db"},
		},
		{
			Name:        "scorecard-chart",
			Kind:        "doughnut",
			Width:       DefaultDoughnutWidth,
			Height:      DefaultDoughnutHeight,
			Labels:      []string{"Security", "Compliance", "Reliability", "Scalability", "Observability"},
			Data:        []float64{28, 18, 18, 13, 8},
			Colors:      []string{"#27ae60", "#3498db", "#f39c12", "#e74c3c", "#9b59b6"},
			CenterLabel: "85/100",
		},
	}}
}

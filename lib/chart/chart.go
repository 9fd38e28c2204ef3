package chart

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
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

// Kind selects the draw algorithm used by a Renderer.
type Kind int

const (
	KindLine Kind = iota
	KindDoughnut
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindDoughnut:
		return "doughnut"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "line" and "doughnut" to a Kind. The empty string is a line chart.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "line":
		return KindLine, nil
	case "doughnut":
		return KindDoughnut, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Options configures a Renderer. The zero value draws a line chart with the
// default palette.
type Options struct {
	Kind   Kind
	Colors Palette
	// Animate is accepted for compatibility and has no effect.
	Animate bool
	// CenterLabel is drawn in the middle of a doughnut chart.
	CenterLabel string
}

// Renderer draws one chart onto the surface it owns.
type Renderer struct {
	surface Surface
	data    Dataset
	opts    Options
}

// New validates the dataset for the configured kind and returns a Renderer
// bound to surface. The dataset and palette are copied.
func New(surface Surface, data Dataset, opts Options) (*Renderer, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	if err := data.Validate(opts.Kind); err != nil {
		return nil, fmt.Errorf("invalid %s dataset: %w", opts.Kind, err)
	}

	w, h := surface.Width(), surface.Height()
	switch opts.Kind {
	case KindLine:
		if w <= 2*Padding || h <= 2*Padding {
			return nil, fmt.Errorf("%w: %gx%g leaves no plot area", ErrSurfaceTooSmall, w, h)
		}
	case KindDoughnut:
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("%w: %gx%g", ErrSurfaceTooSmall, w, h)
		}
	}

	if len(opts.Colors) == 0 {
		opts.Colors = DefaultPalette
	}
	colors := make(Palette, len(opts.Colors))
	copy(colors, opts.Colors)
	opts.Colors = colors

	return &Renderer{
		surface: surface,
		data:    data.clone(),
		opts:    opts,
	}, nil
}

// Kind returns the configured chart kind.
func (r *Renderer) Kind() Kind {
	return r.opts.Kind
}

// Surface returns the surface the renderer draws on.
func (r *Renderer) Surface() Surface {
	return r.surface
}

// Render clears the surface and redraws the whole chart.
func (r *Renderer) Render() {
	log.WithFields(logrus.Fields{
		"kind":   r.opts.Kind.String(),
		"values": len(r.data.Values),
		"width":  r.surface.Width(),
		"height": r.surface.Height(),
	}).Debug("Rendering chart")

	switch r.opts.Kind {
	case KindDoughnut:
		r.drawDoughnut()
	default:
		r.drawLine()
	}
}

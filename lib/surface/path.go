package surface

import (
	"math"

	"simplechart/lib/chart"
)

const fullTurn = 2 * math.Pi

// sweep returns the signed angle an arc from start to end travels, following
// canvas rules: a difference of a full turn or more in the drawing direction
// is a full circle, anything else is reduced modulo a full turn.
func sweep(start, end float64, counterclockwise bool) float64 {
	if !counterclockwise {
		d := end - start
		if d >= fullTurn {
			return fullTurn
		}
		d = math.Mod(d, fullTurn)
		if d < 0 {
			d += fullTurn
		}
		return d
	}

	d := start - end
	if d >= fullTurn {
		return -fullTurn
	}
	d = math.Mod(d, fullTurn)
	if d < 0 {
		d += fullTurn
	}
	return -d
}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []chart.Point
	Closed bool
}

// arcSteps is the number of segments used for a full circle.
const arcSteps = 64

// Flatten converts path segments into polylines, approximating arcs with
// straight segments.
func Flatten(segments []Op) []Polyline {
	var lines []Polyline
	current := -1
	startNew := func(p chart.Point) {
		lines = append(lines, Polyline{Points: []chart.Point{p}})
		current = len(lines) - 1
	}

	for _, seg := range segments {
		switch seg.Kind {
		case OpMoveTo:
			startNew(chart.Point{X: seg.X, Y: seg.Y})
		case OpLineTo:
			p := chart.Point{X: seg.X, Y: seg.Y}
			if current < 0 {
				startNew(p)
				continue
			}
			lines[current].Points = append(lines[current].Points, p)
		case OpArc:
			pts := arcPoints(seg)
			if len(pts) == 0 {
				continue
			}
			if current < 0 {
				startNew(pts[0])
				pts = pts[1:]
			}
			lines[current].Points = append(lines[current].Points, pts...)
		case OpClosePath:
			if current < 0 {
				continue
			}
			lines[current].Closed = true
			// A closed subpath starts a new one at the same point.
			startNew(lines[current].Points[0])
		}
	}

	out := lines[:0]
	for _, l := range lines {
		if len(l.Points) > 1 {
			out = append(out, l)
		}
	}
	return out
}

func arcPoints(seg Op) []chart.Point {
	sw := sweep(seg.Start, seg.End, seg.CCW)
	if sw == 0 {
		return nil
	}
	steps := int(math.Ceil(math.Abs(sw) / fullTurn * arcSteps))
	if steps < 2 {
		steps = 2
	}
	pts := make([]chart.Point, steps+1)
	for i := 0; i <= steps; i++ {
		a := seg.Start + sw*float64(i)/float64(steps)
		pts[i] = chart.Point{
			X: seg.X + seg.R*math.Cos(a),
			Y: seg.Y + seg.R*math.Sin(a),
		}
	}
	return pts
}

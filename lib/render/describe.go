package render

import (
	"fmt"
	"io"
	"math"

	"simplechart/lib/chart"
	"simplechart/lib/config"
)

// Describe writes the computed geometry of def in a human readable form.
func Describe(w io.Writer, def config.Definition) error {
	kind, err := def.ChartKind()
	if err != nil {
		return fmt.Errorf("chart %q: %w", def.Name, err)
	}
	width, height := float64(def.Width), float64(def.Height)

	fmt.Fprintf(w, "=== %s (%s, %dx%d) ===\n", def.Name, kind, def.Width, def.Height)
	switch kind {
	case chart.KindLine:
		l := chart.NewLineLayout(width, height, def.Data)
		fmt.Fprintf(w, "Plot area: %.1fx%.1f at padding %.0f\n", l.PlotWidth, l.PlotHeight, chart.Padding)
		fmt.Fprintf(w, "Range: %g .. %g\n", l.Min, l.Max)
		fmt.Fprint(w, "Grid rows:")
		for _, y := range l.GridY {
			fmt.Fprintf(w, " %.1f", y)
		}
		fmt.Fprintln(w)
		for i, p := range l.Points {
			label := ""
			if i < len(def.Labels) {
				label = def.Labels[i]
			}
			fmt.Fprintf(w, "  %-12s %10g -> (%.1f, %.1f)\n", label, def.Data[i], p.X, p.Y)
		}
	case chart.KindDoughnut:
		l := chart.NewDoughnutLayout(width, height, def.Data)
		fmt.Fprintf(w, "Center: (%.1f, %.1f) radius %.1f/%.1f total %g\n", l.CX, l.CY, l.Outer, l.Inner, l.Total)
		if len(l.Slices) == 0 {
			fmt.Fprintln(w, "  (no slices, total is zero)")
		}
		for _, s := range l.Slices {
			label := ""
			if s.Index < len(def.Labels) {
				label = def.Labels[s.Index]
			}
			fmt.Fprintf(w, "  %-14s %8g  %7.2f° -> %7.2f°  (%.2f°)\n",
				label, s.Value, degrees(s.Start), degrees(s.End()), degrees(s.Span))
		}
	}
	return nil
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

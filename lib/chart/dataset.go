package chart

import (
	"fmt"
	"math"
)

// Dataset holds the ordered values of a chart and their parallel labels.
type Dataset struct {
	Values []float64
	Labels []string
}

// Validate checks the dataset against the requirements of the given kind.
func (d Dataset) Validate(kind Kind) error {
	if len(d.Values) == 0 {
		return ErrEmptyDataset
	}
	for i, v := range d.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: index %d", ErrNonFinite, i)
		}
	}

	switch kind {
	case KindLine:
		if len(d.Labels) != len(d.Values) {
			return fmt.Errorf("%w: %d values, %d labels", ErrLabelMismatch, len(d.Values), len(d.Labels))
		}
		if lo, hi := d.Bounds(); math.IsInf(hi-lo, 0) {
			return fmt.Errorf("%w: %g .. %g", ErrRangeOverflow, lo, hi)
		}
	case KindDoughnut:
		for i, v := range d.Values {
			if v < 0 {
				return fmt.Errorf("%w: index %d is %g", ErrNegativeValue, i, v)
			}
		}
		if math.IsInf(d.Total(), 0) {
			return ErrTotalOverflow
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return nil
}

// Bounds returns the smallest and largest value in the dataset.
func (d Dataset) Bounds() (lo, hi float64) {
	if len(d.Values) == 0 {
		return 0, 0
	}
	lo, hi = d.Values[0], d.Values[0]
	for _, v := range d.Values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Total returns the sum of all values.
func (d Dataset) Total() float64 {
	var total float64
	for _, v := range d.Values {
		total += v
	}
	return total
}

func (d Dataset) clone() Dataset {
	c := Dataset{
		Values: make([]float64, len(d.Values)),
		Labels: make([]string, len(d.Labels)),
	}
	copy(c.Values, d.Values)
	copy(c.Labels, d.Labels)
	return c
}

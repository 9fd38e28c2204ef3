package chart

import "errors"

var (
	ErrNilSurface      = errors.New("chart: nil surface")
	ErrSurfaceTooSmall = errors.New("chart: surface too small")
	ErrEmptyDataset    = errors.New("chart: empty dataset")
	ErrLabelMismatch   = errors.New("chart: labels and values differ in length")
	ErrNonFinite       = errors.New("chart: value is not finite")
	ErrNegativeValue   = errors.New("chart: negative value")
	ErrUnknownKind     = errors.New("chart: unknown chart kind")
	ErrRangeOverflow   = errors.New("chart: value range overflows")
	ErrTotalOverflow   = errors.New("chart: value total overflows")
)

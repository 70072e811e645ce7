package engine

import "errors"

var (
	// ErrInvalidInput flags caller-supplied values outside their declared
	// ranges. Raw inputs are rejected, never clamped.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientData flags degenerate inputs (empty cohort, empty
	// series) for which no meaningful result exists.
	ErrInsufficientData = errors.New("insufficient data")
)

package interpolate

import (
	"errors"
)

var (
	// ErrConstruction is returned when axes or value tables cannot be used to
	// build a grid: an empty or unsorted axis, or a table of the wrong size.
	ErrConstruction = errors.New("invalid grid construction")
	// ErrDimensionMismatch is returned when a target point does not have one
	// coordinate per axis.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrOutOfRange is returned for grid coordinates or table indices which
	// do not exist.
	ErrOutOfRange = errors.New("index out of range")
	// ErrInvalidMethod is returned when a method cannot be used in the
	// requested role or on the requested axis.
	ErrInvalidMethod = errors.New("invalid method configuration")
	// ErrInvalidLimits is returned for extrapolation limits which do not
	// contain the axis.
	ErrInvalidLimits = errors.New("invalid extrapolation limits")
	// ErrNoTarget is returned when evaluating at the current target before
	// one has been set.
	ErrNoTarget = errors.New("no current target point")
)

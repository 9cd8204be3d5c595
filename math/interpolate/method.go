package interpolate

import (
	"fmt"
	"strings"
)

// Method is a flag representing the rule used to blend grid values along a
// single axis.
//
// MethodConstant is only valid for extrapolation: it holds the value at the
// nearest edge of the grid.
type Method int

const (
	MethodConstant Method = iota
	MethodLinear
	MethodCubic
	numMethods
)

var methodNames = [numMethods]string{
	MethodConstant: "Constant",
	MethodLinear:   "Linear",
	MethodCubic:    "Cubic",
}

func (m Method) String() string {
	if !m.valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

func (m Method) valid() bool { return m >= 0 && m < numMethods }

// ParseMethod converts a method name (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("%w: unrecognized method '%s'", ErrInvalidMethod, s)
}

// Bounds classifies a coordinate relative to an axis. Values are ordered by
// severity, so the classification of a point is the largest value over its
// axes.
type Bounds int

const (
	// InRange coordinates lie inside the grid and are interpolated.
	InRange Bounds = iota
	// OutOfRange coordinates lie outside the grid but inside the
	// extrapolation limits and are extrapolated with the axis's
	// extrapolation method.
	OutOfRange
	// OutsideLimits coordinates lie outside the extrapolation limits. They
	// are clamped to the nearest grid edge regardless of the configured
	// extrapolation method.
	OutsideLimits
	numBounds
)

var boundsNames = [numBounds]string{
	InRange:       "InRange",
	OutOfRange:    "OutOfRange",
	OutsideLimits: "OutsideLimits",
}

func (b Bounds) String() string {
	if b < 0 || b >= numBounds {
		return fmt.Sprintf("Bounds(%d)", int(b))
	}
	return boundsNames[b]
}

// Extrapolated returns true if the result was not purely interpolated.
func (b Bounds) Extrapolated() bool { return b != InRange }

// Clamped returns true if at least one coordinate was forced to the grid edge
// by its extrapolation limits.
func (b Bounds) Clamped() bool { return b == OutsideLimits }

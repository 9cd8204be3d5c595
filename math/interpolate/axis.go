package interpolate

import (
	"fmt"
	"math"
)

// Flavor selects which neighbor a spacing multiplier belongs to.
type Flavor int

const (
	// Floor multipliers scale the slope estimate at the lower end of an
	// interval.
	Floor Flavor = iota
	// Ceiling multipliers scale the slope estimate at the upper end of an
	// interval.
	Ceiling
)

// Axis is a single input dimension of a grid: a strictly increasing sequence
// of coordinates together with the rules used to interpolate and extrapolate
// along it.
type Axis struct {
	grid []float64
	s    searcher

	interp, extrap Method
	low, high      float64

	// mults[flavor][i] is the ratio of the length of interval i to the
	// length of the two-interval span used to estimate the slope at its
	// floor or ceiling.
	mults [2][]float64

	// version is incremented by every setter so that cached points can tell
	// when they have gone stale.
	version uint64
}

// NewAxis creates an axis over a strictly increasing sequence of points. The
// axis interpolates linearly, extrapolates with a constant and has no
// extrapolation limits.
//
// The grid is copied.
func NewAxis(grid []float64) (*Axis, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: axis has no points", ErrConstruction)
	}
	for i := 0; i < len(grid)-1; i++ {
		if !(grid[i+1] > grid[i]) {
			return nil, fmt.Errorf(
				"%w: axis not strictly increasing: grid[%d] = %g, grid[%d] = %g",
				ErrConstruction, i, grid[i], i+1, grid[i+1],
			)
		}
	}
	if math.IsNaN(grid[0]) || math.IsInf(grid[0], 0) ||
		math.IsInf(grid[len(grid)-1], 0) {
		return nil, fmt.Errorf("%w: axis has non-finite points", ErrConstruction)
	}

	a := newAxis(append([]float64(nil), grid...))
	a.s.init(a.grid)
	return a, nil
}

// NewUniformAxis creates an axis of n points starting at x0 and separated by
// dx. Lookups on uniform axes are O(1).
func NewUniformAxis(x0, dx float64, n int) (*Axis, error) {
	if n <= 0 {
		return nil, fmt.Errorf(
			"%w: uniform axis given %d points", ErrConstruction, n,
		)
	} else if n > 1 && !(dx > 0) {
		return nil, fmt.Errorf(
			"%w: uniform axis given non-positive spacing %g", ErrConstruction, dx,
		)
	} else if math.IsNaN(x0) || math.IsInf(x0, 0) || math.IsInf(dx, 0) {
		return nil, fmt.Errorf(
			"%w: uniform axis given non-finite origin or spacing", ErrConstruction,
		)
	}

	grid := make([]float64, n)
	for i := range grid {
		grid[i] = x0 + float64(i)*dx
	}
	a := newAxis(grid)
	if n > 1 {
		a.s.unifInit(x0, dx, a.grid)
	} else {
		a.s.init(a.grid)
	}
	return a, nil
}

func newAxis(grid []float64) *Axis {
	a := &Axis{
		grid:   grid,
		interp: MethodLinear,
		extrap: MethodConstant,
		low:    -math.MaxFloat64,
		high:   math.MaxFloat64,
	}
	a.calcSpacingMultipliers()
	return a
}

func (a *Axis) calcSpacingMultipliers() {
	n := len(a.grid)
	if n < 2 {
		return
	}

	for f := range a.mults {
		a.mults[f] = make([]float64, n-1)
	}

	g := a.grid
	for i := 0; i < n-1; i++ {
		center := g[i+1] - g[i]
		a.mults[Floor][i], a.mults[Ceiling][i] = 1, 1
		if i != 0 {
			a.mults[Floor][i] = center / (g[i+1] - g[i-1])
		}
		if i+2 != n {
			a.mults[Ceiling][i] = center / (g[i+2] - g[i])
		}
	}
}

// Len returns the number of grid points on the axis.
func (a *Axis) Len() int { return len(a.grid) }

// Val returns the i-th grid point.
func (a *Axis) Val(i int) float64 { return a.s.val(i) }

// Grid returns a copy of the axis's grid points.
func (a *Axis) Grid() []float64 { return append([]float64(nil), a.grid...) }

// InterpMethod returns the method used for coordinates inside the grid.
func (a *Axis) InterpMethod() Method { return a.interp }

// ExtrapMethod returns the method used for coordinates outside the grid but
// inside the extrapolation limits.
func (a *Axis) ExtrapMethod() Method { return a.extrap }

// ExtrapLimits returns the range over which extrapolation is allowed.
func (a *Axis) ExtrapLimits() (low, high float64) { return a.low, a.high }

// SpacingMultiplier returns the spacing multiplier of the given flavor for
// the interval starting at grid point i.
func (a *Axis) SpacingMultiplier(flavor Flavor, i int) float64 {
	return a.mults[flavor][i]
}

// SetInterpMethod sets the method used inside the grid. Only MethodLinear
// and MethodCubic are valid.
func (a *Axis) SetInterpMethod(m Method) error {
	switch m {
	case MethodLinear, MethodCubic:
	default:
		return fmt.Errorf(
			"%w: %s cannot be used for interpolation", ErrInvalidMethod, m,
		)
	}
	if m == MethodCubic && len(a.grid) < 2 {
		return fmt.Errorf(
			"%w: cubic interpolation needs at least 2 points, axis has %d",
			ErrInvalidMethod, len(a.grid),
		)
	}
	a.interp = m
	a.version++
	return nil
}

// SetExtrapMethod sets the method used outside the grid.
func (a *Axis) SetExtrapMethod(m Method) error {
	if !m.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidMethod, m)
	} else if m == MethodCubic && len(a.grid) < 2 {
		return fmt.Errorf(
			"%w: cubic extrapolation needs at least 2 points, axis has %d",
			ErrInvalidMethod, len(a.grid),
		)
	}
	a.extrap = m
	a.version++
	return nil
}

// SetExtrapLimits sets the range over which extrapolation is allowed. The
// limits must contain the whole grid.
func (a *Axis) SetExtrapLimits(low, high float64) error {
	if math.IsNaN(low) || math.IsNaN(high) {
		return fmt.Errorf("%w: NaN limit", ErrInvalidLimits)
	} else if low > a.grid[0] {
		return fmt.Errorf(
			"%w: lower limit %g is above the first grid point %g",
			ErrInvalidLimits, low, a.grid[0],
		)
	} else if high < a.grid[len(a.grid)-1] {
		return fmt.Errorf(
			"%w: upper limit %g is below the last grid point %g",
			ErrInvalidLimits, high, a.grid[len(a.grid)-1],
		)
	}
	a.low, a.high = low, high
	a.version++
	return nil
}

// Locate returns the index of the grid point at or below x, the fractional
// position of x within the interval starting at floor, and the bounds
// classification of x.
//
// Points below the grid use the first interval and points above it use the
// last, so their fractions are negative or larger than 1. A point exactly on
// the last grid point returns that index with a fraction of 0.
func (a *Axis) Locate(x float64) (floor int, frac float64, b Bounds) {
	n := len(a.grid)
	b = a.bounds(x)
	if n == 1 {
		return 0, 0, b
	}

	switch {
	case x < a.grid[0]:
		floor = 0
	case x > a.grid[n-1]:
		floor = n - 2
	default:
		floor = a.s.search(x)
		if floor == n-1 {
			return floor, 0, b
		}
	}

	x0, x1 := a.grid[floor], a.grid[floor+1]
	return floor, (x - x0) / (x1 - x0), b
}

func (a *Axis) bounds(x float64) Bounds {
	if x < a.low || x > a.high {
		return OutsideLimits
	} else if x < a.grid[0] || x > a.grid[len(a.grid)-1] {
		return OutOfRange
	}
	return InRange
}

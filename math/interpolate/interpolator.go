/*package interpolate implements interpolation and extrapolation over regular
grids of any dimension, with linear or cubic Hermite interpolation chosen
per axis.
*/
package interpolate

import (
	"fmt"
)

// UniInterpolator is a 1D interpolator. These interpolators all use caching,
// so they are not thread safe.
type UniInterpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequeunce of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
	// Ref creates a shallow copy of the interpolator with its own cache.
	// Each thread using the same interpolator must make a copy with Ref
	// first.
	Ref() UniInterpolator
}

var (
	_ UniInterpolator = &Linear{}
	_ UniInterpolator = &Cubic{}
)

// BiInterpolator is a 2D interpolator. These interpolators all use caching, so
// they are not thread safe.
type BiInterpolator interface {
	Eval(x, y float64) float64
	EvalAll(xs, ys []float64, out ...[]float64) []float64
	Ref() BiInterpolator
}

var (
	_ BiInterpolator = &BiLinear{}
	_ BiInterpolator = &BiCubic{}
)

// TriInterpolator is a 3D interpolator. These interpolators all use caching,
// so they are not thread safe.
type TriInterpolator interface {
	Eval(x, y, z float64) float64
	EvalAll(xs, ys, zs []float64, out ...[]float64) []float64
	Ref() TriInterpolator
}

var (
	_ TriInterpolator = &TriLinear{}
	_ TriInterpolator = &TriCubic{}
)

/////////////////////////////////
// Interpolator Implementation //
/////////////////////////////////

// Interpolator evaluates the value tables of a GriddedData at arbitrary
// points. It remembers the most recent target point so that evaluating
// several tables at the same point only locates it once.
//
// An Interpolator is not safe for concurrent use. Each goroutine should
// evaluate through its own copy made with Ref. Configuration changes must not
// happen while any copy is evaluating.
type Interpolator struct {
	data *GriddedData

	hasTarget bool
	point     Point
}

// New creates an Interpolator where each axis is given as a strictly
// increasing sequence of points and each table lists values in row-major
// order, with the first axis varying slowest.
func New(grid [][]float64, tables ...[]float64) (*Interpolator, error) {
	d, err := NewGriddedDataFromGrid(grid, tables...)
	if err != nil {
		return nil, err
	}
	return NewFromData(d), nil
}

// NewFromAxes creates an Interpolator over pre-configured axes.
func NewFromAxes(axes []*Axis, tables ...[]float64) (*Interpolator, error) {
	d, err := NewGriddedData(axes, tables...)
	if err != nil {
		return nil, err
	}
	return NewFromData(d), nil
}

// NewFromData creates an Interpolator which evaluates d.
func NewFromData(d *GriddedData) *Interpolator {
	return &Interpolator{data: d}
}

// Ref creates a shallow copy of the interpolator with its own cache. The
// copy shares axes and value tables with intr.
func (intr *Interpolator) Ref() *Interpolator {
	return &Interpolator{data: intr.data}
}

// Data returns the underlying grid and value tables.
func (intr *Interpolator) Data() *GriddedData { return intr.data }

// NDims returns the number of axes.
func (intr *Interpolator) NDims() int { return intr.data.NDims() }

// NumTables returns the number of value tables.
func (intr *Interpolator) NumTables() int { return intr.data.NumTables() }

// AddValueTable appends a value table.
func (intr *Interpolator) AddValueTable(values []float64) error {
	return intr.data.AddValueTable(values)
}

// SetInterpMethod sets the interpolation method of axis dim.
func (intr *Interpolator) SetInterpMethod(dim int, m Method) error {
	return intr.data.SetInterpMethod(dim, m)
}

// SetExtrapMethod sets the extrapolation method of axis dim.
func (intr *Interpolator) SetExtrapMethod(dim int, m Method) error {
	return intr.data.SetExtrapMethod(dim, m)
}

// SetExtrapLimits sets the extrapolation limits of axis dim.
func (intr *Interpolator) SetExtrapLimits(dim int, low, high float64) error {
	return intr.data.SetExtrapLimits(dim, low, high)
}

// Eval evaluates table i at target and makes target the current point. The
// returned Bounds reports whether any coordinate was extrapolated or clamped.
func (intr *Interpolator) Eval(
	target []float64, i int,
) (float64, Bounds, error) {
	if err := intr.SetTarget(target); err != nil {
		return 0, InRange, err
	}
	return intr.EvalCurrent(i)
}

// EvalAll evaluates every table at target and makes target the current
// point. If an output array is given, the output is written to that array
// (the array is still returned as a convenience).
func (intr *Interpolator) EvalAll(
	target []float64, out ...[]float64,
) ([]float64, Bounds, error) {
	if err := intr.SetTarget(target); err != nil {
		return nil, InRange, err
	}
	return intr.EvalAllCurrent(out...)
}

// SetTarget makes target the current point. If target has the wrong number
// of coordinates, an error is returned and there is no current point
// afterwards.
func (intr *Interpolator) SetTarget(target []float64) error {
	if len(target) != intr.data.NDims() {
		intr.ClearTarget()
		return fmt.Errorf(
			"%w: target has %d coordinates, but the grid has %d axes",
			ErrDimensionMismatch, len(target), intr.data.NDims(),
		)
	}

	if intr.hasTarget && sameTarget(intr.point.Target, target) &&
		intr.point.current(intr.data) {
		return nil
	}

	if err := intr.point.Init(intr.data, target); err != nil {
		intr.ClearTarget()
		return err
	}
	intr.hasTarget = true
	return nil
}

// Target returns a copy of the current point and true, or false if there is
// none.
func (intr *Interpolator) Target() ([]float64, bool) {
	if !intr.hasTarget {
		return nil, false
	}
	return append([]float64(nil), intr.point.Target...), true
}

// ClearTarget forgets the current point.
func (intr *Interpolator) ClearTarget() {
	intr.hasTarget = false
	intr.point.Target = intr.point.Target[:0]
}

// EvalCurrent evaluates table i at the current point.
func (intr *Interpolator) EvalCurrent(i int) (float64, Bounds, error) {
	p, err := intr.currentPoint()
	if err != nil {
		return 0, InRange, err
	}
	if err := intr.data.checkTable(i); err != nil {
		return 0, p.Bounds, err
	}
	return intr.data.Eval(p, i), p.Bounds, nil
}

// EvalAllCurrent evaluates every table at the current point.
func (intr *Interpolator) EvalAllCurrent(
	out ...[]float64,
) ([]float64, Bounds, error) {
	p, err := intr.currentPoint()
	if err != nil {
		return nil, InRange, err
	}
	return intr.data.EvalAll(p, out...), p.Bounds, nil
}

// Point returns a copy of the resolved current point: the floor, fraction,
// method and coefficients used along each axis.
func (intr *Interpolator) Point() (*Point, error) {
	p, err := intr.currentPoint()
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// currentPoint returns the current point, re-resolving it if the axes have
// been reconfigured since it was last located.
func (intr *Interpolator) currentPoint() (*Point, error) {
	if !intr.hasTarget {
		return nil, ErrNoTarget
	}
	if !intr.point.current(intr.data) {
		target := append([]float64(nil), intr.point.Target...)
		if err := intr.point.Init(intr.data, target); err != nil {
			intr.ClearTarget()
			return nil, err
		}
	}
	return &intr.point, nil
}

func sameTarget(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package interpolate

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/mat"

	"github.com/phil-mansfield/gridintr/geom"
)

// GriddedData is a set of axes together with one or more value tables
// sampled on every point of the grid they span. All tables are stored in a
// single dense matrix with one row per table. Within a row, values are in
// row-major order: the first axis varies slowest.
type GriddedData struct {
	axes []*Axis
	grid geom.Grid
	// values is nil until the first table is added.
	values *mat.Dense
}

// NewGriddedData creates a GriddedData instance from a set of axes and any
// number of value tables. Every problem with the inputs is reported in the
// returned error.
//
// The axes are owned by the GriddedData afterwards; configure them through
// its setters.
func NewGriddedData(axes []*Axis, tables ...[]float64) (*GriddedData, error) {
	var mErr *multierror.Error
	if len(axes) == 0 {
		mErr = multierror.Append(mErr, fmt.Errorf(
			"%w: grid has no axes", ErrConstruction,
		))
	}
	for dim, a := range axes {
		if a == nil {
			mErr = multierror.Append(mErr, fmt.Errorf(
				"%w: axis %d is nil", ErrConstruction, dim,
			))
		}
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return nil, err
	}

	d := &GriddedData{axes: append([]*Axis(nil), axes...)}
	lengths := make([]int, len(axes))
	for dim, a := range axes {
		lengths[dim] = a.Len()
	}
	d.grid.Init(lengths)

	for i, table := range tables {
		if len(table) != d.grid.Volume {
			mErr = multierror.Append(mErr, fmt.Errorf(
				"%w: value table %d has %d entries, but the grid has %d points",
				ErrConstruction, i, len(table), d.grid.Volume,
			))
		}
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return nil, err
	}

	if len(tables) > 0 {
		d.values = mat.NewDense(len(tables), d.grid.Volume, nil)
		for i, table := range tables {
			d.values.SetRow(i, table)
		}
	}

	return d, nil
}

// NewGriddedDataFromGrid creates a GriddedData instance where each axis is
// given as a strictly increasing sequence of points.
func NewGriddedDataFromGrid(
	grid [][]float64, tables ...[]float64,
) (*GriddedData, error) {
	var mErr *multierror.Error
	axes := make([]*Axis, len(grid))
	for dim := range grid {
		a, err := NewAxis(grid[dim])
		if err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("axis %d: %w", dim, err))
		}
		axes[dim] = a
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return NewGriddedData(axes, tables...)
}

// NDims returns the number of axes.
func (d *GriddedData) NDims() int { return len(d.axes) }

// NumTables returns the number of value tables.
func (d *GriddedData) NumTables() int {
	if d.values == nil {
		return 0
	}
	r, _ := d.values.Dims()
	return r
}

// NumValues returns the number of grid points, which is the length of every
// value table.
func (d *GriddedData) NumValues() int { return d.grid.Volume }

// Lengths returns the number of points along each axis.
func (d *GriddedData) Lengths() []int {
	return append([]int(nil), d.grid.Lengths...)
}

// Axis returns the axis of dimension dim.
func (d *GriddedData) Axis(dim int) *Axis { return d.axes[dim] }

// AddValueTable appends a table. If the table has the wrong length, an error
// is returned and the existing tables are unchanged.
func (d *GriddedData) AddValueTable(values []float64) error {
	if len(values) != d.grid.Volume {
		return fmt.Errorf(
			"%w: value table has %d entries, but the grid has %d points",
			ErrConstruction, len(values), d.grid.Volume,
		)
	}

	if d.values == nil {
		d.values = mat.NewDense(1, d.grid.Volume, nil)
		d.values.SetRow(0, values)
		return nil
	}

	r, c := d.values.Dims()
	next := mat.NewDense(r+1, c, nil)
	next.Slice(0, r, 0, c).(*mat.Dense).Copy(d.values)
	next.SetRow(r, values)
	d.values = next
	return nil
}

// Table returns a copy of the i-th value table.
func (d *GriddedData) Table(i int) ([]float64, error) {
	if err := d.checkTable(i); err != nil {
		return nil, err
	}
	return mat.Row(nil, i, d.values), nil
}

// Values returns the value of every table at the given grid coordinates.
func (d *GriddedData) Values(coords []int) ([]float64, error) {
	idx, ok := d.grid.IdxCheck(coords)
	if !ok {
		return nil, fmt.Errorf(
			"%w: grid coordinates %v for axis lengths %v",
			ErrOutOfRange, coords, d.grid.Lengths,
		)
	}
	return d.column(idx), nil
}

// Column returns the value of every table at the given grid coordinates. If
// an output array is given, the values are written to it (the array is still
// returned as a convenience).
//
// No bounds checking is done: coords must be valid.
func (d *GriddedData) Column(coords []int, out ...[]float64) []float64 {
	return d.column(d.grid.Idx(coords), out...)
}

// ColumnNear is Column with the coordinate along dim shifted by offset. The
// shifted coordinate is clamped to the axis, so neighbors past the edge of
// the grid resolve to the edge point.
func (d *GriddedData) ColumnNear(
	coords []int, dim, offset int, out ...[]float64,
) []float64 {
	idx := d.grid.Idx(coords)
	shifted := d.grid.Clamp(dim, coords[dim]+offset)
	idx += (shifted - coords[dim]) * d.grid.Stride(dim)
	return d.column(idx, out...)
}

func (d *GriddedData) column(idx int, out ...[]float64) []float64 {
	n := d.NumTables()
	if len(out) == 0 {
		out = [][]float64{make([]float64, n)}
	}
	if n == 0 {
		return out[0][:0]
	}
	return mat.Col(out[0][:n], idx, d.values)
}

// at returns the value of table i at flat index idx.
func (d *GriddedData) at(i, idx int) float64 { return d.values.At(i, idx) }

// InterpMethods returns the interpolation method of every axis.
func (d *GriddedData) InterpMethods() []Method {
	ms := make([]Method, len(d.axes))
	for dim, a := range d.axes {
		ms[dim] = a.InterpMethod()
	}
	return ms
}

// ExtrapMethods returns the extrapolation method of every axis.
func (d *GriddedData) ExtrapMethods() []Method {
	ms := make([]Method, len(d.axes))
	for dim, a := range d.axes {
		ms[dim] = a.ExtrapMethod()
	}
	return ms
}

// SetInterpMethod sets the interpolation method of axis dim.
func (d *GriddedData) SetInterpMethod(dim int, m Method) error {
	if err := d.checkDim(dim); err != nil {
		return err
	}
	return d.axes[dim].SetInterpMethod(m)
}

// SetExtrapMethod sets the extrapolation method of axis dim.
func (d *GriddedData) SetExtrapMethod(dim int, m Method) error {
	if err := d.checkDim(dim); err != nil {
		return err
	}
	return d.axes[dim].SetExtrapMethod(m)
}

// SetExtrapLimits sets the extrapolation limits of axis dim.
func (d *GriddedData) SetExtrapLimits(dim int, low, high float64) error {
	if err := d.checkDim(dim); err != nil {
		return err
	}
	return d.axes[dim].SetExtrapLimits(low, high)
}

// version changes whenever the configuration of any axis does.
func (d *GriddedData) version() uint64 {
	var v uint64
	for _, a := range d.axes {
		v += a.version
	}
	return v
}

func (d *GriddedData) checkDim(dim int) error {
	if dim < 0 || dim >= len(d.axes) {
		return fmt.Errorf(
			"%w: axis %d of a %d-dimensional grid",
			ErrOutOfRange, dim, len(d.axes),
		)
	}
	return nil
}

func (d *GriddedData) checkTable(i int) error {
	if i < 0 || i >= d.NumTables() {
		return fmt.Errorf(
			"%w: table %d of %d", ErrOutOfRange, i, d.NumTables(),
		)
	}
	return nil
}

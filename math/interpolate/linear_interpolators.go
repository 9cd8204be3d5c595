package interpolate

import (
	"encoding/binary"
	"fmt"
)

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a linear interpolator. Points outside the range of the grid take
// the value of the nearest grid edge.
type Linear struct {
	f fixed
}

// NewLinear creates a linear interpolator for a sequence of strictly
// increasing points, xs, which take on the values given by vals.
//
// Lookups will occur in O(log |xs|), possibly faster depending on the access
// pattern and data layout.
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d", len(vals), len(xs),
		))
	}
	axes := []*Axis{mustAxis("xs", xs)}
	return &Linear{newFixed(axes, binary.BigEndian, MethodLinear, vals)}
}

// NewUniformLinear creates a linear interplator where a uniformly spaced
// sequence of x values starting at x0 and separated by dx and whose values are
// given by vals.
//
// Lookups will be O(1).
func NewUniformLinear(x0, dx float64, vals []float64) *Linear {
	axes := []*Axis{mustUniformAxis("xs", x0, dx, len(vals))}
	return &Linear{newFixed(axes, binary.BigEndian, MethodLinear, vals)}
}

// Eval returns the interpolated value at x.
func (lin *Linear) Eval(x float64) float64 { return lin.f.eval(x) }

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	res := outBuf(len(xs), out)
	for i, x := range xs {
		res[i] = lin.Eval(x)
	}
	return res
}

// Ref returns a copy of lin with its own cache.
func (lin *Linear) Ref() UniInterpolator { return &Linear{lin.f.ref()} }

/////////////////////////////
// BiLinear Implementation //
/////////////////////////////

// BiLinear is a bi-linear interpolator.
type BiLinear struct {
	f fixed
}

// NewBiLinear creates a bi-linear interpolator over the grid spanned by xs
// and ys. If order is binary.BigEndian, x varies slowest in vals. If it is
// binary.LittleEndian, x varies fastest.
func NewBiLinear(xs, ys, vals []float64, order binary.ByteOrder) *BiLinear {
	if len(xs)*len(ys) != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d and len(ys) = %d",
			len(vals), len(xs), len(ys),
		))
	}
	axes := []*Axis{mustAxis("xs", xs), mustAxis("ys", ys)}
	return &BiLinear{newFixed(axes, order, MethodLinear, vals)}
}

// NewUniformBiLinear creates a bi-linear interpolator over a uniformly spaced
// grid.
func NewUniformBiLinear(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	vals []float64, order binary.ByteOrder,
) *BiLinear {
	if nx*ny != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but nx = %d and ny = %d",
			len(vals), nx, ny,
		))
	}
	axes := []*Axis{
		mustUniformAxis("xs", x0, dx, nx),
		mustUniformAxis("ys", y0, dy, ny),
	}
	return &BiLinear{newFixed(axes, order, MethodLinear, vals)}
}

// Eval returns the interpolated value at (x, y).
func (bi *BiLinear) Eval(x, y float64) float64 { return bi.f.eval(x, y) }

// EvalAll evaluates the interpolator at every (xs[i], ys[i]).
func (bi *BiLinear) EvalAll(xs, ys []float64, out ...[]float64) []float64 {
	res := outBuf(len(xs), out)
	for i := range xs {
		res[i] = bi.Eval(xs[i], ys[i])
	}
	return res
}

// EvalAllX evaluates the interpolator along the line of fixed x.
func (bi *BiLinear) EvalAllX(
	x float64, ys []float64, out ...[]float64,
) []float64 {
	res := outBuf(len(ys), out)
	for i, y := range ys {
		res[i] = bi.Eval(x, y)
	}
	return res
}

// EvalAllY evaluates the interpolator along the line of fixed y.
func (bi *BiLinear) EvalAllY(
	xs []float64, y float64, out ...[]float64,
) []float64 {
	res := outBuf(len(xs), out)
	for i, x := range xs {
		res[i] = bi.Eval(x, y)
	}
	return res
}

// Ref returns a copy of bi with its own cache.
func (bi *BiLinear) Ref() BiInterpolator { return &BiLinear{bi.f.ref()} }

//////////////////////////////
// TriLinear Implementation //
//////////////////////////////

// TriLinear is a tri-linear interpolator.
type TriLinear struct {
	f fixed
}

// NewTriLinear creates a tri-linear interpolator over the grid spanned by xs,
// ys and zs. order gives the layout of vals, as in NewBiLinear.
func NewTriLinear(
	xs, ys, zs, vals []float64, order binary.ByteOrder,
) *TriLinear {
	if len(xs)*len(ys)*len(zs) != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d, len(ys) = %d, and len(zs) = %d",
			len(vals), len(xs), len(ys), len(zs),
		))
	}
	axes := []*Axis{mustAxis("xs", xs), mustAxis("ys", ys), mustAxis("zs", zs)}
	return &TriLinear{newFixed(axes, order, MethodLinear, vals)}
}

// NewUniformTriLinear creates a tri-linear interpolator over a uniformly
// spaced grid.
func NewUniformTriLinear(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	z0, dz float64, nz int,
	vals []float64, order binary.ByteOrder,
) *TriLinear {
	if nx*ny*nz != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but nx = %d, ny = %d, and nz = %d",
			len(vals), nx, ny, nz,
		))
	}
	axes := uniformAxes3(x0, dx, nx, y0, dy, ny, z0, dz, nz)
	return &TriLinear{newFixed(axes, order, MethodLinear, vals)}
}

// Eval returns the interpolated value at (x, y, z).
func (tri *TriLinear) Eval(x, y, z float64) float64 {
	return tri.f.eval(x, y, z)
}

// EvalAll evaluates the interpolator at every (xs[i], ys[i], zs[i]).
func (tri *TriLinear) EvalAll(
	xs, ys, zs []float64, out ...[]float64,
) []float64 {
	res := outBuf(len(xs), out)
	for i := range xs {
		res[i] = tri.Eval(xs[i], ys[i], zs[i])
	}
	return res
}

// EvalAllXY evaluates the interpolator along the line of fixed x and y.
func (tri *TriLinear) EvalAllXY(
	x, y float64, zs []float64, out ...[]float64,
) []float64 {
	res := outBuf(len(zs), out)
	for i, z := range zs {
		res[i] = tri.Eval(x, y, z)
	}
	return res
}

// Ref returns a copy of tri with its own cache.
func (tri *TriLinear) Ref() TriInterpolator { return &TriLinear{tri.f.ref()} }

///////////////////////////////////
// TriLinearMulti Implementation //
///////////////////////////////////

// TriLinearMulti is a tri-linear interpolator over vector-valued grid points.
// Every component is interpolated at once.
type TriLinearMulti struct {
	f   fixed
	dim int
}

// NewTriLinearMulti creates a vector-valued tri-linear interpolator. vals[i]
// is the vector at grid point i and every vector must have the same length.
func NewTriLinearMulti(
	xs, ys, zs []float64, vals [][]float64, order binary.ByteOrder,
) *TriLinearMulti {
	if len(xs)*len(ys)*len(zs) != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d, len(ys) = %d, and len(zs) = %d",
			len(vals), len(xs), len(ys), len(zs),
		))
	}
	axes := []*Axis{mustAxis("xs", xs), mustAxis("ys", ys), mustAxis("zs", zs)}
	tables := transpose(vals)
	return &TriLinearMulti{newFixed(axes, order, MethodLinear, tables...), len(tables)}
}

// NewUniformTriLinearMulti creates a vector-valued tri-linear interpolator
// over a uniformly spaced grid.
func NewUniformTriLinearMulti(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	z0, dz float64, nz int,
	vals [][]float64, order binary.ByteOrder,
) *TriLinearMulti {
	if nx*ny*nz != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but nx = %d, ny = %d, and nz = %d",
			len(vals), nx, ny, nz,
		))
	}
	axes := uniformAxes3(x0, dx, nx, y0, dy, ny, z0, dz, nz)
	tables := transpose(vals)
	return &TriLinearMulti{newFixed(axes, order, MethodLinear, tables...), len(tables)}
}

// Dim returns the length of the interpolated vectors.
func (tri *TriLinearMulti) Dim() int { return tri.dim }

// Eval returns the interpolated vector at (x, y, z). If an output array is
// given, the output is written to that array (the array is still returned as
// a convenience).
func (tri *TriLinearMulti) Eval(x, y, z float64, out ...[]float64) []float64 {
	res, _, err := tri.f.intr.EvalAll(tri.f.set(x, y, z), outBuf(tri.dim, out))
	if err != nil {
		panic(err.Error())
	}
	return res
}

// Ref returns a copy of tri with its own cache.
func (tri *TriLinearMulti) Ref() *TriLinearMulti {
	return &TriLinearMulti{tri.f.ref(), tri.dim}
}

func uniformAxes3(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	z0, dz float64, nz int,
) []*Axis {
	return []*Axis{
		mustUniformAxis("xs", x0, dx, nx),
		mustUniformAxis("ys", y0, dy, ny),
		mustUniformAxis("zs", z0, dz, nz),
	}
}

// transpose turns per-point vectors into one table per component.
func transpose(vals [][]float64) [][]float64 {
	if len(vals) == 0 {
		return nil
	}
	dim := len(vals[0])
	tables := make([][]float64, dim)
	for j := range tables {
		tables[j] = make([]float64, len(vals))
	}
	for i, v := range vals {
		if len(v) != dim {
			panic(fmt.Sprintf(
				"len(vals[%d]) = %d, but len(vals[0]) = %d", i, len(v), dim,
			))
		}
		for j := range v {
			tables[j][i] = v[j]
		}
	}
	return tables
}

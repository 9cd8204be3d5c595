package interpolate

import (
	"encoding/binary"
	"fmt"
)

// The cubic interpolators use cubic Hermite splines whose tangents are
// estimated from neighboring grid points, so unlike natural splines they only
// look at the four points around each interval. On two point axes they reduce
// to linear interpolation.

//////////////////////////
// Cubic Implementation //
//////////////////////////

// Cubic is a cubic Hermite interpolator.
type Cubic struct {
	f fixed
}

// NewCubic creates a cubic interpolator for a sequence of strictly increasing
// points, xs, which take on the values given by vals.
func NewCubic(xs, vals []float64) *Cubic {
	if len(xs) != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d", len(vals), len(xs),
		))
	}
	axes := []*Axis{mustAxis("xs", xs)}
	return &Cubic{newFixed(axes, binary.BigEndian, MethodCubic, vals)}
}

// NewUniformCubic creates a cubic interpolator over the uniformly spaced
// sequence of x values starting at x0 and separated by dx.
func NewUniformCubic(x0, dx float64, vals []float64) *Cubic {
	axes := []*Axis{mustUniformAxis("xs", x0, dx, len(vals))}
	return &Cubic{newFixed(axes, binary.BigEndian, MethodCubic, vals)}
}

// Eval returns the interpolated value at x.
func (c *Cubic) Eval(x float64) float64 { return c.f.eval(x) }

// EvalAll evaluates the interpolator at all the given x values.
func (c *Cubic) EvalAll(xs []float64, out ...[]float64) []float64 {
	res := outBuf(len(xs), out)
	for i, x := range xs {
		res[i] = c.Eval(x)
	}
	return res
}

// Ref returns a copy of c with its own cache.
func (c *Cubic) Ref() UniInterpolator { return &Cubic{c.f.ref()} }

////////////////////////////
// BiCubic Implementation //
////////////////////////////

type BiCubic struct {
	f fixed
}

func NewBiCubic(xs, ys, vals []float64, order binary.ByteOrder) *BiCubic {
	if len(xs)*len(ys) != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d and len(ys) = %d",
			len(vals), len(xs), len(ys),
		))
	}
	axes := []*Axis{mustAxis("xs", xs), mustAxis("ys", ys)}
	return &BiCubic{newFixed(axes, order, MethodCubic, vals)}
}

func NewUniformBiCubic(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	vals []float64, order binary.ByteOrder,
) *BiCubic {
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
	return &BiCubic{newFixed(axes, order, MethodCubic, vals)}
}

func (bi *BiCubic) Eval(x, y float64) float64 { return bi.f.eval(x, y) }

func (bi *BiCubic) EvalAll(xs, ys []float64, out ...[]float64) []float64 {
	res := outBuf(len(xs), out)
	for i := range xs {
		res[i] = bi.Eval(xs[i], ys[i])
	}
	return res
}

func (bi *BiCubic) Ref() BiInterpolator { return &BiCubic{bi.f.ref()} }

/////////////////////////////
// TriCubic Implementation //
/////////////////////////////

type TriCubic struct {
	f fixed
}

func NewTriCubic(
	xs, ys, zs, vals []float64, order binary.ByteOrder,
) *TriCubic {
	if len(xs)*len(ys)*len(zs) != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d, len(ys) = %d, and len(zs) = %d",
			len(vals), len(xs), len(ys), len(zs),
		))
	}
	axes := []*Axis{mustAxis("xs", xs), mustAxis("ys", ys), mustAxis("zs", zs)}
	return &TriCubic{newFixed(axes, order, MethodCubic, vals)}
}

func NewUniformTriCubic(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	z0, dz float64, nz int,
	vals []float64, order binary.ByteOrder,
) *TriCubic {
	if nx*ny*nz != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but nx = %d, ny = %d, and nz = %d",
			len(vals), nx, ny, nz,
		))
	}
	axes := uniformAxes3(x0, dx, nx, y0, dy, ny, z0, dz, nz)
	return &TriCubic{newFixed(axes, order, MethodCubic, vals)}
}

func (tri *TriCubic) Eval(x, y, z float64) float64 {
	return tri.f.eval(x, y, z)
}

func (tri *TriCubic) EvalAll(
	xs, ys, zs []float64, out ...[]float64,
) []float64 {
	res := outBuf(len(xs), out)
	for i := range xs {
		res[i] = tri.Eval(xs[i], ys[i], zs[i])
	}
	return res
}

func (tri *TriCubic) Ref() TriInterpolator { return &TriCubic{tri.f.ref()} }

package interpolate

import (
	"encoding/binary"
	"fmt"
)

// fixed adapts an Interpolator to a fixed number of scalar coordinates. It
// backs all the one, two and three dimensional interpolators.
type fixed struct {
	intr *Interpolator
	// rev is true if the first coordinate varies fastest in the value
	// tables, in which case the axes are stored in reverse order.
	rev    bool
	target []float64
}

func newFixed(
	axes []*Axis, order binary.ByteOrder, m Method, tables ...[]float64,
) fixed {
	rev := order == binary.LittleEndian
	if rev {
		for i, j := 0, len(axes)-1; i < j; i, j = i+1, j-1 {
			axes[i], axes[j] = axes[j], axes[i]
		}
	}

	for _, a := range axes {
		if a.Len() < 2 {
			continue
		}
		if err := a.SetInterpMethod(m); err != nil {
			panic(err.Error())
		}
	}

	intr, err := NewFromAxes(axes, tables...)
	if err != nil {
		panic(err.Error())
	}
	return fixed{intr: intr, rev: rev, target: make([]float64, len(axes))}
}

// ref returns a copy of f with its own cache.
func (f *fixed) ref() fixed {
	return fixed{intr: f.intr.Ref(), rev: f.rev, target: make([]float64, len(f.target))}
}

func (f *fixed) set(x ...float64) []float64 {
	n := len(f.target)
	for i := range x {
		if f.rev {
			f.target[n-1-i] = x[i]
		} else {
			f.target[i] = x[i]
		}
	}
	return f.target
}

func (f *fixed) eval(x ...float64) float64 {
	v, _, err := f.intr.Eval(f.set(x...), 0)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// mustAxis panics with a message naming the coordinate if the axis cannot be
// built.
func mustAxis(name string, xs []float64) *Axis {
	a, err := NewAxis(xs)
	if err != nil {
		panic(fmt.Sprintf("%s: %s", name, err.Error()))
	}
	return a
}

func mustUniformAxis(name string, x0, dx float64, n int) *Axis {
	a, err := NewUniformAxis(x0, dx, n)
	if err != nil {
		panic(fmt.Sprintf("%s: %s", name, err.Error()))
	}
	return a
}

// outBuf returns the first element of out if there is one and otherwise a
// new buffer of length n.
func outBuf(n int, out [][]float64) []float64 {
	if len(out) == 0 {
		return make([]float64, n)
	}
	return out[0]
}

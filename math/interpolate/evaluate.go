package interpolate

import (
	"gonum.org/v1/gonum/floats"
)

// Eval returns the value of table i at a resolved point. p must have been
// resolved against d and i must be a valid table index.
func (d *GriddedData) Eval(p *Point, i int) float64 {
	sum := 0.0
	d.eachCorner(p, func(idx int, w float64) {
		sum += w * d.at(i, idx)
	})
	return sum
}

// EvalAll returns the value of every table at a resolved point. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (d *GriddedData) EvalAll(p *Point, out ...[]float64) []float64 {
	n := d.NumTables()
	if len(out) == 0 {
		out = [][]float64{make([]float64, n)}
	}
	res := out[0][:n]
	for i := range res {
		res[i] = 0
	}
	if n == 0 {
		return res
	}

	col := make([]float64, n)
	d.eachCorner(p, func(idx int, w float64) {
		floats.AddScaled(res, w, d.column(idx, col))
	})
	return res
}

// eachCorner calls f with the flat index and weight of every grid point that
// contributes to the value at p. This is the tensor product of each axis's
// terms: 2^ndims points for linear axes, with constant axes contributing one
// point and cubic axes contributing four. Neighbors past the edge of the grid
// are clamped onto it. Points with zero weight are skipped.
func (d *GriddedData) eachCorner(p *Point, f func(idx int, w float64)) {
	counters, coords := p.counters, p.coords
	for dim := range counters {
		counters[dim] = 0
	}

	n := len(p.Axes)
	for {
		w := 1.0
		for dim := 0; dim < n; dim++ {
			ap := &p.Axes[dim]
			t := ap.Terms[counters[dim]]
			w *= t.Weight
			coords[dim] = d.grid.Clamp(dim, ap.Floor+t.Offset)
		}
		if w != 0 {
			f(d.grid.Idx(coords), w)
		}

		// Advance the mixed-radix counter, last axis fastest.
		dim := n - 1
		for ; dim >= 0; dim-- {
			counters[dim]++
			if counters[dim] < len(p.Axes[dim].Terms) {
				break
			}
			counters[dim] = 0
		}
		if dim < 0 {
			return
		}
	}
}

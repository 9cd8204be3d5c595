/*package geom provides index arithmetic for dense, row-major grids of
arbitrary dimension.
*/
package geom

import (
	"fmt"
)

// Grid provides an interface for reasoning over a 1D slice as if it were an
// N-dimensional grid. The first dimension varies slowest.
type Grid struct {
	Lengths []int
	Volume  int
	strides []int
}

// NewGrid returns a new Grid instance.
func NewGrid(lengths []int) *Grid {
	g := &Grid{}
	g.Init(lengths)
	return g
}

// Init initializes a Grid instance. Every length must be positive.
func (g *Grid) Init(lengths []int) {
	g.Lengths = append(g.Lengths[:0], lengths...)
	g.strides = make([]int, len(lengths))

	g.Volume = 1
	for i := len(lengths) - 1; i >= 0; i-- {
		if lengths[i] <= 0 {
			panic(fmt.Sprintf(
				"Grid dimension %d given non-positive length %d.", i, lengths[i],
			))
		}
		g.strides[i] = g.Volume
		g.Volume *= lengths[i]
	}
}

// Dims returns the number of dimensions of the grid.
func (g *Grid) Dims() int { return len(g.Lengths) }

// Stride returns the distance in the flat slice between neighbors along dim.
func (g *Grid) Stride(dim int) int { return g.strides[dim] }

// Idx returns the grid index corresponding to a set of coordinates. No bounds
// checking is done.
func (g *Grid) Idx(coords []int) int {
	idx := 0
	for i, c := range coords {
		idx += c * g.strides[i]
	}
	return idx
}

// IdxCheck returns an index and true if the given coordinate are valid and
// false otherwise.
func (g *Grid) IdxCheck(coords []int) (idx int, ok bool) {
	if !g.BoundsCheck(coords) {
		return -1, false
	}

	return g.Idx(coords), true
}

// BoundsCheck returns true if the given coordinates are within the Grid and
// false otherwise.
func (g *Grid) BoundsCheck(coords []int) bool {
	if len(coords) != len(g.Lengths) {
		return false
	}
	for i, c := range coords {
		if c < 0 || c >= g.Lengths[i] {
			return false
		}
	}
	return true
}

// Coords returns the coordinates of a point from its grid index. If an output
// slice is given, the coordinates are written to it.
func (g *Grid) Coords(idx int, out ...[]int) []int {
	if len(out) == 0 {
		out = [][]int{make([]int, len(g.Lengths))}
	}
	for i, s := range g.strides {
		out[0][i] = idx / s
		idx %= s
	}
	return out[0]
}

// Clamp returns c limited to the valid index range of dimension dim.
func (g *Grid) Clamp(dim, c int) int {
	if c < 0 {
		return 0
	}
	if c >= g.Lengths[dim] {
		return g.Lengths[dim] - 1
	}
	return c
}

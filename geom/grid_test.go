package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridIdx(t *testing.T) {
	table := []struct {
		lengths []int
		coords  []int
		idx     int
	}{
		{[]int{5}, []int{3}, 3},
		{[]int{2, 2}, []int{1, 0}, 2},
		{[]int{2, 2}, []int{0, 1}, 1},
		{[]int{3, 4, 5}, []int{0, 0, 0}, 0},
		{[]int{3, 4, 5}, []int{1, 2, 3}, 1*20 + 2*5 + 3},
		{[]int{3, 4, 5}, []int{2, 3, 4}, 59},
	}

	for i, test := range table {
		g := NewGrid(test.lengths)
		assert.Equal(t, test.idx, g.Idx(test.coords), "%d) Idx", i)
		assert.Equal(t, test.coords, g.Coords(test.idx), "%d) Coords", i)
	}
}

func TestGridVolume(t *testing.T) {
	g := NewGrid([]int{3, 4, 5})
	assert.Equal(t, 60, g.Volume)
	assert.Equal(t, 3, g.Dims())
	assert.Equal(t, 20, g.Stride(0))
	assert.Equal(t, 5, g.Stride(1))
	assert.Equal(t, 1, g.Stride(2))
}

func TestGridBoundsCheck(t *testing.T) {
	g := NewGrid([]int{2, 3})

	idx, ok := g.IdxCheck([]int{1, 2})
	assert.True(t, ok)
	assert.Equal(t, 5, idx)

	for _, coords := range [][]int{{2, 0}, {0, 3}, {-1, 0}, {0}, {0, 0, 0}} {
		idx, ok := g.IdxCheck(coords)
		assert.False(t, ok, "%v", coords)
		assert.Equal(t, -1, idx, "%v", coords)
	}
}

func TestGridClamp(t *testing.T) {
	g := NewGrid([]int{4})
	assert.Equal(t, 0, g.Clamp(0, -1))
	assert.Equal(t, 2, g.Clamp(0, 2))
	assert.Equal(t, 3, g.Clamp(0, 4))
	assert.Equal(t, 3, g.Clamp(0, 5))
}

func TestGridCoordsOut(t *testing.T) {
	g := NewGrid([]int{2, 2, 2})
	out := make([]int, 3)
	res := g.Coords(7, out)
	assert.Equal(t, []int{1, 1, 1}, out)
	assert.Equal(t, out, res)
}

func TestGridPanicsOnEmptyAxis(t *testing.T) {
	assert.Panics(t, func() { NewGrid([]int{2, 0}) })
}

func BenchmarkGridIdx(b *testing.B) {
	g := NewGrid([]int{10, 10, 10, 10})
	coords := []int{1, 2, 3, 4}
	for i := 0; i < b.N; i++ {
		g.Idx(coords)
	}
}

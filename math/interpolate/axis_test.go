package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAxisErrors(t *testing.T) {
	tests := []struct {
		name string
		grid []float64
	}{
		{"empty", []float64{}},
		{"decreasing", []float64{0, 2, 1}},
		{"repeated", []float64{0, 1, 1, 2}},
		{"NaN", []float64{0, math.NaN(), 2}},
		{"leading NaN", []float64{math.NaN()}},
		{"infinite", []float64{0, 1, math.Inf(1)}},
	}

	for _, test := range tests {
		_, err := NewAxis(test.grid)
		assert.ErrorIs(t, err, ErrConstruction, test.name)
	}

	_, err := NewUniformAxis(0, 1, 0)
	assert.ErrorIs(t, err, ErrConstruction)
	_, err = NewUniformAxis(0, -1, 3)
	assert.ErrorIs(t, err, ErrConstruction)
	_, err = NewUniformAxis(0, 0, 1)
	assert.NoError(t, err)
}

func TestNewAxisCopiesGrid(t *testing.T) {
	grid := []float64{0, 1, 2}
	a, err := NewAxis(grid)
	require.NoError(t, err)
	grid[2] = 100
	assert.Equal(t, []float64{0, 1, 2}, a.Grid())
}

func TestLocate(t *testing.T) {
	a, err := NewAxis([]float64{0, 1, 2, 4})
	require.NoError(t, err)

	tests := []struct {
		x     float64
		floor int
		frac  float64
		b     Bounds
	}{
		{-1, 0, -1, OutOfRange},
		{0, 0, 0, InRange},
		{0.5, 0, 0.5, InRange},
		{1, 1, 0, InRange},
		{2, 2, 0, InRange},
		{3, 2, 0.5, InRange},
		{4, 3, 0, InRange},
		{6, 2, 2, OutOfRange},
	}

	for i, test := range tests {
		floor, frac, b := a.Locate(test.x)
		if floor != test.floor || frac != test.frac || b != test.b {
			t.Errorf(
				"%d) Expected Locate(%g) = (%d, %g, %s), got (%d, %g, %s).",
				i, test.x, test.floor, test.frac, test.b, floor, frac, b,
			)
		}
	}
}

func TestLocateGridPoints(t *testing.T) {
	grids := [][]float64{
		{3},
		{0, 1},
		{-5, -1, 0, 0.25, 7, 100},
		{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7},
	}

	for _, grid := range grids {
		a, err := NewAxis(grid)
		require.NoError(t, err)
		for i, x := range grid {
			floor, frac, b := a.Locate(x)
			assert.Equal(t, i, floor, "grid %v, point %d", grid, i)
			assert.Equal(t, 0.0, frac, "grid %v, point %d", grid, i)
			assert.Equal(t, InRange, b, "grid %v, point %d", grid, i)
		}
	}
}

func TestUniformLocateMatchesExplicit(t *testing.T) {
	x0, dx, n := -1.0, 0.1, 31
	unif, err := NewUniformAxis(x0, dx, n)
	require.NoError(t, err)
	expl, err := NewAxis(unif.Grid())
	require.NoError(t, err)

	for x := -2.0; x <= 3.0; x += 0.0137 {
		uf, ufrac, ub := unif.Locate(x)
		ef, efrac, eb := expl.Locate(x)
		assert.Equal(t, ef, uf, "x = %g", x)
		assert.InDelta(t, efrac, ufrac, 1e-12, "x = %g", x)
		assert.Equal(t, eb, ub, "x = %g", x)
	}
}

func TestLocateLimits(t *testing.T) {
	a, err := NewAxis([]float64{0, 10})
	require.NoError(t, err)
	require.NoError(t, a.SetExtrapLimits(-2, 12))

	_, _, b := a.Locate(-1)
	assert.Equal(t, OutOfRange, b)
	_, _, b = a.Locate(-2)
	assert.Equal(t, OutOfRange, b)
	_, _, b = a.Locate(-5)
	assert.Equal(t, OutsideLimits, b)
	_, _, b = a.Locate(13)
	assert.Equal(t, OutsideLimits, b)
}

func TestSpacingMultipliers(t *testing.T) {
	a, err := NewAxis([]float64{0, 1, 3, 6})
	require.NoError(t, err)

	floor := []float64{1, 2.0 / 3, 3.0 / 5}
	ceil := []float64{1.0 / 3, 2.0 / 5, 1}
	for i := range floor {
		assert.InDelta(t, floor[i], a.SpacingMultiplier(Floor, i), 1e-12)
		assert.InDelta(t, ceil[i], a.SpacingMultiplier(Ceiling, i), 1e-12)
	}
}

func TestAxisSetters(t *testing.T) {
	a, err := NewAxis([]float64{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, MethodLinear, a.InterpMethod())
	assert.Equal(t, MethodConstant, a.ExtrapMethod())

	v := a.version
	assert.ErrorIs(t, a.SetInterpMethod(MethodConstant), ErrInvalidMethod)
	assert.ErrorIs(t, a.SetExtrapMethod(Method(7)), ErrInvalidMethod)
	assert.ErrorIs(t, a.SetExtrapLimits(1, 10), ErrInvalidLimits)
	assert.ErrorIs(t, a.SetExtrapLimits(-1, 1), ErrInvalidLimits)
	assert.ErrorIs(t, a.SetExtrapLimits(math.NaN(), 10), ErrInvalidLimits)
	assert.Equal(t, v, a.version, "failed setters changed the axis")

	require.NoError(t, a.SetInterpMethod(MethodCubic))
	require.NoError(t, a.SetExtrapMethod(MethodLinear))
	require.NoError(t, a.SetExtrapLimits(-1, 3))
	assert.Equal(t, MethodCubic, a.InterpMethod())
	assert.Equal(t, MethodLinear, a.ExtrapMethod())
	low, high := a.ExtrapLimits()
	assert.Equal(t, -1.0, low)
	assert.Equal(t, 3.0, high)
	assert.Equal(t, v+3, a.version)

	single, err := NewAxis([]float64{5})
	require.NoError(t, err)
	assert.ErrorIs(t, single.SetInterpMethod(MethodCubic), ErrInvalidMethod)
	assert.ErrorIs(t, single.SetExtrapMethod(MethodCubic), ErrInvalidMethod)
	assert.NoError(t, single.SetExtrapMethod(MethodLinear))
}

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{MethodConstant, MethodLinear, MethodCubic} {
		got, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseMethod("  cubic ")
	require.NoError(t, err)
	assert.Equal(t, MethodCubic, got)

	_, err = ParseMethod("quintic")
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func BenchmarkLocateUniform(b *testing.B) {
	a, _ := NewUniformAxis(0, 0.01, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Locate(float64(i%1000) * 0.00997)
	}
}

func BenchmarkLocateExplicit(b *testing.B) {
	grid := make([]float64, 1000)
	for i := range grid {
		grid[i] = float64(i) * float64(i)
	}
	a, _ := NewAxis(grid)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Locate(float64(i % 998001))
	}
}

package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func termWeightSum(ap AxisPoint) float64 {
	sum := 0.0
	for _, t := range ap.Terms {
		sum += t.Weight
	}
	return sum
}

func TestPointLinear(t *testing.T) {
	d, err := NewGriddedDataFromGrid([][]float64{{0, 1, 2}, {0, 10}})
	require.NoError(t, err)

	p, err := NewPoint(d, []float64{1.25, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, p.Floors())
	assert.Equal(t, []float64{0.25, 0.4}, p.Fractions())
	assert.Equal(t, []Method{MethodLinear, MethodLinear}, p.Methods())
	assert.Equal(t, InRange, p.Bounds)

	ap := p.Axes[0]
	assert.Equal(t, []float64{0.75, 0.25}, ap.Coeffs)
	assert.Equal(t, []Term{{0, 0.75}, {1, 0.25}}, ap.Terms)
}

func TestPointCubic(t *testing.T) {
	d, err := NewGriddedDataFromGrid([][]float64{{0, 1, 2, 3}})
	require.NoError(t, err)
	require.NoError(t, d.SetInterpMethod(0, MethodCubic))

	p, err := NewPoint(d, []float64{1.5})
	require.NoError(t, err)
	ap := p.Axes[0]
	assert.Equal(t, MethodCubic, ap.Method)
	assert.Equal(t, 1, ap.Floor)

	// h00 = h01 = 0.5, h10 = -h11 = 0.125, both multipliers are 0.5.
	expCoeffs := []float64{0.5, 0.5, 0.0625, -0.0625}
	expTerms := []Term{{-1, -0.0625}, {0, 0.5625}, {1, 0.5625}, {2, -0.0625}}
	require.Len(t, ap.Coeffs, 4)
	require.Len(t, ap.Terms, 4)
	for i := range expCoeffs {
		assert.InDelta(t, expCoeffs[i], ap.Coeffs[i], 1e-12)
		assert.Equal(t, expTerms[i].Offset, ap.Terms[i].Offset)
		assert.InDelta(t, expTerms[i].Weight, ap.Terms[i].Weight, 1e-12)
	}
	assert.InDelta(t, 1, termWeightSum(ap), 1e-12)
}

func TestPointResolution(t *testing.T) {
	tests := []struct {
		grid   []float64
		extrap Method
		x      float64
		floor  int
		method Method
		b      Bounds
		terms  int
	}{
		{[]float64{0, 1, 2}, MethodConstant, -3, 0, MethodConstant, OutOfRange, 1},
		{[]float64{0, 1, 2}, MethodConstant, 7, 2, MethodConstant, OutOfRange, 1},
		{[]float64{0, 1, 2}, MethodLinear, 7, 1, MethodLinear, OutOfRange, 2},
		{[]float64{0, 1, 2}, MethodCubic, -1, 0, MethodCubic, OutOfRange, 4},
		{[]float64{0, 1, 2}, MethodLinear, 2, 2, MethodConstant, InRange, 1},
		{[]float64{4}, MethodLinear, 4, 0, MethodConstant, InRange, 1},
		{[]float64{4}, MethodLinear, 9, 0, MethodConstant, OutOfRange, 1},
	}

	for i, test := range tests {
		a, err := NewAxis(test.grid)
		require.NoError(t, err)
		require.NoError(t, a.SetExtrapMethod(test.extrap))
		d, err := NewGriddedData([]*Axis{a})
		require.NoError(t, err)

		p, err := NewPoint(d, []float64{test.x})
		require.NoError(t, err)
		ap := p.Axes[0]
		if ap.Floor != test.floor || ap.Method != test.method ||
			ap.Bounds != test.b || len(ap.Terms) != test.terms {
			t.Errorf(
				"%d) Expected floor %d, %s, %s, %d terms. Got floor %d, %s, %s, %d terms.",
				i, test.floor, test.method, test.b, test.terms,
				ap.Floor, ap.Method, ap.Bounds, len(ap.Terms),
			)
		}
		assert.InDelta(t, 1, termWeightSum(ap), 1e-12, "%d)", i)
	}
}

func TestPointOutsideLimits(t *testing.T) {
	a, err := NewAxis([]float64{0, 10})
	require.NoError(t, err)
	require.NoError(t, a.SetExtrapMethod(MethodLinear))
	require.NoError(t, a.SetExtrapLimits(-2, 12))
	b, err := NewAxis([]float64{0, 1})
	require.NoError(t, err)
	d, err := NewGriddedData([]*Axis{a, b})
	require.NoError(t, err)

	p, err := NewPoint(d, []float64{-5, 2})
	require.NoError(t, err)
	assert.Equal(t, OutsideLimits, p.Bounds)
	assert.Equal(t, OutsideLimits, p.Axes[0].Bounds)
	assert.Equal(t, OutOfRange, p.Axes[1].Bounds)
	assert.Equal(t, MethodConstant, p.Axes[0].Method)
	assert.Equal(t, []int{0, 1}, p.Floors())
}

func TestPointClone(t *testing.T) {
	d, err := NewGriddedDataFromGrid([][]float64{{0, 1, 2}})
	require.NoError(t, err)
	p, err := NewPoint(d, []float64{0.5})
	require.NoError(t, err)

	q := p.Clone()
	require.NoError(t, p.Init(d, []float64{1.75}))
	assert.Equal(t, []float64{0.5}, q.Target)
	assert.Equal(t, []float64{0.5, 0.5}, q.Axes[0].Coeffs)
	assert.Equal(t, []float64{0.25, 0.75}, p.Axes[0].Coeffs)

	_, err = NewPoint(d, []float64{0, 0})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

package io

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/gridintr/math/interpolate"
)

func writeFile(t *testing.T, dir, name, body string) string {
	fname := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))
	return fname
}

// capacityFile has 12 rows. The first column is 10*i and the second is -i.
func capacityFile() string {
	sb := &strings.Builder{}
	for i := 0; i < 12; i++ {
		fmt.Fprintf(sb, "%d %d\n", 10*i, -i)
	}
	return sb.String()
}

func TestReadTableColumn(t *testing.T) {
	dir := t.TempDir()
	fname := writeFile(t, dir, "capacity.txt", capacityFile())

	col, err := ReadTableColumn(fname, 1)
	require.NoError(t, err)
	require.Len(t, col, 12)
	assert.Equal(t, 0.0, col[0])
	assert.Equal(t, -11.0, col[11])

	_, err = ReadTableColumn(filepath.Join(dir, "missing.txt"), 0)
	assert.Error(t, err)
}

func TestReadPoints(t *testing.T) {
	dir := t.TempDir()
	fname := writeFile(t, dir, "points.txt", "1 2 3\n4 5 6\n")

	points, err := ReadPoints(fname, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {4, 5}}, points)

	_, err = ReadPoints(fname, 0)
	assert.Error(t, err)
}

func TestBuildInterpolator(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFile(t, dir, "capacity.txt", capacityFile())
	fname := writeFile(t, dir, "grid.cfg", ExampleGridFile)

	con, err := ReadGridConfig(fname)
	require.NoError(t, err)
	intr, err := BuildInterpolator(ctx, con)
	require.NoError(t, err)
	assert.Equal(t, 2, intr.NDims())
	assert.Equal(t, 2, intr.NumTables())

	// temperature = 10 and flow = 0.75 is grid point (1, 1), index 4.
	vals, b, err := intr.EvalAll([]float64{10, 0.75})
	require.NoError(t, err)
	assert.Equal(t, interpolate.InRange, b)
	assert.InDelta(t, 40.0, vals[0], 1e-12)
	assert.InDelta(t, 3.0, vals[1], 1e-12)

	// Linear extrapolation in temperature, inside its limits.
	_, b, err = intr.EvalAll([]float64{-5, 0.75})
	require.NoError(t, err)
	assert.Equal(t, interpolate.OutOfRange, b)

	// Past the limits the grid edge is used.
	vals, b, err = intr.EvalAll([]float64{100, 1})
	require.NoError(t, err)
	assert.Equal(t, interpolate.OutsideLimits, b)
	assert.InDelta(t, 110.0, vals[0], 1e-12)
	assert.InDelta(t, 6.0, vals[1], 1e-12)
}

func TestBuildInterpolatorErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// capacity.txt is missing.
	con, err := ParseGridConfig(ExampleGridFile, dir)
	require.NoError(t, err)
	_, err = BuildInterpolator(ctx, con)
	assert.Error(t, err)

	// The table has the wrong number of rows.
	writeFile(t, dir, "capacity.txt", "1\n2\n3\n")
	_, err = BuildInterpolator(ctx, con)
	assert.ErrorIs(t, err, interpolate.ErrConstruction)
}

func TestEvalPointsAndWriteResults(t *testing.T) {
	ctx := context.Background()
	intr, err := interpolate.New(
		[][]float64{{0, 10}}, []float64{0, 100}, []float64{1, 1},
	)
	require.NoError(t, err)

	results, err := EvalPoints(ctx, intr, [][]float64{{5}, {20}})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []float64{50, 1}, results[0].Values)
	assert.Equal(t, interpolate.InRange, results[0].Bounds)
	assert.Equal(t, interpolate.OutOfRange, results[1].Bounds)

	buf := &bytes.Buffer{}
	require.NoError(t, WriteResults(buf, []string{"x"}, []string{"a", "b"}, results))
	assert.Equal(t,
		"# x a b Bounds\n5 50 1 InRange\n20 100 1 OutOfRange\n", buf.String(),
	)

	_, err = EvalPoints(ctx, intr, [][]float64{{5}, {1, 2}})
	assert.ErrorIs(t, err, interpolate.ErrDimensionMismatch)
}

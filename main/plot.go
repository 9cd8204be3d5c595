package main

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gridintr/io"
	"github.com/phil-mansfield/gridintr/math/interpolate"
)

// slice is a one dimensional cut through an interpolated table.
type slice struct {
	// xs and ys are the sampled curve and gxs and gys are its values at the
	// grid points along the cut.
	xs, ys, gxs, gys []float64
	extrapolated     int
}

// cutSlice samples table along axis dim through point.
func cutSlice(
	intr *interpolate.Interpolator, dim, table int,
	point []float64, samples int, margin float64,
) (*slice, error) {
	if len(point) != intr.NDims() {
		return nil, fmt.Errorf(
			"'At' has %d coordinates, but the grid has %d axes",
			len(point), intr.NDims(),
		)
	}

	grid := intr.Data().Axis(dim).Grid()
	lo, hi := grid[0], grid[len(grid)-1]
	width := hi - lo
	lo, hi = lo-margin*width, hi+margin*width

	s := &slice{
		xs: make([]float64, samples), ys: make([]float64, samples),
		gxs: grid, gys: make([]float64, len(grid)),
	}
	target := append([]float64{}, point...)

	for i := range s.xs {
		s.xs[i] = lo + (hi-lo)*float64(i)/float64(samples-1)
		target[dim] = s.xs[i]
		v, b, err := intr.Eval(target, table)
		if err != nil {
			return nil, err
		}
		if b.Extrapolated() {
			s.extrapolated++
		}
		s.ys[i] = v
	}

	for i, x := range grid {
		target[dim] = x
		v, _, err := intr.Eval(target, table)
		if err != nil {
			return nil, err
		}
		s.gys[i] = v
	}

	return s, nil
}

func plotMain(ctx context.Context, fname string) error {
	con, err := io.ReadPlotConfig(fname)
	if err != nil {
		return err
	}
	gcon, err := io.ReadGridConfig(con.Plot.Grid)
	if err != nil {
		return err
	}

	dim := gcon.AxisIndex(con.Plot.Axis)
	if dim == -1 {
		return fmt.Errorf(
			"Axis '%s' is not one of the grid's axes, %v.",
			con.Plot.Axis, gcon.Grid.AxisNames,
		)
	}
	table := gcon.TableIndex(con.Plot.Table)
	if table == -1 {
		return fmt.Errorf(
			"Table '%s' is not one of the grid's tables, %v.",
			con.Plot.Table, gcon.Grid.TableNames,
		)
	}

	intr, err := io.BuildInterpolator(ctx, gcon)
	if err != nil {
		return err
	}
	s, err := cutSlice(
		intr, dim, table, con.Plot.Point, con.Plot.Samples, con.Plot.Margin,
	)
	if err != nil {
		return err
	}
	if s.extrapolated > 0 {
		logger.Infof(
			ctx, "%d of %d samples were extrapolated", s.extrapolated, len(s.xs),
		)
	}

	plt.Figure()
	plt.Plot(s.xs, s.ys, "b", plt.LW(2))
	plt.Plot(s.gxs, s.gys, "ok")
	plt.Title(fmt.Sprintf("%s at %v", con.Plot.Table, con.Plot.Point))
	plt.XLabel(con.Plot.Axis, plt.FontSize(16))
	plt.YLabel(con.Plot.Table, plt.FontSize(16))
	plt.SaveFig(con.Plot.Output)
	plt.Execute()

	logger.Infof(ctx, "wrote '%s'", con.Plot.Output)
	return nil
}

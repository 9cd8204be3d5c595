/*package io reads grid and plot configuration files, loads value tables and
query points from text files, and writes evaluation results.
*/
package io

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/phil-mansfield/table"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gridintr/math/interpolate"
)

// ReadGridConfig reads and validates a grid configuration file. Relative
// table paths in it are resolved against the file's directory.
func ReadGridConfig(fname string) (*GridConfig, error) {
	con := &GridConfig{}
	if err := gcfg.ReadFileInto(con, fname); err != nil {
		return nil, err
	}
	if err := con.CheckInit(); err != nil {
		return nil, fmt.Errorf("invalid grid configuration '%s': %w", fname, err)
	}
	con.dir = filepath.Dir(fname)
	return con, nil
}

// ParseGridConfig reads and validates grid configuration text. Relative
// table paths are resolved against dir.
func ParseGridConfig(text, dir string) (*GridConfig, error) {
	con := &GridConfig{}
	if err := gcfg.ReadStringInto(con, text); err != nil {
		return nil, err
	}
	if err := con.CheckInit(); err != nil {
		return nil, fmt.Errorf("invalid grid configuration: %w", err)
	}
	con.dir = dir
	return con, nil
}

// ReadPlotConfig reads and validates a plot configuration file. A relative
// Grid path is resolved against the file's directory.
func ReadPlotConfig(fname string) (*PlotConfig, error) {
	con := &PlotConfig{}
	if err := gcfg.ReadFileInto(con, fname); err != nil {
		return nil, err
	}
	if err := con.CheckInit(); err != nil {
		return nil, fmt.Errorf("invalid plot configuration '%s': %w", fname, err)
	}
	if !filepath.IsAbs(con.Plot.Grid) {
		con.Plot.Grid = filepath.Join(filepath.Dir(fname), con.Plot.Grid)
	}
	return con, nil
}

// ReadTableColumn reads one column of a whitespace separated text file.
func ReadTableColumn(fname string, col int) ([]float64, error) {
	cols, err := table.ReadTable(fname, []int{col}, nil)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// ReadPoints reads query points from the first ndims columns of a
// whitespace separated text file. Each row is one point.
func ReadPoints(fname string, ndims int) ([][]float64, error) {
	if ndims <= 0 {
		return nil, fmt.Errorf("cannot read points with %d coordinates", ndims)
	}

	colIdxs := make([]int, ndims)
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	points := make([][]float64, len(cols[0]))
	for i := range points {
		points[i] = make([]float64, ndims)
		for dim := range cols {
			points[i][dim] = cols[dim][i]
		}
	}
	return points, nil
}

// Tables loads every value table in the order given by the [Grid] section.
func (con *GridConfig) Tables(ctx context.Context) ([][]float64, error) {
	tables := make([][]float64, len(con.Grid.TableNames))
	for i, name := range con.Grid.TableNames {
		tc := con.Table[name]
		if tc.Input == "" {
			vals, err := parseFloats(tc.Values)
			if err != nil {
				return nil, fmt.Errorf("Table '%s': %w", name, err)
			}
			tables[i] = vals
			logger.Debugf(ctx, "table '%s': %d inline values", name, len(vals))
			continue
		}

		fname := tc.Input
		if !filepath.IsAbs(fname) {
			fname = filepath.Join(con.dir, fname)
		}
		vals, err := ReadTableColumn(fname, tc.Column)
		if err != nil {
			return nil, fmt.Errorf("Table '%s': %w", name, err)
		}
		tables[i] = vals
		logger.Debugf(
			ctx, "table '%s': read %d values from column %d of '%s'",
			name, len(vals), tc.Column, fname,
		)
	}
	return tables, nil
}

// AxisIndex returns the position of the named axis in the grid, or -1 if
// there is no such axis.
func (con *GridConfig) AxisIndex(name string) int {
	for i, n := range con.Grid.AxisNames {
		if n == name {
			return i
		}
	}
	return -1
}

// TableIndex returns the position of the named table in the grid, or -1 if
// there is no such table.
func (con *GridConfig) TableIndex(name string) int {
	for i, n := range con.Grid.TableNames {
		if n == name {
			return i
		}
	}
	return -1
}

// BuildInterpolator constructs the axes and loads the tables described by
// a validated configuration.
func BuildInterpolator(
	ctx context.Context, con *GridConfig,
) (*interpolate.Interpolator, error) {
	axes := make([]*interpolate.Axis, len(con.Grid.AxisNames))
	for i, name := range con.Grid.AxisNames {
		a, err := con.Axis[name].Axis()
		if err != nil {
			return nil, err
		}
		axes[i] = a
		logger.Debugf(
			ctx, "axis '%s': %d points, interpolation %s, extrapolation %s",
			name, a.Len(), a.InterpMethod(), a.ExtrapMethod(),
		)
	}

	tables, err := con.Tables(ctx)
	if err != nil {
		return nil, err
	}

	intr, err := interpolate.NewFromAxes(axes, tables...)
	if err != nil {
		return nil, err
	}
	logger.Debugf(
		ctx, "built a %d-dimensional interpolator over %d points with %d tables",
		intr.NDims(), intr.Data().NumValues(), intr.NumTables(),
	)
	return intr, nil
}

package io

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/phil-mansfield/gridintr/math/interpolate"
)

const ExampleGridFile = `[Grid]
# Axes lists the axes in the order coordinates are given. The first axis
# varies slowest in every value table.
Axes = temperature, flow

# Tables lists the value tables in output order.
Tables = capacity, power

# An axis is either an explicit list of points...
[Axis "temperature"]
Points = 0, 10, 25, 40
# Linear or Cubic. Optional, defaults to Linear.
Interpolation = Cubic
# Constant, Linear or Cubic. Optional, defaults to Constant.
Extrapolation = Linear
# Optional. Outside these limits the nearest grid edge is used.
ExtrapolationLow = -10
ExtrapolationHigh = 50

# ... or a uniformly spaced sequence.
[Axis "flow"]
Start = 0.5
Step = 0.25
Count = 3

# Tables are read from a column of a whitespace separated text file...
[Table "capacity"]
Input = capacity.txt
Column = 0

# ... or given inline.
[Table "power"]
Values = 1, 2, 3, 2, 3, 4, 3, 4, 5, 4, 5, 6`

const ExamplePlotFile = `[Plot]
# Grid configuration file. Relative table paths are resolved against the
# directory containing it.
Grid = grid.cfg

# The axis which is varied and the table which is plotted.
Axis = temperature
Table = capacity

# The full point the slice passes through, one coordinate per axis in the
# order given by the grid's Axes. The coordinate of the plotted axis is
# ignored.
At = 0, 0.75

# Optional. Defaults to 100.
Samples = 200
# Optional. Extends the plotted range past the grid by this fraction of its
# width on both sides. Defaults to 0.
Margin = 0.1

Output = capacity.png`

// GridConfig is the contents of a grid configuration file.
type GridConfig struct {
	Grid  GridSection
	Axis  map[string]*AxisConfig
	Table map[string]*TableConfig

	// dir is the directory relative table paths are resolved against.
	dir string
}

type GridSection struct {
	// Required
	Axes   string
	Tables string

	// Set by CheckInit.
	AxisNames, TableNames []string
}

type AxisConfig struct {
	// One of Points or Start, Step and Count is required.
	Points      string
	Start, Step float64
	Count       int

	// Optional
	Interpolation, Extrapolation        string
	ExtrapolationLow, ExtrapolationHigh string

	// Set by CheckInit.
	Name           string
	Interp, Extrap interpolate.Method
	Low, High      float64
}

type TableConfig struct {
	// One of Input or Values is required.
	Input  string
	Column int
	Values string

	// Set by CheckInit.
	Name string
}

// CheckInit validates the configuration and fills in derived fields. Every
// problem found is reported in the returned error.
func (con *GridConfig) CheckInit() error {
	var mErr *multierror.Error

	con.Grid.AxisNames = splitList(con.Grid.Axes)
	con.Grid.TableNames = splitList(con.Grid.Tables)
	if len(con.Grid.AxisNames) == 0 {
		mErr = multierror.Append(mErr, fmt.Errorf(
			"Need to specify at least one axis in 'Axes'.",
		))
	}
	if len(con.Grid.TableNames) == 0 {
		mErr = multierror.Append(mErr, fmt.Errorf(
			"Need to specify at least one table in 'Tables'.",
		))
	}

	for _, name := range con.Grid.AxisNames {
		axis, ok := con.Axis[name]
		if !ok {
			mErr = multierror.Append(mErr, fmt.Errorf(
				"Axis '%s' is listed in 'Axes' but has no [Axis \"%s\"] section.",
				name, name,
			))
			continue
		}
		if err := axis.CheckInit(name); err != nil {
			mErr = multierror.Append(mErr, err)
		}
	}
	for name := range con.Axis {
		if !contains(con.Grid.AxisNames, name) {
			mErr = multierror.Append(mErr, fmt.Errorf(
				"Axis '%s' is not listed in 'Axes'.", name,
			))
		}
	}

	for _, name := range con.Grid.TableNames {
		table, ok := con.Table[name]
		if !ok {
			mErr = multierror.Append(mErr, fmt.Errorf(
				"Table '%s' is listed in 'Tables' but has no [Table \"%s\"] section.",
				name, name,
			))
			continue
		}
		if err := table.CheckInit(name); err != nil {
			mErr = multierror.Append(mErr, err)
		}
	}
	for name := range con.Table {
		if !contains(con.Grid.TableNames, name) {
			mErr = multierror.Append(mErr, fmt.Errorf(
				"Table '%s' is not listed in 'Tables'.", name,
			))
		}
	}

	return mErr.ErrorOrNil()
}

// CheckInit validates an [Axis] section and converts its method names.
func (axis *AxisConfig) CheckInit(name string) error {
	axis.Name = name

	hasPoints := strings.TrimSpace(axis.Points) != ""
	if hasPoints == (axis.Count != 0) {
		return fmt.Errorf(
			"Axis '%s' must set exactly one of 'Points' or 'Count'.", name,
		)
	}
	if hasPoints {
		if _, err := parseFloats(axis.Points); err != nil {
			return fmt.Errorf("Axis '%s' has invalid 'Points': %s", name, err)
		}
	} else if axis.Count < 0 {
		return fmt.Errorf(
			"Axis '%s' given a negative 'Count', %d.", name, axis.Count,
		)
	} else if axis.Count > 1 && axis.Step <= 0 {
		return fmt.Errorf(
			"Need to specify a positive 'Step' for Axis '%s'.", name,
		)
	}

	var err error
	axis.Interp, err = methodOrDefault(axis.Interpolation, interpolate.MethodLinear)
	if err != nil {
		return fmt.Errorf("Axis '%s' has invalid 'Interpolation': %w", name, err)
	} else if axis.Interp == interpolate.MethodConstant {
		return fmt.Errorf(
			"Axis '%s' cannot use Constant interpolation.", name,
		)
	}
	axis.Extrap, err = methodOrDefault(axis.Extrapolation, interpolate.MethodConstant)
	if err != nil {
		return fmt.Errorf("Axis '%s' has invalid 'Extrapolation': %w", name, err)
	}

	axis.Low, err = floatOrDefault(axis.ExtrapolationLow, -math.MaxFloat64)
	if err != nil {
		return fmt.Errorf("Axis '%s' has invalid 'ExtrapolationLow': %s", name, err)
	}
	axis.High, err = floatOrDefault(axis.ExtrapolationHigh, math.MaxFloat64)
	if err != nil {
		return fmt.Errorf("Axis '%s' has invalid 'ExtrapolationHigh': %s", name, err)
	}
	if axis.Low > axis.High {
		return fmt.Errorf(
			"Axis '%s' has 'ExtrapolationLow' = %g above 'ExtrapolationHigh' = %g.",
			name, axis.Low, axis.High,
		)
	}

	return nil
}

// Axis builds the configured axis.
func (axis *AxisConfig) Axis() (*interpolate.Axis, error) {
	var (
		a   *interpolate.Axis
		err error
	)
	if strings.TrimSpace(axis.Points) != "" {
		points, perr := parseFloats(axis.Points)
		if perr != nil {
			return nil, perr
		}
		a, err = interpolate.NewAxis(points)
	} else {
		a, err = interpolate.NewUniformAxis(axis.Start, axis.Step, axis.Count)
	}
	if err != nil {
		return nil, fmt.Errorf("Axis '%s': %w", axis.Name, err)
	}

	if err := a.SetExtrapMethod(axis.Extrap); err != nil {
		return nil, fmt.Errorf("Axis '%s': %w", axis.Name, err)
	}
	if err := a.SetInterpMethod(axis.Interp); err != nil {
		return nil, fmt.Errorf("Axis '%s': %w", axis.Name, err)
	}
	if err := a.SetExtrapLimits(axis.Low, axis.High); err != nil {
		return nil, fmt.Errorf("Axis '%s': %w", axis.Name, err)
	}

	return a, nil
}

// CheckInit validates a [Table] section.
func (table *TableConfig) CheckInit(name string) error {
	table.Name = name

	hasValues := strings.TrimSpace(table.Values) != ""
	if hasValues == (table.Input != "") {
		return fmt.Errorf(
			"Table '%s' must set exactly one of 'Input' or 'Values'.", name,
		)
	} else if table.Column < 0 {
		return fmt.Errorf(
			"Table '%s' given a negative 'Column', %d.", name, table.Column,
		)
	}
	if hasValues {
		if _, err := parseFloats(table.Values); err != nil {
			return fmt.Errorf("Table '%s' has invalid 'Values': %s", name, err)
		}
	}

	return nil
}

// PlotConfig is the contents of a plot configuration file.
type PlotConfig struct {
	Plot PlotSection
}

type PlotSection struct {
	// Required
	Grid, Axis, Table string
	At                string
	Output            string

	// Optional
	Samples int
	Margin  float64

	// Set by CheckInit.
	Point []float64
}

// CheckInit validates the [Plot] section and fills in defaults.
func (con *PlotConfig) CheckInit() error {
	plot := &con.Plot
	var mErr *multierror.Error

	if plot.Grid == "" {
		mErr = multierror.Append(mErr, fmt.Errorf(
			"Need to specify a 'Grid' configuration file for [Plot].",
		))
	}
	if plot.Axis == "" {
		mErr = multierror.Append(mErr, fmt.Errorf(
			"Need to specify the 'Axis' to vary for [Plot].",
		))
	}
	if plot.Table == "" {
		mErr = multierror.Append(mErr, fmt.Errorf(
			"Need to specify the 'Table' to plot for [Plot].",
		))
	}
	if plot.Output == "" {
		mErr = multierror.Append(mErr, fmt.Errorf(
			"Need to specify an 'Output' file for [Plot].",
		))
	}

	var err error
	if plot.Point, err = parseFloats(plot.At); err != nil {
		mErr = multierror.Append(mErr, fmt.Errorf(
			"[Plot] has invalid 'At': %s", err,
		))
	}

	if plot.Samples == 0 {
		plot.Samples = 100
	} else if plot.Samples < 2 {
		mErr = multierror.Append(mErr, fmt.Errorf(
			"[Plot] needs at least 2 'Samples', but was given %d.", plot.Samples,
		))
	}
	if plot.Margin < 0 {
		mErr = multierror.Append(mErr, fmt.Errorf(
			"[Plot] given a negative 'Margin', %g.", plot.Margin,
		))
	}

	return mErr.ErrorOrNil()
}

// splitList splits a comma separated list of names.
func splitList(s string) []string {
	names := []string{}
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			names = append(names, tok)
		}
	}
	return names
}

// parseFloats parses a list of numbers separated by commas or whitespace.
func parseFloats(s string) ([]float64, error) {
	toks := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(toks) == 0 {
		return nil, fmt.Errorf("no values given")
	}

	xs := make([]float64, len(toks))
	for i, tok := range toks {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a number", tok)
		}
		xs[i] = x
	}
	return xs, nil
}

func methodOrDefault(s string, def interpolate.Method) (interpolate.Method, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return interpolate.ParseMethod(s)
}

func floatOrDefault(s string, def float64) (float64, error) {
	if s = strings.TrimSpace(s); s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

package io

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/phil-mansfield/gridintr/math/interpolate"
)

// Result is the value of every table at a single query point.
type Result struct {
	Point  []float64
	Values []float64
	Bounds interpolate.Bounds
}

// EvalPoints evaluates every table at each point. Points which needed
// extrapolation are counted and reported in the log.
func EvalPoints(
	ctx context.Context, intr *interpolate.Interpolator, points [][]float64,
) ([]Result, error) {
	results := make([]Result, len(points))
	extrapolated, clamped := 0, 0
	for i, p := range points {
		vals, b, err := intr.EvalAll(p)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		results[i] = Result{Point: p, Values: vals, Bounds: b}

		if b.Clamped() {
			clamped++
			logger.Debugf(ctx, "point %d %v is outside the extrapolation limits", i, p)
		} else if b.Extrapolated() {
			extrapolated++
		}
	}

	if extrapolated > 0 || clamped > 0 {
		logger.Warnf(
			ctx, "%d of %d points were extrapolated and %d were clamped to the grid edge",
			extrapolated, len(points), clamped,
		)
	}
	return results, nil
}

// WriteResults writes one line per result: the point's coordinates, the
// value of every table, and the bounds classification of the point. The
// first line is a '#'-prefixed header naming the columns.
func WriteResults(
	w io.Writer, axisNames, tableNames []string, results []Result,
) error {
	cols := append(append([]string{}, axisNames...), tableNames...)
	cols = append(cols, "Bounds")
	if _, err := fmt.Fprintf(w, "# %s\n", strings.Join(cols, " ")); err != nil {
		return err
	}

	line := make([]string, 0, len(cols))
	for _, r := range results {
		line = line[:0]
		for _, x := range r.Point {
			line = append(line, fmt.Sprintf("%.8g", x))
		}
		for _, v := range r.Values {
			line = append(line, fmt.Sprintf("%.8g", v))
		}
		line = append(line, r.Bounds.String())
		if _, err := fmt.Fprintln(w, strings.Join(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

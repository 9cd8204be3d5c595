package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"

	"github.com/phil-mansfield/gridintr/io"
)

func main() {
	var (
		evaluate, plot string
		exampleConfig  string
	)
	vars := map[string]*string{
		"Evaluate":      &evaluate,
		"Plot":          &plot,
		"ExampleConfig": &exampleConfig,
	}

	pflag.StringVar(
		&evaluate, "Evaluate", "",
		"Grid configuration file for [Evaluate] mode. Takes a file of query "+
			"points as its only argument.",
	)
	pflag.StringVar(
		&plot, "Plot", "",
		"Configuration file for [Plot] mode.",
	)
	pflag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'Grid' and "+
			"'Plot'.",
	)
	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")

	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Evaluate":
		if pflag.NArg() != 1 {
			log.Fatal("Must supply exactly one file of query points.")
		}
		if err := evaluateMain(ctx, evaluate, pflag.Arg(0)); err != nil {
			log.Fatal(err.Error())
		}
	case "Plot":
		if err := plotMain(ctx, plot); err != nil {
			log.Fatal(err.Error())
		}
	case "ExampleConfig":
		switch exampleConfig {
		case "Grid":
			fmt.Println(io.ExampleGridFile)
		case "Plot":
			fmt.Println(io.ExamplePlotFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Grid' and 'Plot'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gridintr "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func evaluateMain(ctx context.Context, gridFile, pointFile string) error {
	con, err := io.ReadGridConfig(gridFile)
	if err != nil {
		return err
	}
	intr, err := io.BuildInterpolator(ctx, con)
	if err != nil {
		return err
	}

	points, err := io.ReadPoints(pointFile, intr.NDims())
	if err != nil {
		return err
	}
	logger.Infof(ctx, "evaluating %d points from '%s'", len(points), pointFile)

	results, err := io.EvalPoints(ctx, intr, points)
	if err != nil {
		return err
	}
	return io.WriteResults(
		os.Stdout, con.Grid.AxisNames, con.Grid.TableNames, results,
	)
}

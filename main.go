package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/iannr/Trabalho-individual-2-FPAA/block"
	"github.com/iannr/Trabalho-individual-2-FPAA/logging"
	"github.com/iannr/Trabalho-individual-2-FPAA/minmax"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	maxPrintedValues = 32
	maxParallelLoads = 4
)

// input is one sequence to select over, either argv (no name) or a block file.
type input struct {
	Name   string
	Uid    string
	Values []float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {

	var err error

	if len(args) > 0 && args[0] == "gen" {
		err = runGen(args[1:], stdout, stderr)
	} else {
		err = runSelect(context.Background(), args, stdout, stderr)
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	default:
		fmt.Fprintf(stderr, "%s %v\n", color.RedString("error:"), err)
		return 1
	}
}

func setupLogging(verbose bool, output io.Writer) {
	level := logging.Warn
	if verbose {
		level = logging.Debug
	}
	logging.SetDefault(logging.New(level, output))
}

func runSelect(ctx context.Context, args []string, stdout, stderr io.Writer) error {

	cfg, err := parseSelectArgs(args, stderr)
	if err != nil {
		return err
	}

	setupLogging(cfg.Verbose, stderr)

	var inputs []input

	if len(cfg.Numbers) > 0 || len(cfg.Inputs) == 0 {
		values := cfg.Numbers
		if len(values) == 0 {
			values = randomSample(cfg.Seed, cfg.SampleSize, cfg.SampleLow, cfg.SampleHigh)
			logging.Default().Debug("no numbers given, using %d random values with seed %d", len(values), cfg.Seed)
		}
		inputs = append(inputs, input{Values: values})
	}

	loaded, err := loadBlocks(ctx, cfg.Inputs)
	if err != nil {
		return err
	}
	inputs = append(inputs, loaded...)

	var total minmax.Bounds[float64]

	for i, in := range inputs {
		bounds, reportErr := report(stdout, in, cfg.Trace)
		if reportErr != nil {
			return reportErr
		}

		if i == 0 {
			total = bounds
		} else {
			total.Morph(bounds)
		}
	}

	if len(inputs) > 1 {
		fmt.Fprintf(stdout, "%s %s\n", color.CyanString("All inputs :"), total)
	}

	return nil
}

// loadBlocks reads every block file concurrently. Results keep the order of paths.
func loadBlocks(ctx context.Context, paths []string) ([]input, error) {

	inputs := make([]input, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			header, values, err := block.Load(path)
			if err != nil {
				return err
			}

			if verifyErr := header.Verify(values); verifyErr != nil {
				logging.Default().Warn("%s: %v", path, verifyErr)
			}

			inputs[i] = input{Name: path, Uid: header.Uid.String(), Values: values}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return inputs, nil
}

func report(w io.Writer, in input, trace bool) (minmax.Bounds[float64], error) {

	plain, err := minmax.Select(in.Values)
	if err != nil {
		if in.Name != "" {
			err = errors.Wrap(err, in.Name)
		}
		return plain, err
	}

	counted, comparisons, _ := minmax.SelectWithCount(in.Values)

	if in.Name != "" {
		fmt.Fprintf(w, "%s %s [uid=%s]\n", color.CyanString("=="), in.Name, in.Uid)
	}

	fmt.Fprintf(w, "Input: %s\n", formatValues(in.Values))
	fmt.Fprintf(w, "%s %s\n", color.GreenString("Min/Max  :"), plain)
	fmt.Fprintf(w, "%s %s  | comparisons = %d\n", color.GreenString("Min/Max* :"), counted, comparisons)

	if trace {
		_, steps, _ := minmax.SelectWithTrace(in.Values)
		spew.Fdump(w, steps)
	}

	return plain, nil
}

func formatValues(values []float64) string {

	shown := values
	if len(shown) > maxPrintedValues {
		shown = shown[:maxPrintedValues]
	}

	parts := make([]string, 0, len(shown)+1)
	for _, v := range shown {
		parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
	}

	if len(values) > len(shown) {
		parts = append(parts, fmt.Sprintf("... (%d values)", len(values)))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func runGen(args []string, stdout, stderr io.Writer) error {

	cfg, err := parseGenArgs(args, stderr)
	if err != nil {
		return err
	}

	setupLogging(cfg.Verbose, stderr)

	values := randomSample(cfg.Seed, cfg.Items, cfg.Low, cfg.High)

	header, err := block.Dump(cfg.Output, values, cfg.Compression)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s %s: %d values, bounds %s, compression %s, uid %s\n",
		color.GreenString("written"), cfg.Output, header.Items, header.Bounds, header.Compression, header.Uid)

	return nil
}

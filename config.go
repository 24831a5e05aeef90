package main

import (
	"flag"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/iannr/Trabalho-individual-2-FPAA/block"
	"github.com/pkg/errors"
)

var (
	errInvalidNumber = errors.New("invalid number")
	errInvalidConfig = errors.New("invalid configuration")
)

type Config struct {
	Numbers []float64
	Inputs  []string

	Trace   bool
	Verbose bool

	// random sample used when neither numbers nor inputs are given
	Seed       int64
	SampleSize int
	SampleLow  int
	SampleHigh int
}

func DefaultConfig() Config {
	return Config{
		Seed:       42,
		SampleSize: 11,
		SampleLow:  -50,
		SampleHigh: 50,
	}
}

type GenConfig struct {
	Output      string
	Items       int
	Seed        int64
	Low         int
	High        int
	Compression block.CompressionType
	Verbose     bool
}

func parseSelectArgs(args []string, output io.Writer) (Config, error) {

	cfg := DefaultConfig()

	fs := flag.NewFlagSet("minmax", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Func("in", "number block `file` to select over, may be repeated", func(path string) error {
		cfg.Inputs = append(cfg.Inputs, path)
		return nil
	})
	fs.BoolVar(&cfg.Trace, "trace", false, "dump every node of the recursion")
	fs.BoolVar(&cfg.Verbose, "v", false, "debug logging")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the random sample used when no numbers are given")
	fs.IntVar(&cfg.SampleSize, "samples", cfg.SampleSize, "size of the random sample")

	if err := fs.Parse(separateNumbers(fs, args)); err != nil {
		return cfg, err
	}

	numbers, err := parseNumbers(fs.Args())
	if err != nil {
		return cfg, err
	}
	cfg.Numbers = numbers

	if cfg.SampleSize < 1 {
		return cfg, errors.Wrapf(errInvalidConfig, "-samples must be positive, got %d", cfg.SampleSize)
	}

	return cfg, nil
}

func parseGenArgs(args []string, output io.Writer) (GenConfig, error) {

	cfg := GenConfig{}

	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Output, "out", "", "`file` to write the block to")
	fs.IntVar(&cfg.Items, "n", 1000, "number of values")
	fs.Int64Var(&cfg.Seed, "seed", 42, "random seed")
	fs.IntVar(&cfg.Low, "lo", -50000, "smallest value")
	fs.IntVar(&cfg.High, "hi", 50000, "largest value")
	useLz4 := fs.Bool("lz4", false, "compress the payload with lz4")
	fs.BoolVar(&cfg.Verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *useLz4 {
		cfg.Compression = block.Lz4Compression
	}

	switch {
	case cfg.Output == "":
		return cfg, errors.Wrap(errInvalidConfig, "-out is required")
	case cfg.Items < 1:
		return cfg, errors.Wrapf(errInvalidConfig, "-n must be positive, got %d", cfg.Items)
	case cfg.Low > cfg.High:
		return cfg, errors.Wrapf(errInvalidConfig, "-lo %d is above -hi %d", cfg.Low, cfg.High)
	case fs.NArg() > 0:
		return cfg, errors.Wrapf(errInvalidConfig, "unexpected arguments %v", fs.Args())
	}

	return cfg, nil
}

// separateNumbers inserts "--" before the first numeric token that is not the
// value of a flag, so negative numbers are not taken for flags.
func separateNumbers(fs *flag.FlagSet, args []string) []string {

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			return args
		}

		if _, err := strconv.ParseFloat(arg, 64); err == nil {
			out := append(slices.Clone(args[:i]), "--")
			return append(out, args[i:]...)
		}

		if !strings.HasPrefix(arg, "-") {
			return args
		}

		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}

		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) {
			i++
		}
	}

	return args
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

func parseNumbers(tokens []string) ([]float64, error) {

	numbers := make([]float64, 0, len(tokens))

	for i, token := range tokens {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, errors.Wrapf(errInvalidNumber, "argument %d (%q)", i+1, token)
		}
		if math.IsNaN(v) {
			return nil, errors.Wrapf(errInvalidNumber, "argument %d (%q) is not ordered", i+1, token)
		}
		numbers = append(numbers, v)
	}

	return numbers, nil
}

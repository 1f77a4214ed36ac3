// Command pareduce generates a random integer array, reduces it in
// parallel and sequentially, and prints both results and timings.
//
// Usage:
//
//	pareduce [flags] arrayLength
//
// A non-positive arrayLength prints 0. A negative arrayLength given as
// the last argument is taken as the length, not as a flag.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/exascience/pareduce"
	"github.com/exascience/pareduce/bench"
	"github.com/exascience/pareduce/config"
	"github.com/exascience/pareduce/randx"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code. Invariant
// violations are logged and re-panicked, terminating the process.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		cfg        = config.Default()
		configPath string
		op         string
		lo, hi     int
		workers    int
		seed       int64
		runs       int
		verbose    bool
	)
	fs := flag.NewFlagSet("pareduce", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&configPath, "config", "", "configuration `file` (.toml, .yaml or .yml)")
	fs.StringVar(&op, "op", cfg.Op, "reduction operator, sum or max")
	fs.IntVar(&lo, "min", cfg.Min, "smallest array element (inclusive)")
	fs.IntVar(&hi, "max", cfg.Max, "largest array element (exclusive)")
	fs.IntVar(&workers, "workers", cfg.Workers, "worker hint, 0 for the hardware concurrency")
	fs.Int64Var(&seed, "seed", cfg.Seed, "random seed, 0 for a time-based seed")
	fs.IntVar(&runs, "runs", cfg.Runs, "number of timed repetitions")
	fs.BoolVar(&verbose, "v", cfg.Verbose, "log debug information to stderr")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: pareduce [flags] arrayLength")
		fs.PrintDefaults()
	}
	if err := fs.Parse(negativeLength(fs, args)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "op":
			cfg.Op = op
		case "min":
			cfg.Min = lo
		case "max":
			cfg.Max = hi
		case "workers":
			cfg.Workers = workers
		case "seed":
			cfg.Seed = seed
		case "runs":
			cfg.Runs = runs
		case "v":
			cfg.Verbose = verbose
		}
	})

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		logger.Error("invalid array length", "arg", fs.Arg(0), "err", err)
		return 2
	}
	if n <= 0 {
		fmt.Fprintln(stdout, 0)
		return 0
	}
	if err := cfg.Validate(); err != nil {
		logger.Error(err.Error())
		return 2
	}

	defer func() {
		if p := recover(); p != nil {
			logger.Error("aborting", "panic", p)
			panic(p)
		}
	}()
	return reduce(cfg, n, stdout, logger)
}

// negativeLength inserts "--" before a trailing negative integer, so
// that the flag package does not reject it as an undefined flag. The
// argument is left alone if it is the value of a preceding non-boolean
// flag, or if "--" already appears.
func negativeLength(fs *flag.FlagSet, args []string) []string {
	if len(args) == 0 {
		return args
	}
	last := len(args) - 1
	if !strings.HasPrefix(args[last], "-") {
		return args
	}
	if _, err := strconv.Atoi(args[last]); err != nil {
		return args
	}
	for _, arg := range args[:last] {
		if arg == "--" {
			return args
		}
	}
	if last > 0 {
		prev := args[last-1]
		if strings.HasPrefix(prev, "-") && !strings.Contains(prev, "=") {
			if f := fs.Lookup(strings.TrimLeft(prev, "-")); f != nil && !isBoolFlag(f) {
				return args
			}
		}
	}
	fixed := make([]string, 0, len(args)+1)
	fixed = append(fixed, args[:last]...)
	return append(fixed, "--", args[last])
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func reduce(cfg config.Config, n int, stdout io.Writer, logger *slog.Logger) int {
	op, err := pareduce.OperatorFor[int](cfg.Op)
	if err != nil {
		logger.Error(err.Error())
		return 2
	}
	hw := pareduce.HardwareConcurrency()
	workers, err := pareduce.ComputeWorkerCount(cfg.Workers, n, hw)
	if err != nil {
		logger.Error(err.Error())
		return 2
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = randx.TimeSeed()
	}
	logger.Debug("configuration",
		"op", cfg.Op, "length", n, "min", cfg.Min, "max", cfg.Max,
		"hint", cfg.Workers, "hw", hw, "workers", workers,
		"seed", seed, "runs", cfg.Runs)

	xs := randx.Array(n, cfg.Min, cfg.Max, randx.NewSysRand(seed))
	printArray(stdout, xs)

	report := bench.Run(xs, workers, op, cfg.Runs)
	if report.Mismatch {
		logger.Error("parallel and sequential results differ",
			"parallel", report.Parallel, "sequential", report.Sequential)
	}
	printReport(stdout, label(cfg.Op), report)
	return 0
}

// Package bench compares a parallel reduction with its sequential
// baseline over repeated runs.
package bench

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/pareduce"
	"github.com/exascience/pareduce/internal"
	"github.com/exascience/pareduce/parallel"
	"github.com/exascience/pareduce/sequential"
)

// A Timing summarizes the elapsed times, in seconds, of one side of a
// comparison.
type Timing struct {
	Seconds []float64
	Mean    float64
	StdDev  float64
}

func newTiming(seconds []float64) Timing {
	t := Timing{Seconds: seconds}
	if len(seconds) == 1 {
		t.Mean = seconds[0]
		return t
	}
	t.Mean, t.StdDev = stat.MeanStdDev(seconds, nil)
	return t
}

// A Report is the outcome of Run.
type Report[T constraints.Signed] struct {
	Workers    int
	Runs       int
	Parallel   T
	Sequential T

	ParallelTiming   Timing
	SequentialTiming Timing

	// Speedup is the mean sequential time divided by the mean parallel
	// time, or 0 if the parallel mean is 0.
	Speedup float64

	// Mismatch is set if any run produced a result different from the
	// first parallel result.
	Mismatch bool
}

// Run reduces xs with op runs times in parallel with the given number
// of workers, and runs times sequentially, and reports the results and
// timings.
//
// Run panics with an InvariantViolation if xs is empty, workers <= 0,
// or runs <= 0.
func Run[T constraints.Signed](
	xs []T, workers int,
	op pareduce.Operator[T],
	runs int,
) Report[T] {
	internal.CheckReduction(len(xs), workers)
	if runs <= 0 {
		panic(internal.Violation("invalid number of runs: %v", runs))
	}
	report := Report[T]{Workers: workers, Runs: runs}
	parSeconds := make([]float64, runs)
	seqSeconds := make([]float64, runs)
	for run := 0; run < runs; run++ {
		par, parElapsed := parallel.Reduce(xs, workers, op)
		seq, seqElapsed := sequential.Reduce(xs, op)
		if run == 0 {
			report.Parallel, report.Sequential = par, seq
		}
		if par != report.Parallel || seq != report.Parallel {
			report.Mismatch = true
		}
		parSeconds[run] = parElapsed.Seconds()
		seqSeconds[run] = seqElapsed.Seconds()
	}
	report.ParallelTiming = newTiming(parSeconds)
	report.SequentialTiming = newTiming(seqSeconds)
	if report.ParallelTiming.Mean > 0 {
		report.Speedup = report.SequentialTiming.Mean / report.ParallelTiming.Mean
	}
	return report
}

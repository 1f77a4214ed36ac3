// Package parallel provides functions for expressing parallel
// reductions over arrays.
//
// All functions follow the fork-join model: the calling goroutine
// spawns one goroutine per worker and blocks until all of them have
// terminated.
package parallel

import (
	"sync"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/exascience/pareduce"
	"github.com/exascience/pareduce/internal"
	"github.com/exascience/pareduce/partition"
)

// Workers receives a worker count and a worker function f, and invokes
// f for each worker index in the half-open interval from 0 to workers
// in parallel.
//
// The interval is divided in halves recursively, and each half beyond
// the left-most one is run in its own goroutine. Workers returns only
// when all worker function invocations have terminated.
//
// Workers panics with an InvariantViolation if workers <= 0.
//
// If one or more worker function invocations panic, the corresponding
// goroutines recover the panics, and Workers eventually panics with
// the left-most recovered panic value.
func Workers(workers int, f func(worker int)) {
	if workers <= 0 {
		panic(internal.Violation("invalid number of workers: %v", workers))
	}
	var recur func(int, int)
	recur = func(low, high int) {
		if high-low == 1 {
			f(low)
			return
		}
		mid := low + (high-low)/2
		var p interface{}
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			recur(mid, high)
		}()
		recur(low, mid)
		wg.Wait()
		if p != nil {
			panic(p)
		}
	}
	recur(0, workers)
}

// Reduce receives an array, a worker count, and an operator, divides
// the array into one contiguous range per worker with
// partition.Partition, and reduces each range with op in parallel.
// Every worker stores its partial result in its own slot; once all
// workers have terminated, the slots are combined with op in worker
// order, so the result does not depend on goroutine scheduling.
//
// Workers without elements contribute the identity element of op. A
// worker count larger than len(xs) is therefore allowed.
//
// Reduce also returns the wall-clock time spent in partitioning,
// dispatch, and combination.
//
// Reduce panics with an InvariantViolation if xs is empty or
// workers <= 0.
func Reduce[T constraints.Signed](
	xs []T, workers int,
	op pareduce.Operator[T],
) (result T, elapsed time.Duration) {
	internal.CheckReduction(len(xs), workers)
	start := time.Now()
	partials := make([]T, workers)
	Workers(workers, func(worker int) {
		r := partition.Partition(worker, workers, len(xs))
		partials[worker] = pareduce.Fold(xs[r.Low:r.High], op)
	})
	result = pareduce.Fold(partials, op)
	elapsed = time.Since(start)
	return
}

// ReduceAuto is like Reduce, but selects the worker count with
// pareduce.ComputeWorkerCount from hint, len(xs), and
// pareduce.HardwareConcurrency(). It also returns the number of
// workers used.
//
// ReduceAuto panics with an InvariantViolation if xs is empty.
func ReduceAuto[T constraints.Signed](
	xs []T, hint int,
	op pareduce.Operator[T],
) (result T, workers int, elapsed time.Duration) {
	internal.CheckReduction(len(xs), 1)
	workers, err := pareduce.ComputeWorkerCount(hint, len(xs), pareduce.HardwareConcurrency())
	if err != nil {
		panic(internal.Violation("%v", err))
	}
	result, elapsed = Reduce(xs, workers, op)
	return
}

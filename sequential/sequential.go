// Package sequential provides sequential implementations of the
// functions provided by the parallel package, and the single-threaded
// baseline that parallel reductions are compared against.
//
// Workers and PartitionedReduce are useful for testing and debugging:
// they run exactly the same partitioned algorithm as their parallel
// counterparts, only without goroutines.
package sequential

import (
	"time"

	"golang.org/x/exp/constraints"

	"github.com/exascience/pareduce"
	"github.com/exascience/pareduce/internal"
	"github.com/exascience/pareduce/partition"
)

// Workers invokes f for each worker index in the half-open interval
// from 0 to workers sequentially, in increasing order.
//
// Workers panics with an InvariantViolation if workers <= 0.
func Workers(workers int, f func(worker int)) {
	if workers <= 0 {
		panic(internal.Violation("invalid number of workers: %v", workers))
	}
	for worker := 0; worker < workers; worker++ {
		f(worker)
	}
}

// Reduce combines all elements of xs with op in a single loop, and
// also returns the wall-clock time this took.
//
// Reduce panics with an InvariantViolation if xs is empty.
func Reduce[T constraints.Signed](xs []T, op pareduce.Operator[T]) (result T, elapsed time.Duration) {
	internal.CheckReduction(len(xs), 1)
	start := time.Now()
	result = pareduce.Fold(xs, op)
	elapsed = time.Since(start)
	return
}

// PartitionedReduce divides xs into one range per worker like
// parallel.Reduce, reduces the ranges one after the other, and
// combines the partial results in worker order.
//
// PartitionedReduce panics with an InvariantViolation if xs is empty
// or workers <= 0.
func PartitionedReduce[T constraints.Signed](
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

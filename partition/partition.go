// Package partition divides the index range of an array into contiguous,
// disjoint subranges, one per worker.
//
// The strategy used throughout is an even split with a long tail: every
// worker gets n / workers elements, and the last worker additionally absorbs
// the remainder, so its range is up to workers-1 elements longer than the
// others.
package partition

import (
	"fmt"

	"github.com/exascience/pareduce/internal"
)

// A Range is the half-open interval of indices from Low to High, including
// Low but excluding High, with 0 <= Low <= High.
type Range struct {
	Low, High int
}

// Len returns the number of indices in r.
func (r Range) Len() int { return r.High - r.Low }

// Empty reports whether r contains no indices.
func (r Range) Empty() bool { return r.High == r.Low }

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Low, r.High) }

// Partition returns the range of worker out of workers for an array of
// length n.
//
// Each worker except the last gets n / workers elements starting at
// worker * (n / workers). The last worker ends at n. If workers > n, all but
// the last worker get empty ranges.
//
// If worker >= workers, or its range would start at or beyond n, Partition
// returns the empty range [n, n), which contributes the identity element to
// a reduction.
//
// Partition panics with an InvariantViolation if workers <= 0, worker < 0,
// or n < 0.
func Partition(worker, workers, n int) Range {
	switch {
	case workers <= 0:
		panic(internal.Violation("invalid number of workers: %v", workers))
	case worker < 0:
		panic(internal.Violation("invalid worker index: %v", worker))
	case n < 0:
		panic(internal.Violation("invalid array length: %v", n))
	}
	sliceLen := n / workers
	low := worker * sliceLen
	if worker >= workers || low >= n {
		return Range{n, n}
	}
	if worker == workers-1 {
		return Range{low, n}
	}
	return Range{low, low + sliceLen}
}

// Tile returns the ranges of all workers for an array of length n, ordered
// by worker index. Concatenated in order, they cover [0, n) exactly once.
func Tile(workers, n int) []Range {
	if workers <= 0 {
		panic(internal.Violation("invalid number of workers: %v", workers))
	}
	ranges := make([]Range, workers)
	for worker := range ranges {
		ranges[worker] = Partition(worker, workers, n)
	}
	return ranges
}

package pareduce

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/exascience/pareduce/internal"
)

// ErrInvalidInput is returned, possibly wrapped, for degenerate arguments
// that callers can recover from, such as a non-positive array length.
var ErrInvalidInput = errors.New("invalid input")

// An InvariantViolation is the panic value raised when an internal contract
// is broken, for example a reduction over an empty array or with zero
// workers. It indicates a bug in the caller and is never returned as an
// ordinary error.
type InvariantViolation = internal.InvariantViolation

// An Operator is an associative and commutative binary operation with an
// identity element. Partial results combined with an Operator may be
// combined in any order without affecting the final value.
type Operator[T constraints.Signed] interface {
	// Identity returns the element that leaves every x unchanged under
	// Combine.
	Identity() T

	// Combine returns the combination of x and y.
	Combine(x, y T) T
}

// Sum adds integers, wrapping around on overflow like native integer
// arithmetic.
type Sum[T constraints.Signed] struct{}

// Identity returns 0.
func (Sum[T]) Identity() T { return 0 }

// Combine returns x + y.
func (Sum[T]) Combine(x, y T) T { return x + y }

// String returns "sum".
func (Sum[T]) String() string { return "sum" }

// Max selects the larger of two integers.
type Max[T constraints.Signed] struct{}

// Identity returns the minimum value representable by T.
func (Max[T]) Identity() T { return minValue[T]() }

// Combine returns the larger of x and y.
func (Max[T]) Combine(x, y T) T {
	if x > y {
		return x
	}
	return y
}

// String returns "max".
func (Max[T]) String() string { return "max" }

func minValue[T constraints.Signed]() T {
	var zero T
	return T(1) << (unsafe.Sizeof(zero)*8 - 1)
}

// OperatorFor returns the operator with the given name, either "sum" or
// "max".
func OperatorFor[T constraints.Signed](name string) (Operator[T], error) {
	switch name {
	case "sum":
		return Sum[T]{}, nil
	case "max":
		return Max[T]{}, nil
	default:
		return nil, fmt.Errorf("unknown operator %q: %w", name, ErrInvalidInput)
	}
}

// Fold sequentially combines all elements of xs with op, starting from the
// identity element of op. Fold of an empty slice is the identity element.
func Fold[T constraints.Signed](xs []T, op Operator[T]) T {
	switch op.(type) {
	case Sum[T]:
		var sum T
		for _, x := range xs {
			sum += x
		}
		return sum
	case Max[T]:
		largest := minValue[T]()
		for _, x := range xs {
			if x > largest {
				largest = x
			}
		}
		return largest
	}
	result := op.Identity()
	for _, x := range xs {
		result = op.Combine(result, x)
	}
	return result
}

// HardwareConcurrency returns the number of goroutines that can execute
// simultaneously, as determined by runtime.GOMAXPROCS(0).
func HardwareConcurrency() int {
	return runtime.GOMAXPROCS(0)
}

/*
ComputeWorkerCount determines the number of workers for a reduction over an
array of length n.

It takes a worker hint, the array length n, and the hardware concurrency hw,
typically the result of HardwareConcurrency.

If the hint is > 0, it replaces hw as the upper bound on the number of
workers, so an explicit hint may oversubscribe the hardware. If the hint is
<= 0, hw is used. A hw value below 1 counts as 1.

The result is never more than n/2 (rounded down), so that every worker gets
at least two elements when n >= 2, and never less than 1. For n == 1 the result is always 1.

ComputeWorkerCount returns an error wrapping ErrInvalidInput if n <= 0. It
has no side effects.
*/
func ComputeWorkerCount(hint, n, hw int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid array length %v: %w", n, ErrInvalidInput)
	}
	bound := hw
	if hint > 0 {
		bound = hint
	}
	if half := n / 2; bound > half {
		bound = half
	}
	return internal.ClampWorkers(bound, n), nil
}

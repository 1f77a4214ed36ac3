package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// An InvariantViolation reports a broken internal contract. It is only ever
// used as a panic value.
type InvariantViolation struct {
	Msg string
}

func (v InvariantViolation) Error() string {
	return "invariant violation: " + v.Msg
}

// Violation formats an InvariantViolation.
func Violation(format string, args ...interface{}) InvariantViolation {
	return InvariantViolation{Msg: fmt.Sprintf(format, args...)}
}

// CheckReduction panics with an InvariantViolation if a reduction over an
// array of length n is requested with no elements or no workers.
func CheckReduction(n, workers int) {
	switch {
	case n <= 0:
		panic(Violation("reduction over an empty array"))
	case workers <= 0:
		panic(Violation("invalid number of workers: %v", workers))
	}
}

// ClampWorkers restricts the number of workers to the range from 1 to size.
func ClampWorkers(workers, size int) int {
	switch {
	case size > 0:
		if workers < 1 {
			workers = 1
		}
		if workers > size {
			workers = size
		}
	default:
		panic(Violation("invalid size: %v", size))
	}
	return workers
}

type rethrown struct {
	error
	stack []byte
}

func (r rethrown) Error() string {
	return fmt.Sprintf("%v\n%s\nrethrown at", r.error, r.stack)
}

func (r rethrown) Unwrap() error { return r.error }

type runtimeError struct{ rethrown }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic, turning it
// into an error. Recovered error values stay reachable through errors.As and
// errors.Is. Panics that already carry a stack trace are returned unchanged.
func WrapPanic(p interface{}) interface{} {
	switch p := p.(type) {
	case nil:
		return nil
	case rethrown, runtimeError:
		return p
	case runtime.Error:
		return runtimeError{rethrown{p, debug.Stack()}}
	case error:
		return rethrown{p, debug.Stack()}
	default:
		return rethrown{fmt.Errorf("%v", p), debug.Stack()}
	}
}

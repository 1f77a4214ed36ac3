// Package randx provides a seedable random number source and functions
// to fill integer arrays with random values.
package randx

import (
	"math"
	"math/rand"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/exascience/pareduce/internal"
)

// Rand is the subset of the rand.Rand methods used to generate arrays,
// so that either the global source or a separate, seeded source can be
// supplied.
type Rand interface {
	// Seed uses the provided seed value to initialize the generator to a deterministic state.
	Seed(seed int64)

	// Int63n returns, as an int64, a non-negative pseudo-random number in the half-open interval [0,n).
	// It panics if n <= 0.
	Int63n(n int64) int64

	// Uint64 returns a pseudo-random 64-bit value as a uint64.
	Uint64() uint64
}

// SysRand implements Rand on top of a separate rand.Rand source, or,
// if that is nil, the global rand stream.
type SysRand struct {
	Rand *rand.Rand
}

// NewGlobalRand returns a new SysRand with the global rand source.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new SysRand with a new rand.Rand source using
// the given seed.
func NewSysRand(seed int64) *SysRand {
	return &SysRand{Rand: rand.New(rand.NewSource(seed))}
}

// TimeSeed returns a seed based on the current time.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// Seed uses the provided seed value to initialize the generator to a deterministic state.
func (r *SysRand) Seed(seed int64) {
	if r.Rand == nil {
		r.Rand = rand.New(rand.NewSource(seed))
		return
	}
	r.Rand.Seed(seed)
}

// Int63n returns, as an int64, a non-negative pseudo-random number in the half-open interval [0,n).
// It panics if n <= 0.
func (r *SysRand) Int63n(n int64) int64 {
	if r.Rand == nil {
		return rand.Int63n(n)
	}
	return r.Rand.Int63n(n)
}

// Uint64 returns a pseudo-random 64-bit value as a uint64.
func (r *SysRand) Uint64() uint64 {
	if r.Rand == nil {
		return rand.Uint64()
	}
	return r.Rand.Uint64()
}

// Fill sets every element of xs to a pseudo-random value from rnd in
// the half-open interval [lo, hi). If lo == hi, every element is set
// to lo.
//
// Fill panics with an InvariantViolation if xs is empty or lo > hi.
func Fill[T constraints.Signed](xs []T, lo, hi T, rnd Rand) {
	switch {
	case len(xs) == 0:
		panic(internal.Violation("random fill of an empty array"))
	case lo > hi:
		panic(internal.Violation("invalid random range: [%v,%v)", lo, hi))
	}
	span := uint64(int64(hi) - int64(lo))
	switch {
	case span == 0:
		for i := range xs {
			xs[i] = lo
		}
	case span <= math.MaxInt64:
		for i := range xs {
			xs[i] = lo + T(rnd.Int63n(int64(span)))
		}
	default:
		// only reachable for int64 ranges wider than 2^63
		for i := range xs {
			xs[i] = lo + T(rnd.Uint64()%span)
		}
	}
}

// Array returns a new array of length n filled by Fill.
func Array[T constraints.Signed](n int, lo, hi T, rnd Rand) []T {
	if n <= 0 {
		panic(internal.Violation("random array of length %v", n))
	}
	xs := make([]T, n)
	Fill(xs, lo, hi, rnd)
	return xs
}

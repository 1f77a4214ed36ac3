// Package pareduce provides functions for expressing parallel reductions
// over integer arrays. It follows a fork-join model: an array is divided
// into contiguous ranges, one per worker, every worker reduces its own range
// in its own goroutine, and the partial results are combined once all
// workers have terminated.
//
// Pareduce provides the following subpackages:
//
// pareduce/partition divides an index range into contiguous, disjoint
// subranges, one per worker.
//
// pareduce/parallel provides the fork-join driver and the parallel
// reduction itself.
//
// pareduce/sequential provides sequential implementations of the functions
// from pareduce/parallel, for testing, debugging, and as the single-threaded
// baseline.
//
// pareduce/randx provides a seedable random source and functions to fill
// arrays with random integers.
//
// pareduce/bench compares parallel and sequential reductions over repeated
// runs and summarizes the timings.
//
// pareduce/config loads run configurations for the pareduce command.
//
// The root package provides the reduction operators, the worker count
// heuristic, and the error values shared by all subpackages.
package pareduce

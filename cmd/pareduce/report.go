package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/exascience/pareduce/bench"
)

func label(op string) string {
	switch op {
	case "max":
		return "Max"
	default:
		return "Sum"
	}
}

func printArray(w io.Writer, xs []int) {
	var b strings.Builder
	b.WriteString("[ ")
	for _, x := range xs {
		b.WriteString(strconv.Itoa(x))
		b.WriteByte(' ')
	}
	b.WriteString("]\n")
	io.WriteString(w, b.String())
}

func printTiming(w io.Writer, workers int, label string, result int, timing bench.Timing, runs int) {
	fmt.Fprintf(w, "N threads used: %d\n%s: %d\nElapsed time: %.8f\n", workers, label, result, timing.Mean)
	if runs > 1 {
		fmt.Fprintf(w, "Std dev: %.8f\n", timing.StdDev)
	}
}

func printReport(w io.Writer, label string, report bench.Report[int]) {
	fmt.Fprintln(w)
	printTiming(w, report.Workers, label, report.Parallel, report.ParallelTiming, report.Runs)
	fmt.Fprintln(w)
	printTiming(w, 1, label, report.Sequential, report.SequentialTiming, report.Runs)

	out := termenv.NewOutput(w)
	speedup := out.String(fmt.Sprintf("Speedup: %.3fx", report.Speedup)).Bold()
	if report.Mismatch {
		speedup = speedup.Foreground(out.Color("1"))
	}
	fmt.Fprintf(w, "\n%s\n", speedup)
}

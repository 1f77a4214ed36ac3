package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/pareduce"
	"github.com/exascience/pareduce/randx"
)

func runArgs(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestNonPositiveLength(t *testing.T) {
	tests := [][]string{
		{"0"},
		{"-5"},
		{"-1"},
		{"--", "-5"},
		{"-op", "max", "-5"},
		{"-v", "-5"},
		{"-seed=4", "-1"},
	}
	for _, args := range tests {
		code, stdout, stderr := runArgs(args...)
		assert.Equal(t, 0, code, "args %q: %s", args, stderr)
		assert.Equal(t, "0\n", stdout, "args %q", args)
	}
}

func TestNegativeFlagValue(t *testing.T) {
	// -5 is the value of -seed here, so the length is missing
	code, stdout, stderr := runArgs("-seed", "-5")
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "usage: pareduce")

	code, stdout, _ = runArgs("-seed", "-5", "-3")
	assert.Equal(t, 0, code)
	assert.Equal(t, "0\n", stdout)
}

func TestUsageErrors(t *testing.T) {
	code, stdout, stderr := runArgs()
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "usage: pareduce")

	code, _, stderr = runArgs("ten")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "invalid array length")

	code, _, _ = runArgs("-op", "product", "10")
	assert.Equal(t, 2, code)

	code, _, _ = runArgs("-min", "5", "-max", "1", "10")
	assert.Equal(t, 2, code)

	code, _, _ = runArgs("-nosuchflag", "10")
	assert.Equal(t, 2, code)
}

var reportPattern = regexp.MustCompile(`^\[ ((?:-?\d+ )*)\]

N threads used: (\d+)
(Sum|Max): (-?\d+)
Elapsed time: \d+\.\d{8}

N threads used: 1
(?:Sum|Max): (-?\d+)
Elapsed time: \d+\.\d{8}

.*Speedup: \d+\.\d{3}x.*
$`)

func parseReport(t *testing.T, stdout string) (xs []int, workers int, label string, par, seq int) {
	t.Helper()
	m := reportPattern.FindStringSubmatch(stdout)
	require.NotNil(t, m, "unexpected output:\n%s", stdout)
	for _, field := range strings.Fields(m[1]) {
		x, err := strconv.Atoi(field)
		require.NoError(t, err)
		xs = append(xs, x)
	}
	workers, _ = strconv.Atoi(m[2])
	label = m[3]
	par, _ = strconv.Atoi(m[4])
	seq, _ = strconv.Atoi(m[5])
	return
}

func TestSum(t *testing.T) {
	code, stdout, _ := runArgs("-seed", "3", "-workers", "3", "20")
	require.Equal(t, 0, code)
	xs, workers, label, par, seq := parseReport(t, stdout)

	assert.Equal(t, randx.Array(20, -100, 100, randx.NewSysRand(3)), xs)
	assert.Equal(t, 3, workers)
	assert.Equal(t, "Sum", label)
	want := pareduce.Fold(xs, pareduce.Sum[int]{})
	assert.Equal(t, want, par)
	assert.Equal(t, want, seq)
}

func TestMaxFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte("op = \"max\"\nmin = 0\nseed = 8\nworkers = 100\n"), 0o644))

	code, stdout, _ := runArgs("-config", path, "-workers", "2", "9")
	require.Equal(t, 0, code)
	xs, workers, label, par, seq := parseReport(t, stdout)

	assert.Len(t, xs, 9)
	for _, x := range xs {
		assert.True(t, x >= 0 && x < 100)
	}
	assert.Equal(t, 2, workers)
	assert.Equal(t, "Max", label)
	want := pareduce.Fold(xs, pareduce.Max[int]{})
	assert.Equal(t, want, par)
	assert.Equal(t, want, seq)
}

func TestSingleElement(t *testing.T) {
	code, stdout, _ := runArgs("-workers", "16", "1")
	require.Equal(t, 0, code)
	xs, workers, _, par, seq := parseReport(t, stdout)
	require.Len(t, xs, 1)
	assert.Equal(t, 1, workers)
	assert.Equal(t, xs[0], par)
	assert.Equal(t, xs[0], seq)
}

func TestRunsAndVerbose(t *testing.T) {
	code, stdout, stderr := runArgs("-runs", "4", "-v", "-seed", "1", "50")
	require.Equal(t, 0, code)
	assert.Equal(t, 2, strings.Count(stdout, "Std dev: "))
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "seed=1")
}

func TestMissingConfig(t *testing.T) {
	code, _, stderr := runArgs("-config", filepath.Join(t.TempDir(), "none.yaml"), "10")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, stderr)
}

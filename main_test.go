package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/config"
	"github.com/GeraldLeeDoesThings/advent-of-code-2024/input"
	"github.com/GeraldLeeDoesThings/advent-of-code-2024/solvers"
)

// swappedAdder is a 2-bit adder whose raw sum and raw carry of bit 1 were exchanged.
const swappedAdder = `x00: 1
x01: 0
y00: 1
y01: 1

x00 XOR y00 -> z00
x00 AND y00 -> c01
x01 XOR y01 -> r01
x01 AND y01 -> s01
c01 XOR s01 -> z01
s01 AND c01 -> m01
r01 OR m01 -> z02
`

func TestConfigCommand(t *testing.T) {
	t.Setenv("AOC_TESTS_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	out, err := execute(t, "--config", path, "--tests", "puzzles", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "puzzles", cfg.TestsDir)

	_, err = execute(t, "--config", path, "config")
	assert.Error(t, err)
	_, err = execute(t, "--config", path, "config", "--force")
	require.NoError(t, err)
}

func TestRunCLIReportsErrors(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--tests", t.TempDir(), "7"})
	runCLI(cmd)
	assert.Equal(t, "no input file for day 7\n", out.String())
}

// execute runs the command line with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func testsDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestRunDay(t *testing.T) {
	dir := testsDir(t, map[string]string{
		"2":      "7 6 4 2 1\r\n1 2 7 8 9\r\n",
		"24.txt": swappedAdder,
	})

	out, err := execute(t, "--tests", dir, "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Day: 2")
	assert.Contains(t, out, "\n1\n")

	out, err = execute(t, "--tests", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Day: 24")
	assert.Contains(t, out, "r01,s01\n")
}

func TestRunDayErrors(t *testing.T) {
	dir := testsDir(t, map[string]string{"2": "7 6 4 2 1\n"})

	_, err := execute(t, "--tests", dir, "two")
	assert.Error(t, err)

	_, err = execute(t, "--tests", dir, "3")
	var mie *input.MissingInputError
	require.True(t, errors.As(err, &mie))
	assert.Equal(t, 3, mie.Day)

	_, err = execute(t, "--tests", dir, "30")
	var nse *solvers.NoSolverError
	require.True(t, errors.As(err, &nse))

	_, err = execute(t, "--tests", filepath.Join(dir, "missing"), "2")
	assert.Error(t, err)
}

func TestDays(t *testing.T) {
	dir := testsDir(t, map[string]string{"5.txt": "1|2\n"})
	out, err := execute(t, "--tests", dir, "days")
	require.NoError(t, err)
	assert.Contains(t, out, " 5  5.txt\n")
	assert.Contains(t, out, "25  ")
}

func TestMiterRoundTrip(t *testing.T) {
	dir := testsDir(t, map[string]string{"24": swappedAdder})
	out, err := execute(t, "miter", filepath.Join(dir, "24"))
	require.NoError(t, err)
	assert.Contains(t, out, "p cnf ")

	cnf := filepath.Join(dir, "miter.cnf")
	require.NoError(t, os.WriteFile(cnf, []byte(out), 0644))
	out, err = execute(t, "sat", cnf)
	require.NoError(t, err)
	assert.Equal(t, "UNSATISFIABLE\n", out)
}

func TestSat(t *testing.T) {
	dir := testsDir(t, map[string]string{
		"sat.cnf":   "p cnf 2 2\n1 2 0\n-1 0\n",
		"unsat.cnf": "p cnf 1 2\n1 0\n-1 0\n",
		"pb.txt":    "",
	})

	out, err := execute(t, "sat", "--model", filepath.Join(dir, "sat.cnf"))
	require.NoError(t, err)
	assert.Equal(t, "SATISFIABLE\nv -1 2 0\n", out)

	out, err = execute(t, "sat", filepath.Join(dir, "unsat.cnf"))
	require.NoError(t, err)
	assert.Equal(t, "UNSATISFIABLE\n", out)

	_, err = execute(t, "sat", filepath.Join(dir, "pb.txt"))
	assert.Error(t, err)
}

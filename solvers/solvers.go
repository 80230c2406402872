// Package solvers holds one solver per puzzle day. Each solver turns the text of a
// day's input into the textual answer; days register themselves in init functions.
package solvers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// A Func solves a puzzle, given its input.
type Func func(input string) (string, error)

var (
	registry = make(map[int]Func)
	logger   = zap.NewNop()
)

func register(day int, f Func) {
	if _, ok := registry[day]; ok {
		panic(fmt.Sprintf("day %d registered twice", day))
	}
	registry[day] = f
}

// SetLogger sets the logger used to trace solves.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Lookup returns the solver for the given day.
func Lookup(day int) (Func, bool) {
	f, ok := registry[day]
	return f, ok
}

// Days returns the registered days, in increasing order.
func Days() []int {
	days := make([]int, 0, len(registry))
	for day := range registry {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// A NoSolverError is returned when asking for a day that has no solver.
type NoSolverError struct {
	Day int
}

func (e *NoSolverError) Error() string {
	return fmt.Sprintf("no solver for day %d", e.Day)
}

// Solve runs the solver of the given day on input.
func Solve(day int, input string) (string, error) {
	f, ok := Lookup(day)
	if !ok {
		return "", &NoSolverError{Day: day}
	}
	start := time.Now()
	res, err := f(input)
	logger.Debug("solved puzzle", zap.Int("day", day), zap.Duration("elapsed", time.Since(start)), zap.Error(err))
	if err != nil {
		return "", fmt.Errorf("day %d: %w", day, err)
	}
	return res, nil
}

// lines splits input into lines, without the trailing empty ones.
func lines(input string) []string {
	input = strings.TrimRight(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// blocks splits input into groups of lines separated by blank lines.
func blocks(input string) []string {
	input = strings.Trim(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n\n")
}

// ints parses the integers of s, separated by sep, or by spaces when sep is empty.
func ints(s, sep string) ([]int, error) {
	var fields []string
	if sep == "" {
		fields = strings.Fields(s)
	} else {
		fields = strings.Split(strings.TrimSpace(s), sep)
	}
	res := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("could not parse %q: %w", s, err)
		}
		res[i] = n
	}
	return res, nil
}

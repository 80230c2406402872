package solvers

import (
	"strings"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/circuit"
)

func init() {
	register(24, day24)
}

// day24 finds the pairs of gates whose output wires were swapped in what should be
// a ripple-carry adder. The repaired circuit is checked both by simulation and by
// a SAT solver before the swapped wires are returned, sorted and joined with commas.
func day24(input string) (string, error) {
	c, err := circuit.Parse(input)
	if err != nil {
		return "", err
	}
	swaps, err := circuit.Repair(c, circuit.WithLogger(logger))
	if err != nil {
		return "", err
	}
	if err := circuit.Validate(c); err != nil {
		return "", err
	}
	if err := circuit.CheckEquivalence(c); err != nil {
		return "", err
	}
	return strings.Join(circuit.Names(swaps), ","), nil
}

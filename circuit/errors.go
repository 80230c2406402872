package circuit

import (
	"fmt"
	"sort"
	"strings"
)

// An UnrepairableError is returned when no output swap can fix a defective adder cell.
type UnrepairableError struct {
	Bit    int    // First cell that could not be fixed.
	Swaps  []Swap // Swaps applied before giving up.
	Reason string
}

func (e *UnrepairableError) Error() string {
	return fmt.Sprintf("could not repair adder cell %d after %d swap(s): %s", e.Bit, len(e.Swaps), e.Reason)
}

// A StructureError describes a gate that does not fit in the ripple-carry adder topology.
type StructureError struct {
	Gate string // Name of the gate's output wire.
	Role Role
	Rule string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("gate %s (%v): %s", e.Gate, e.Role, e.Rule)
}

// A MismatchError is a pair of operands the circuit does not add correctly.
type MismatchError struct {
	X, Y      uint64
	Want, Got uint64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%d + %d: want %d, got %d", e.X, e.Y, e.Want, e.Got)
}

// A CycleError lists the wires that depend on themselves.
type CycleError struct {
	Wires []string
}

func newCycleError(c *Circuit, gates []int) *CycleError {
	names := make([]string, len(gates))
	for i, g := range gates {
		names[i] = c.Wires[c.Gates[g].Out].Name
	}
	sort.Strings(names)
	return &CycleError{Wires: names}
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circuit has a cycle through %s", strings.Join(e.Wires, ", "))
}

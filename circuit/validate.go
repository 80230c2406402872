package circuit

import "fmt"

// Validate checks that the circuit has the topology of a ripple-carry adder,
// and that it adds a set of boundary operands correctly.
func Validate(c *Circuit) error {
	if err := CheckStructure(c); err != nil {
		return err
	}
	return CheckBehaviour(c)
}

func expectedOp(r Role) Op {
	switch r.Kind {
	case RawSum, Result:
		return Xor
	case RawCarry, CombinedCarry:
		return And
	default:
		if r.Bit == 1 {
			return And
		}
		return Or
	}
}

// CheckStructure makes sure every gate has a role in the adder, computes the operation
// that role requires, and that every cell is complete and properly named.
func CheckStructure(c *Circuit) error {
	cl := Classify(c)
	for gi, role := range cl.Roles {
		g := c.Gates[gi]
		name := c.Wires[g.Out].Name
		if !role.valid() {
			return &StructureError{Gate: name, Role: role, Rule: "gate has no place in the adder"}
		}
		if op := expectedOp(role); g.Op != op {
			return &StructureError{Gate: name, Role: role, Rule: fmt.Sprintf("operation is %v, should be %v", g.Op, op)}
		}
	}
	for i := 0; i < c.Bits; i++ {
		if cellValid(c, cl, i) {
			continue
		}
		name := fmt.Sprintf("z%02d", i)
		role := Role{Kind: Result, Bit: i}
		if g, ok := cl.Gate(Result, i); ok {
			name = c.Wires[c.Gates[g].Out].Name
		}
		return &StructureError{Gate: name, Role: role, Rule: fmt.Sprintf("cell %d is incomplete or misnamed", i)}
	}
	return nil
}

// CheckBehaviour simulates the circuit on operands made of one or two set bits, and on their
// complements, and compares the z bus with the expected sum.
func CheckBehaviour(c *Circuit) error {
	n := c.Bits
	if n == 0 {
		return nil
	}
	if n >= 63 {
		return fmt.Errorf("could not simulate a %d-bit adder", n)
	}
	mask := ^uint64(0)
	if w := c.OutputWidth(); w < 64 {
		mask = 1<<uint(w) - 1
	}
	inMask := uint64(1)<<uint(n) - 1
	vals := make([]bool, len(c.Wires))
	check := func(x, y uint64) error {
		if err := c.evalInto(vals, x, y); err != nil {
			return err
		}
		want := (x + y) & mask
		if got := c.busValue(vals, 'z'); got != want {
			return &MismatchError{X: x, Y: y, Want: want, Got: got}
		}
		return nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				x, y := uint64(1)<<uint(i)|uint64(1)<<uint(k), uint64(1)<<uint(j)
				if err := check(x, y); err != nil {
					return err
				}
				if err := check(^x&inMask, ^y&inMask); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

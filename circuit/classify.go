package circuit

import "fmt"

// A Kind is the part a gate plays in a ripple-carry adder.
type Kind int

// Gate kinds. In cell i of an adder:
//
//	RawSum(i)        = x_i XOR y_i
//	RawCarry(i)      = x_i AND y_i
//	Result(i)        = RawSum(i) XOR FullCarry(i), named z_i
//	CombinedCarry(i) = RawSum(i) AND FullCarry(i)
//	FullCarry(i+1)   = CombinedCarry(i) OR RawCarry(i)
//
// Cell 0 has no incoming carry: Result(0) is x_0 XOR y_0 and FullCarry(1) is x_0 AND y_0.
const (
	Unclassified Kind = iota
	RawSum
	RawCarry
	CombinedCarry
	FullCarry
	Result
	Error
	nbKinds
)

var kindNames = [...]string{"Unclassified", "RawSum", "RawCarry", "CombinedCarry", "FullCarry", "Result", "Error"}

func (k Kind) String() string {
	if k < 0 || k >= nbKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// A Role is a kind of gate together with the bit it works on.
type Role struct {
	Kind Kind
	Bit  int
}

func (r Role) String() string {
	if r.Kind == Unclassified || r.Kind == Error {
		return r.Kind.String()
	}
	return fmt.Sprintf("%v(%d)", r.Kind, r.Bit)
}

// valid is true for roles that take part in the adder.
func (r Role) valid() bool {
	return r.Kind != Unclassified && r.Kind != Error
}

// cell is the adder cell a role belongs to.
func (r Role) cell() int {
	if r.Kind == FullCarry {
		return r.Bit - 1
	}
	return r.Bit
}

var errorRole = Role{Kind: Error}

// A Classification associates each gate with its role.
type Classification struct {
	Roles []Role // Indexed by gate.
	slots [nbKinds][]int
}

// Gate returns the gate that was given the role (kind, bit), if any.
func (cl *Classification) Gate(kind Kind, bit int) (int, bool) {
	if kind <= Unclassified || kind >= Error || bit < 0 || bit >= len(cl.slots[kind]) {
		return -1, false
	}
	g := cl.slots[kind][bit]
	return g, g >= 0
}

// Classified returns the number of gates with a valid adder role.
func (cl *Classification) Classified() int {
	n := 0
	for _, r := range cl.Roles {
		if r.valid() {
			n++
		}
	}
	return n
}

// Classify infers the role of every gate. It sweeps the circuit from its inputs:
// a gate is examined once each of its operands is either a primary wire or the
// output of a gate with a valid role. Gates that are never reached stay Unclassified.
func Classify(c *Circuit) *Classification {
	cl := &Classification{Roles: make([]Role, len(c.Gates))}
	for k := range cl.slots {
		cl.slots[k] = make([]int, c.Bits+2)
		for i := range cl.slots[k] {
			cl.slots[k][i] = -1
		}
	}
	missing := make([]int, len(c.Gates))
	var queue []int
	for i, g := range c.Gates {
		if !c.Wires[g.A].Primary {
			missing[i]++
		}
		if g.B != g.A && !c.Wires[g.B].Primary {
			missing[i]++
		}
		if missing[i] == 0 {
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		gi := queue[0]
		queue = queue[1:]
		role := cl.infer(c, gi)
		if role.valid() {
			if cl.slots[role.Kind][role.Bit] >= 0 {
				role = errorRole
			} else {
				cl.slots[role.Kind][role.Bit] = gi
			}
		}
		cl.Roles[gi] = role
		if !role.valid() {
			continue
		}
		for _, r := range c.readers[c.Gates[gi].Out] {
			missing[r]--
			if missing[r] == 0 {
				queue = append(queue, r)
			}
		}
	}
	return cl
}

// infer computes the role of gate gi, whose operands are all available.
func (cl *Classification) infer(c *Circuit, gi int) Role {
	g := c.Gates[gi]
	a, b := c.Wires[g.A], c.Wires[g.B]
	switch {
	case a.Primary && b.Primary:
		return primaryRole(g.Op, a, b, c.Bits)
	case !a.Primary && !b.Primary:
		return derivedRole(g.Op, cl.Roles[a.Driver], cl.Roles[b.Driver], c.Bits)
	default:
		return errorRole
	}
}

func primaryRole(op Op, a, b Wire, bits int) Role {
	if a.Bit < 0 || a.Bit != b.Bit || a.Bit >= bits || a.Prefix == b.Prefix {
		return errorRole
	}
	if a.Prefix != 'x' && a.Prefix != 'y' || b.Prefix != 'x' && b.Prefix != 'y' {
		return errorRole
	}
	switch {
	case op == Xor && a.Bit == 0:
		return Role{Result, 0}
	case op == Xor:
		return Role{RawSum, a.Bit}
	case op == And && a.Bit == 0:
		return Role{FullCarry, 1}
	case op == And:
		return Role{RawCarry, a.Bit}
	default:
		return errorRole
	}
}

func derivedRole(op Op, ra, rb Role, bits int) Role {
	if ra.Bit != rb.Bit {
		return errorRole
	}
	if ra.Kind > rb.Kind {
		ra, rb = rb, ra
	}
	bit := ra.Bit
	switch {
	case ra.Kind == RawSum && rb.Kind == FullCarry && op == Xor:
		return Role{Result, bit}
	case ra.Kind == RawSum && rb.Kind == FullCarry && op == And:
		return Role{CombinedCarry, bit}
	case ra.Kind == RawCarry && rb.Kind == CombinedCarry && op == Or && bit+1 <= bits:
		return Role{FullCarry, bit + 1}
	default:
		return errorRole
	}
}

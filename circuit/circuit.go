// Package circuit models a boolean circuit of two-input gates that is meant to
// implement a ripple-carry adder, and provides the tools to find and undo
// swapped gate outputs in it.
//
// Wires live in an arena and are addressed by their index in Circuit.Wires.
// Gates reference their operand and output wires by index.
package circuit

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// An Op is the boolean operation computed by a gate.
type Op int

// Available operations.
const (
	And Op = iota
	Or
	Xor
)

func (op Op) String() string {
	switch op {
	case And:
		return "AND"
	case Or:
		return "OR"
	case Xor:
		return "XOR"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

func parseOp(s string) (Op, error) {
	switch s {
	case "AND":
		return And, nil
	case "OR":
		return Or, nil
	case "XOR":
		return Xor, nil
	default:
		return 0, fmt.Errorf("unknown operation %q", s)
	}
}

// apply computes the value of op for operands a and b.
func (op Op) apply(a, b bool) bool {
	switch op {
	case And:
		return a && b
	case Or:
		return a || b
	default:
		return a != b
	}
}

// A Wire is a named boolean signal.
type Wire struct {
	Name    string
	Prefix  byte // 'x', 'y' or 'z' for bus wires, 0 otherwise.
	Bit     int  // Bus bit index, -1 for wires outside the x, y and z buses.
	Primary bool // Primary wires are inputs: they are given a literal value and no gate drives them.
	Init    bool // Literal value of a primary wire.
	Driver  int  // Index of the gate whose output is this wire; -1 for primary wires.
}

// A Gate computes Out = A Op B.
type Gate struct {
	A, B int
	Op   Op
	Out  int
}

// A Circuit is a set of wires and the gates that connect them.
type Circuit struct {
	Wires []Wire
	Gates []Gate
	// Bits is the width of the adder, i.e the number of x wires.
	Bits int

	index   map[string]int
	readers [][]int // Gates reading each wire.
	order   []int   // Cached topological order of gates, nil when stale.
}

// These two expressions match the two kinds of lines found in a circuit description:
//
//	x00: 1
//	x00 XOR y00 -> z00
var (
	inputRE = regexp.MustCompile(`^(\w+):\s*([01])$`)
	gateRE  = regexp.MustCompile(`^(\w+)\s+(\w+)\s+(\w+)\s*->\s*(\w+)$`)
)

// Parse builds a circuit from its textual description: primary wires with their
// literal values, then one gate per line.
func Parse(text string) (*Circuit, error) {
	c := &Circuit{index: make(map[string]int)}
	sc := bufio.NewScanner(strings.NewReader(text))
	lineNb := 0
	for sc.Scan() {
		lineNb++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if m := inputRE.FindStringSubmatch(line); m != nil {
			if err := c.addInput(m[1], m[2] == "1"); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNb, err)
			}
			continue
		}
		m := gateRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: could not parse %q", lineNb, line)
		}
		op, err := parseOp(m[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNb, err)
		}
		if err := c.addGate(c.wire(m[1]), op, c.wire(m[3]), c.wire(m[4])); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNb, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read circuit: %w", err)
	}
	for _, w := range c.Wires {
		if !w.Primary && w.Driver < 0 {
			return nil, fmt.Errorf("wire %q is neither an input nor driven by a gate", w.Name)
		}
		if w.Primary && w.Prefix == 'x' {
			c.Bits++
		}
	}
	c.readers = make([][]int, len(c.Wires))
	for i, g := range c.Gates {
		c.readers[g.A] = append(c.readers[g.A], i)
		if g.B != g.A {
			c.readers[g.B] = append(c.readers[g.B], i)
		}
	}
	return c, nil
}

// wire returns the index of the wire with the given name, creating it if needed.
func (c *Circuit) wire(name string) int {
	if idx, ok := c.index[name]; ok {
		return idx
	}
	prefix, bit := busName(name)
	c.Wires = append(c.Wires, Wire{Name: name, Prefix: prefix, Bit: bit, Driver: -1})
	c.index[name] = len(c.Wires) - 1
	return len(c.Wires) - 1
}

func (c *Circuit) addInput(name string, val bool) error {
	idx := c.wire(name)
	w := &c.Wires[idx]
	if w.Primary {
		return fmt.Errorf("input %q defined twice", name)
	}
	if w.Driver >= 0 {
		return fmt.Errorf("input %q is also driven by a gate", name)
	}
	w.Primary = true
	w.Init = val
	return nil
}

func (c *Circuit) addGate(a int, op Op, b, out int) error {
	w := &c.Wires[out]
	if w.Primary {
		return fmt.Errorf("gate drives input %q", w.Name)
	}
	if w.Driver >= 0 {
		return fmt.Errorf("wire %q driven by two gates", w.Name)
	}
	c.Gates = append(c.Gates, Gate{A: a, B: b, Op: op, Out: out})
	w.Driver = len(c.Gates) - 1
	return nil
}

// busName splits names such as "x07" into their prefix and bit index.
func busName(name string) (byte, int) {
	if len(name) < 2 {
		return 0, -1
	}
	switch name[0] {
	case 'x', 'y', 'z':
	default:
		return 0, -1
	}
	bit, err := strconv.Atoi(name[1:])
	if err != nil || bit < 0 {
		return 0, -1
	}
	return name[0], bit
}

// Wire returns the index of the wire with the given name.
func (c *Circuit) Wire(name string) (int, bool) {
	idx, ok := c.index[name]
	return idx, ok
}

// bus returns the index of the bus wire with the given prefix and bit, or -1.
func (c *Circuit) bus(prefix byte, bit int) int {
	idx, ok := c.index[fmt.Sprintf("%c%02d", prefix, bit)]
	if !ok {
		return -1
	}
	return idx
}

// OutputWidth is the number of z wires driven by a gate.
func (c *Circuit) OutputWidth() int {
	n := 0
	for _, w := range c.Wires {
		if w.Prefix == 'z' && w.Driver >= 0 {
			n++
		}
	}
	return n
}

// Swap exchanges the output wires of gates g1 and g2.
func (c *Circuit) Swap(g1, g2 int) {
	o1, o2 := c.Gates[g1].Out, c.Gates[g2].Out
	c.Gates[g1].Out, c.Gates[g2].Out = o2, o1
	c.Wires[o1].Driver = g2
	c.Wires[o2].Driver = g1
	c.order = nil
}

// String returns the circuit in the format understood by Parse.
func (c *Circuit) String() string {
	var sb strings.Builder
	for _, w := range c.Wires {
		if w.Primary {
			v := 0
			if w.Init {
				v = 1
			}
			fmt.Fprintf(&sb, "%s: %d\n", w.Name, v)
		}
	}
	sb.WriteString("\n")
	for _, g := range c.Gates {
		fmt.Fprintf(&sb, "%s %s %s -> %s\n", c.Wires[g.A].Name, g.Op, c.Wires[g.B].Name, c.Wires[g.Out].Name)
	}
	return sb.String()
}

package circuit

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/crillab/gophersat/solver"
)

// vars associate variable names with their DIMACS indices.
type vars struct {
	all   map[string]int // All vars, including those created by the encoding.
	named map[string]int // Only the circuit's wires.
}

// litValue returns the index associated with the given wire name.
// If the wire was not referenced yet, it is created first.
func (vars *vars) litValue(name string) int {
	val, ok := vars.all[name]
	if !ok {
		val = len(vars.all) + 1
		vars.all[name] = val
		vars.named[name] = val
	}
	return val
}

// dummy creates a fresh variable and returns its index.
func (vars *vars) dummy() int {
	val := len(vars.all) + 1
	vars.all[fmt.Sprintf("dummy-%d", val)] = val
	return val
}

// A cnf is a conjunction of clauses, each clause being a disjunction of literals.
type cnf struct {
	vars    vars
	clauses [][]int
}

// gate adds the clauses stating that out = a op b.
func (cnf *cnf) gate(op Op, a, b, out int) {
	switch op {
	case And:
		cnf.clauses = append(cnf.clauses, []int{-out, a}, []int{-out, b}, []int{out, -a, -b})
	case Or:
		cnf.clauses = append(cnf.clauses, []int{out, -a}, []int{out, -b}, []int{-out, a, b})
	case Xor:
		cnf.clauses = append(cnf.clauses,
			[]int{-out, a, b}, []int{-out, -a, -b},
			[]int{out, -a, b}, []int{out, a, -b})
	}
}

// apply adds a fresh variable constrained to a op b.
func (cnf *cnf) apply(op Op, a, b int) int {
	d := cnf.vars.dummy()
	cnf.gate(op, a, b, d)
	return d
}

// solve gives the clauses to gophersat.
// If they are satisfiable, it returns a model associating each wire name with its binding.
// Else, it returns nil.
func (cnf *cnf) solve() map[string]bool {
	pb := solver.ParseSlice(cnf.clauses)
	s := solver.New(pb)
	if s.Solve() != solver.Sat {
		return nil
	}
	m := s.Model()
	model := make(map[string]bool, len(cnf.vars.named))
	for name, idx := range cnf.vars.named {
		if idx-1 < len(m) {
			model[name] = m[idx-1]
		}
	}
	return model
}

// miter encodes the circuit next to a reference ripple-carry adder fed by the same x and y
// wires. The clauses are satisfiable iff some operands make the two disagree on an output bit.
func miter(c *Circuit) (*cnf, error) {
	if _, err := c.topoOrder(); err != nil {
		return nil, err
	}
	cnf := &cnf{vars: vars{all: make(map[string]int), named: make(map[string]int)}}
	for _, w := range c.Wires {
		v := cnf.vars.litValue(w.Name)
		if w.Primary && w.Prefix != 'x' && w.Prefix != 'y' {
			if w.Init {
				cnf.clauses = append(cnf.clauses, []int{v})
			} else {
				cnf.clauses = append(cnf.clauses, []int{-v})
			}
		}
	}
	for _, g := range c.Gates {
		a := cnf.vars.litValue(c.Wires[g.A].Name)
		b := cnf.vars.litValue(c.Wires[g.B].Name)
		cnf.gate(g.Op, a, b, cnf.vars.litValue(c.Wires[g.Out].Name))
	}
	var diffs []int
	carry := 0 // No incoming carry in cell 0.
	for i := 0; i < c.Bits; i++ {
		x, y := c.bus('x', i), c.bus('y', i)
		if x < 0 || y < 0 {
			return nil, fmt.Errorf("could not find inputs of bit %d", i)
		}
		xv, yv := cnf.vars.litValue(c.Wires[x].Name), cnf.vars.litValue(c.Wires[y].Name)
		sum, gen := cnf.apply(Xor, xv, yv), cnf.apply(And, xv, yv)
		if carry != 0 {
			prop := cnf.apply(And, sum, carry)
			sum = cnf.apply(Xor, sum, carry)
			gen = cnf.apply(Or, gen, prop)
		}
		carry = gen
		if z := c.bus('z', i); z >= 0 && c.Wires[z].Driver >= 0 {
			diffs = append(diffs, cnf.apply(Xor, sum, cnf.vars.litValue(c.Wires[z].Name)))
		}
	}
	if z := c.bus('z', c.Bits); z >= 0 && c.Wires[z].Driver >= 0 && carry != 0 {
		diffs = append(diffs, cnf.apply(Xor, carry, cnf.vars.litValue(c.Wires[z].Name)))
	}
	if len(diffs) == 0 {
		// Nothing to compare: make the problem trivially UNSAT.
		d := cnf.vars.dummy()
		cnf.clauses = append(cnf.clauses, []int{d}, []int{-d})
		return cnf, nil
	}
	cnf.clauses = append(cnf.clauses, diffs)
	return cnf, nil
}

// CheckEquivalence proves, with a SAT solver, that the circuit computes the sum of its x and y buses
// on every output bit. When it does not, the returned *MismatchError holds a counter-example.
func CheckEquivalence(c *Circuit) error {
	cnf, err := miter(c)
	if err != nil {
		return err
	}
	model := cnf.solve()
	if model == nil {
		return nil
	}
	var x, y uint64
	for _, w := range c.Wires {
		if !w.Primary || w.Bit < 0 || w.Bit >= 64 || !model[w.Name] {
			continue
		}
		switch w.Prefix {
		case 'x':
			x |= 1 << uint(w.Bit)
		case 'y':
			y |= 1 << uint(w.Bit)
		}
	}
	v, err := c.Evaluate(x, y)
	if err != nil {
		return err
	}
	mask := ^uint64(0)
	if w := c.OutputWidth(); w < 64 {
		mask = 1<<uint(w) - 1
	}
	return &MismatchError{X: x, Y: y, Want: (x + y) & mask, Got: v.Bus('z')}
}

// WriteDIMACS writes the miter of the circuit against a reference adder in DIMACS CNF format,
// so that it can be fed to any SAT solver. The index of each wire is given in a comment line
// such as "c x00=1", between the prolog and the clauses.
func WriteDIMACS(c *Circuit, w io.Writer) error {
	cnf, err := miter(c)
	if err != nil {
		return err
	}
	prefix := fmt.Sprintf("p cnf %d %d\n", len(cnf.vars.all), len(cnf.clauses))
	if _, err := io.WriteString(w, prefix); err != nil {
		return fmt.Errorf("could not write DIMACS output: %w", err)
	}
	names := make([]string, 0, len(cnf.vars.named))
	for name := range cnf.vars.named {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		line := fmt.Sprintf("c %s=%d\n", name, cnf.vars.named[name])
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %w", err)
		}
	}
	for _, clause := range cnf.clauses {
		strClause := make([]string, len(clause))
		for i, lit := range clause {
			strClause[i] = strconv.Itoa(lit)
		}
		line := fmt.Sprintf("%s 0\n", strings.Join(strClause, " "))
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %w", err)
		}
	}
	return nil
}

package circuit

import (
	"sort"

	"go.uber.org/zap"
)

// A Swap is a pair of wires whose drivers were exchanged.
type Swap struct {
	A, B string
}

// Names returns the names of all wires involved in the swaps, sorted.
func Names(swaps []Swap) []string {
	names := make([]string, 0, 2*len(swaps))
	for _, s := range swaps {
		names = append(names, s.A, s.B)
	}
	sort.Strings(names)
	return names
}

// An Option configures Repair.
type Option func(*repairer)

// WithLogger makes Repair log every swap it applies.
func WithLogger(logger *zap.Logger) Option {
	return func(r *repairer) { r.logger = logger }
}

type repairer struct {
	logger *zap.Logger
	c      *Circuit
}

// score ranks circuits: a longer verified prefix wins, then more classified gates.
type score struct {
	prefix     int
	classified int
}

func (s score) better(o score) bool {
	if s.prefix != o.prefix {
		return s.prefix > o.prefix
	}
	return s.classified > o.classified
}

// Repair finds and undoes output swaps until the circuit is a correct ripple-carry adder.
// It works cell by cell, from bit 0 upwards: at the first defective cell, it tries the swaps
// suggested by the expected shape of the cell, then every pair of gates outside the cells
// that were already verified. A swap is kept only if it makes the defective cell valid.
//
// The circuit is modified in place. On failure, the returned error is an *UnrepairableError.
func Repair(c *Circuit, opts ...Option) ([]Swap, error) {
	r := &repairer{logger: zap.NewNop(), c: c}
	for _, opt := range opts {
		opt(r)
	}
	var swaps []Swap
	// Every accepted swap grows the verified prefix, so there are at most c.Bits iterations.
	for {
		cl := Classify(c)
		bit := verifiedPrefix(c, cl)
		if bit == c.Bits {
			return swaps, nil
		}
		g1, g2, ok := r.shapeSwap(cl, bit)
		if !ok {
			g1, g2, ok = r.searchSwap(cl, bit)
		}
		if !ok {
			return swaps, &UnrepairableError{Bit: bit, Swaps: swaps, Reason: "no output swap fixes the cell"}
		}
		s := Swap{A: c.Wires[c.Gates[g1].Out].Name, B: c.Wires[c.Gates[g2].Out].Name}
		c.Swap(g1, g2)
		swaps = append(swaps, s)
		r.logger.Debug("swapped gate outputs", zap.Int("bit", bit), zap.String("a", s.A), zap.String("b", s.B))
	}
}

// verifiedPrefix returns the number of consecutive valid cells, starting from bit 0.
func verifiedPrefix(c *Circuit, cl *Classification) int {
	for i := 0; i < c.Bits; i++ {
		if !cellValid(c, cl, i) {
			return i
		}
	}
	return c.Bits
}

// cellValid checks that all the gates of cell i exist, and that its outputs are properly named.
func cellValid(c *Circuit, cl *Classification, i int) bool {
	res, ok := cl.Gate(Result, i)
	if !ok || c.Gates[res].Out != c.bus('z', i) {
		return false
	}
	if i > 0 {
		for _, k := range []Kind{RawSum, RawCarry, CombinedCarry} {
			if _, ok := cl.Gate(k, i); !ok {
				return false
			}
		}
	}
	carry, ok := cl.Gate(FullCarry, i+1)
	if !ok {
		return false
	}
	out := c.Gates[carry].Out
	if i+1 < c.Bits {
		return c.Wires[out].Prefix != 'z'
	}
	// The final carry is the top output bit when the circuit has one.
	if top := c.bus('z', i+1); top >= 0 && c.Wires[top].Driver >= 0 {
		return out == top
	}
	return c.Wires[out].Prefix != 'z'
}

// try tells whether swapping g1 and g2 fixes cell bit, and returns the score of the result.
// The circuit is left unchanged.
func (r *repairer) try(g1, g2, bit int) (score, bool) {
	r.c.Swap(g1, g2)
	cl := Classify(r.c)
	s := score{prefix: verifiedPrefix(r.c, cl), classified: cl.Classified()}
	r.c.Swap(g1, g2)
	return s, s.prefix > bit
}

// shapeSwap tries the swaps suggested by the expected layout of cell bit.
func (r *repairer) shapeSwap(cl *Classification, bit int) (int, int, bool) {
	for _, cand := range r.shapeCandidates(cl, bit) {
		if cand[0] == cand[1] {
			continue
		}
		if _, ok := r.try(cand[0], cand[1], bit); ok {
			return cand[0], cand[1], true
		}
	}
	return -1, -1, false
}

func (r *repairer) shapeCandidates(cl *Classification, bit int) [][2]int {
	c := r.c
	var cands [][2]int
	zDriver := -1
	if z := c.bus('z', bit); z >= 0 {
		zDriver = c.Wires[z].Driver
	}
	res, ok := cl.Gate(Result, bit)
	if ok {
		// The sum is computed, but under the wrong name.
		if zDriver >= 0 && c.Gates[res].Out != c.bus('z', bit) {
			cands = append(cands, [2]int{res, zDriver})
		}
		return cands
	}
	raw, hasRaw := cl.Gate(RawSum, bit)
	carry, hasCarry := cl.Gate(FullCarry, bit)
	if !hasRaw || !hasCarry {
		return cands
	}
	carryOut := c.Gates[carry].Out
	// An XOR fed by the raw sum is the expected result gate: its other operand is a misnamed carry.
	for _, gi := range c.readers[c.Gates[raw].Out] {
		g := c.Gates[gi]
		if g.Op != Xor {
			continue
		}
		other := g.A
		if other == c.Gates[raw].Out {
			other = g.B
		}
		if d := c.Wires[other].Driver; d >= 0 && d != carry {
			cands = append(cands, [2]int{d, carry})
		}
		if zDriver >= 0 && gi != zDriver {
			cands = append(cands, [2]int{gi, zDriver})
		}
	}
	// An XOR fed by the carry is the expected result gate: its other operand is a misnamed raw sum.
	var xors []int
	for _, gi := range c.readers[carryOut] {
		if c.Gates[gi].Op == Xor && !cl.Roles[gi].valid() {
			xors = append(xors, gi)
		}
	}
	sort.SliceStable(xors, func(i, j int) bool {
		return xors[i] == zDriver && xors[j] != zDriver
	})
	for _, gi := range xors {
		g := c.Gates[gi]
		other := g.A
		if other == carryOut {
			other = g.B
		}
		if d := c.Wires[other].Driver; d >= 0 && d != raw {
			cands = append(cands, [2]int{raw, d})
		}
	}
	return cands
}

// searchSwap tries every pair of gates that are not part of an already verified cell,
// and returns the one with the best score among those that fix cell bit.
func (r *repairer) searchSwap(cl *Classification, bit int) (int, int, bool) {
	var free []int
	for gi, role := range cl.Roles {
		if role.valid() && role.cell() < bit {
			continue
		}
		free = append(free, gi)
	}
	best, b1, b2 := score{}, -1, -1
	for i, g1 := range free {
		for _, g2 := range free[i+1:] {
			s, ok := r.try(g1, g2, bit)
			if ok && (b1 < 0 || s.better(best)) {
				best, b1, b2 = s, g1, g2
			}
		}
	}
	return b1, b2, b1 >= 0
}

package circuit

// topoOrder returns the gates sorted so that each gate comes after the gates driving its operands.
func (c *Circuit) topoOrder() ([]int, error) {
	if c.order != nil {
		return c.order, nil
	}
	pending := make([]int, len(c.Gates))
	var ready []int
	for i, g := range c.Gates {
		if !c.Wires[g.A].Primary {
			pending[i]++
		}
		if g.B != g.A && !c.Wires[g.B].Primary {
			pending[i]++
		}
		if pending[i] == 0 {
			ready = append(ready, i)
		}
	}
	order := make([]int, 0, len(c.Gates))
	for len(ready) > 0 {
		g := ready[0]
		ready = ready[1:]
		order = append(order, g)
		for _, r := range c.readers[c.Gates[g].Out] {
			pending[r]--
			if pending[r] == 0 {
				ready = append(ready, r)
			}
		}
	}
	if len(order) != len(c.Gates) {
		var stuck []int
		for i := range c.Gates {
			if pending[i] > 0 {
				stuck = append(stuck, i)
			}
		}
		return nil, newCycleError(c, stuck)
	}
	c.order = order
	return order, nil
}

// Values holds the value of every wire after an evaluation.
type Values struct {
	c    *Circuit
	vals []bool
}

// Wire returns the value of the named wire.
func (v Values) Wire(name string) (bool, bool) {
	idx, ok := v.c.index[name]
	if !ok {
		return false, false
	}
	return v.vals[idx], true
}

// Bus returns the number encoded by the wires with the given prefix.
func (v Values) Bus(prefix byte) uint64 {
	return v.c.busValue(v.vals, prefix)
}

// Evaluate sets the x and y buses to the given numbers, and propagates values through the gates.
// Primary wires outside the buses keep their literal value.
func (c *Circuit) Evaluate(x, y uint64) (Values, error) {
	vals := make([]bool, len(c.Wires))
	if err := c.evalInto(vals, x, y); err != nil {
		return Values{}, err
	}
	return Values{c: c, vals: vals}, nil
}

// Run evaluates the circuit with the literal values of its inputs and returns the value of its z bus.
func (c *Circuit) Run() (uint64, error) {
	var x, y uint64
	for _, w := range c.Wires {
		if !w.Primary || !w.Init || w.Bit < 0 || w.Bit >= 64 {
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
		return 0, err
	}
	return v.Bus('z'), nil
}

// evalInto evaluates the circuit, writing wire values into vals, which must have one slot per wire.
func (c *Circuit) evalInto(vals []bool, x, y uint64) error {
	order, err := c.topoOrder()
	if err != nil {
		return err
	}
	for i, w := range c.Wires {
		if !w.Primary {
			continue
		}
		switch {
		case w.Prefix == 'x' && w.Bit < 64:
			vals[i] = x&(1<<uint(w.Bit)) != 0
		case w.Prefix == 'y' && w.Bit < 64:
			vals[i] = y&(1<<uint(w.Bit)) != 0
		default:
			vals[i] = w.Init
		}
	}
	for _, gi := range order {
		g := c.Gates[gi]
		vals[g.Out] = g.Op.apply(vals[g.A], vals[g.B])
	}
	return nil
}

func (c *Circuit) busValue(vals []bool, prefix byte) uint64 {
	var res uint64
	for i, w := range c.Wires {
		if w.Prefix == prefix && w.Bit >= 0 && w.Bit < 64 && vals[i] {
			res |= 1 << uint(w.Bit)
		}
	}
	return res
}

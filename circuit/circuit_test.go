package circuit

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// adder returns the description of an n-bit ripple-carry adder computing x+y,
// with the drivers of each given pair of wires exchanged.
func adder(n int, x, y uint64, swaps ...[2]string) string {
	rename := make(map[string]string)
	for _, s := range swaps {
		rename[s[0]], rename[s[1]] = s[1], s[0]
	}
	out := func(name string) string {
		if r, ok := rename[name]; ok {
			return r
		}
		return name
	}
	carry := func(i int) string {
		if i == n {
			return fmt.Sprintf("z%02d", i)
		}
		return fmt.Sprintf("c%02d", i)
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "x%02d: %d\n", i, x>>uint(i)&1)
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "y%02d: %d\n", i, y>>uint(i)&1)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "x00 XOR y00 -> %s\n", out("z00"))
	fmt.Fprintf(&sb, "y00 AND x00 -> %s\n", out(carry(1)))
	for i := 1; i < n; i++ {
		s, r, m, z := fmt.Sprintf("s%02d", i), fmt.Sprintf("r%02d", i), fmt.Sprintf("m%02d", i), fmt.Sprintf("z%02d", i)
		fmt.Fprintf(&sb, "x%02d XOR y%02d -> %s\n", i, i, out(s))
		fmt.Fprintf(&sb, "y%02d AND x%02d -> %s\n", i, i, out(r))
		fmt.Fprintf(&sb, "%s XOR %s -> %s\n", carry(i), s, out(z))
		fmt.Fprintf(&sb, "%s AND %s -> %s\n", s, carry(i), out(m))
		fmt.Fprintf(&sb, "%s OR %s -> %s\n", r, m, out(carry(i+1)))
	}
	return sb.String()
}

const toy = `x00: 1
y00: 1

x00 XOR y00 -> z00
x00 AND y00 -> carry
`

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unknown op":     "x00: 1\ny00: 1\n\nx00 NAND y00 -> z00\n",
		"driven twice":   "x00: 1\ny00: 1\n\nx00 XOR y00 -> z00\nx00 AND y00 -> z00\n",
		"input twice":    "x00: 1\nx00: 0\n",
		"undefined wire": "x00: 1\n\nx00 XOR q00 -> z00\n",
		"driven input":   "x00: 1\ny00: 1\n\nx00 XOR y00 -> x00\n",
		"garbage":        "x00 XOR\n",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(text)
			assert.Error(t, err)
		})
	}
}

func TestParse(t *testing.T) {
	c, err := Parse(adder(4, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Bits)
	assert.Len(t, c.Gates, 2+5*3)
	assert.Equal(t, 5, c.OutputWidth())
	c2, err := Parse(c.String())
	require.NoError(t, err)
	assert.Equal(t, c.String(), c2.String())
}

func TestToyAdder(t *testing.T) {
	c, err := Parse(toy)
	require.NoError(t, err)
	swaps, err := Repair(c)
	require.NoError(t, err)
	assert.Empty(t, swaps)
	v, err := c.Evaluate(1, 1)
	require.NoError(t, err)
	z, _ := v.Wire("z00")
	carry, _ := v.Wire("carry")
	assert.False(t, z)
	assert.True(t, carry)
	require.NoError(t, Validate(c))
	require.NoError(t, CheckEquivalence(c))
}

func TestClassify(t *testing.T) {
	c, err := Parse(adder(4, 0, 0))
	require.NoError(t, err)
	cl := Classify(c)
	assert.Equal(t, len(c.Gates), cl.Classified())
	g, ok := cl.Gate(Result, 2)
	require.True(t, ok)
	assert.Equal(t, "z02", c.Wires[c.Gates[g].Out].Name)
	g, ok = cl.Gate(FullCarry, 4)
	require.True(t, ok)
	assert.Equal(t, "z04", c.Wires[c.Gates[g].Out].Name)
	g, ok = cl.Gate(FullCarry, 1)
	require.True(t, ok)
	assert.Equal(t, And, c.Gates[g].Op)
}

func TestClassifySwapped(t *testing.T) {
	c, err := Parse(adder(4, 0, 0, [2]string{"s02", "r02"}))
	require.NoError(t, err)
	cl := Classify(c)
	idx, _ := c.Wire("s02")
	assert.Equal(t, Role{RawCarry, 2}, cl.Roles[c.Wires[idx].Driver])
	idx, _ = c.Wire("z02")
	assert.Equal(t, Role{Kind: Error}, cl.Roles[c.Wires[idx].Driver])
	idx, _ = c.Wire("z03")
	assert.Equal(t, Role{Kind: Unclassified}, cl.Roles[c.Wires[idx].Driver])
	assert.Equal(t, "RawCarry(2)", Role{RawCarry, 2}.String())
}

func TestRepair(t *testing.T) {
	tests := map[string]struct {
		swaps [][2]string
		want  []string
	}{
		"correct":              {nil, []string{}},
		"result and combined":  {[][2]string{{"z03", "m03"}}, []string{"m03", "z03"}},
		"raw sum and carry":    {[][2]string{{"s05", "r05"}}, []string{"r05", "s05"}},
		"result and carry out": {[][2]string{{"z07", "c08"}}, []string{"c08", "z07"}},
		"result and raw carry": {[][2]string{{"z10", "r10"}}, []string{"r10", "z10"}},
		"carry and combined":   {[][2]string{{"c06", "m05"}}, []string{"c06", "m05"}},
		"four pairs": {
			[][2]string{{"z03", "m03"}, {"s05", "r05"}, {"z07", "c08"}, {"z10", "r10"}},
			[]string{"c08", "m03", "r05", "r10", "s05", "z03", "z07", "z10"},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := Parse(adder(12, 1234, 2345, test.swaps...))
			require.NoError(t, err)
			swaps, err := Repair(c, WithLogger(zap.NewNop()))
			require.NoError(t, err)
			assert.LessOrEqual(t, len(swaps), c.Bits)
			if diff := cmp.Diff(test.want, Names(swaps)); diff != "" {
				t.Errorf("swapped wires mismatch (-want +got):\n%s", diff)
			}
			require.NoError(t, Validate(c))
			require.NoError(t, CheckEquivalence(c))
			sum, err := c.Run()
			require.NoError(t, err)
			assert.Equal(t, uint64(1234+2345), sum)
		})
	}
}

func TestRepairDeterministic(t *testing.T) {
	text := adder(10, 0, 0, [2]string{"z02", "m02"}, [2]string{"s06", "r06"})
	var got [][]string
	for i := 0; i < 3; i++ {
		c, err := Parse(text)
		require.NoError(t, err)
		swaps, err := Repair(c)
		require.NoError(t, err)
		got = append(got, Names(swaps))
	}
	assert.Equal(t, got[0], got[1])
	assert.Equal(t, got[0], got[2])
}

func TestRepairUnrepairable(t *testing.T) {
	text := strings.Replace(adder(6, 0, 0), "c03 XOR s03 -> z03", "c03 OR s03 -> z03", 1)
	c, err := Parse(text)
	require.NoError(t, err)
	_, err = Repair(c)
	var ue *UnrepairableError
	require.True(t, errors.As(err, &ue), "got %v", err)
	assert.Equal(t, 3, ue.Bit)
}

func TestValidateDetectsSwaps(t *testing.T) {
	c, err := Parse(adder(8, 0, 0, [2]string{"z03", "m03"}))
	require.NoError(t, err)
	var se *StructureError
	require.True(t, errors.As(Validate(c), &se))
	var me *MismatchError
	require.True(t, errors.As(CheckBehaviour(c), &me))
	assert.NotEqual(t, me.Want, me.Got)
	require.True(t, errors.As(CheckEquivalence(c), &me))
	assert.NotEqual(t, me.Want, me.Got)
}

func TestCycle(t *testing.T) {
	c, err := Parse("x00: 1\ny00: 0\n\nx00 AND b -> a\na OR y00 -> b\n")
	require.NoError(t, err)
	_, err = c.Evaluate(1, 0)
	var ce *CycleError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"a", "b"}, ce.Wires)
}

func TestWriteDIMACS(t *testing.T) {
	c, err := Parse(toy)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteDIMACS(c, &buf))
	lines := strings.Split(buf.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "p cnf "))
	assert.Contains(t, lines, "c carry=4")
	assert.Contains(t, lines, "c x00=1")
}

func ExampleRepair() {
	c, err := Parse(adder(6, 0, 0, [2]string{"z02", "m02"}, [2]string{"s04", "r04"}))
	if err != nil {
		fmt.Printf("could not parse circuit: %v", err)
		return
	}
	swaps, err := Repair(c)
	if err != nil {
		fmt.Printf("could not repair circuit: %v", err)
		return
	}
	fmt.Println(strings.Join(Names(swaps), ","))
	// Output: m02,r04,s04,z02
}

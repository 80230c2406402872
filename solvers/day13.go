package solvers

import (
	"fmt"
	"regexp"
	"strconv"
)

func init() {
	register(13, day13)
}

var clawRE = regexp.MustCompile(`X[+=](\d+), Y[+=](\d+)`)

type claw struct {
	ax, ay, bx, by, px, py int
}

func parseClaws(input string) ([]claw, error) {
	var claws []claw
	for _, block := range blocks(input) {
		m := clawRE.FindAllStringSubmatch(block, -1)
		if len(m) != 3 {
			return nil, fmt.Errorf("invalid claw machine %q", block)
		}
		var vals [6]int
		for i := range vals {
			v, err := strconv.Atoi(m[i/2][1+i%2])
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		claws = append(claws, claw{vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]})
	}
	return claws, nil
}

// tokens returns the cost of winning the prize, or 0 if it cannot be won.
// Pressing A costs 3 tokens, pressing B costs 1.
func (c claw) tokens() int {
	det := c.ax*c.by - c.ay*c.bx
	if det == 0 {
		return 0
	}
	an := c.px*c.by - c.py*c.bx
	bn := c.ax*c.py - c.ay*c.px
	if an%det != 0 || bn%det != 0 {
		return 0
	}
	a, b := an/det, bn/det
	if a < 0 || b < 0 {
		return 0
	}
	return 3*a + b
}

// MinTokens returns the fewest tokens needed to win every winnable prize,
// once all prizes are moved by offset on both axes.
func MinTokens(input string, offset int) (int, error) {
	claws, err := parseClaws(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, c := range claws {
		c.px += offset
		c.py += offset
		sum += c.tokens()
	}
	return sum, nil
}

func day13(input string) (string, error) {
	n, err := MinTokens(input, 10000000000000)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

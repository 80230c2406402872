package solvers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/grid"
)

func init() {
	register(21, day21)
}

// A keypad maps each of its keys to its position. The gap is the only position
// without a key, robot arms must never point at it.
type keypad struct {
	keys map[byte]grid.Pt
	gap  grid.Pt
}

func newKeypad(rows ...string) keypad {
	k := keypad{keys: make(map[byte]grid.Pt)}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == ' ' {
				k.gap = grid.Pt{X: x, Y: y}
			} else {
				k.keys[row[x]] = grid.Pt{X: x, Y: y}
			}
		}
	}
	return k
}

var (
	numericPad     = newKeypad("789", "456", "123", " 0A")
	directionalPad = newKeypad(" ^A", "<v>")
)

var arrows = map[grid.Pt]byte{grid.North: '^', grid.East: '>', grid.South: 'v', grid.West: '<'}

// paths returns every shortest sequence of arrows going from a to b on the keypad
// without passing over the gap.
func (k keypad) paths(a, b grid.Pt) []string {
	if a == b {
		return []string{""}
	}
	var res []string
	for _, d := range grid.Dirs4 {
		next := a.Add(d)
		if next == k.gap || next.MDist(b) >= a.MDist(b) {
			continue
		}
		for _, p := range k.paths(next, b) {
			res = append(res, string(arrows[d])+p)
		}
	}
	return res
}

type press struct {
	from, to byte
	robots   int
}

// A keyChain computes how many buttons the human has to press, through a chain of
// robots using directional keypads, to type sequences on the first keypad.
type keyChain struct {
	memo map[press]int
}

// typeCost returns the number of presses needed to type seq on a directional keypad
// operated by the given number of robots.
func (kc *keyChain) typeCost(seq string, robots int) int {
	if robots == 0 {
		return len(seq)
	}
	cost, from := 0, byte('A')
	for i := 0; i < len(seq); i++ {
		cost += kc.moveCost(from, seq[i], robots)
		from = seq[i]
	}
	return cost
}

// moveCost returns the number of presses needed for the robot in front of the
// directional keypad to move from key a to key b and press it.
func (kc *keyChain) moveCost(a, b byte, robots int) int {
	key := press{a, b, robots}
	if n, ok := kc.memo[key]; ok {
		return n
	}
	best := -1
	for _, p := range directionalPad.paths(directionalPad.keys[a], directionalPad.keys[b]) {
		if n := kc.typeCost(p+"A", robots-1); best < 0 || n < best {
			best = n
		}
	}
	kc.memo[key] = best
	return best
}

// Complexity returns the sum, over all codes, of the length of the shortest
// sequence the human has to type times the numeric part of the code, when
// the given number of robots operate directional keypads between the human
// and the numeric keypad's robot.
func Complexity(input string, robots int) (int, error) {
	kc := &keyChain{memo: make(map[press]int)}
	sum := 0
	for _, code := range lines(input) {
		code = strings.TrimSpace(code)
		for i := 0; i < len(code); i++ {
			if _, ok := numericPad.keys[code[i]]; !ok {
				return 0, fmt.Errorf("invalid code %q", code)
			}
		}
		num, err := strconv.Atoi(strings.TrimRight(code, "A"))
		if err != nil {
			return 0, fmt.Errorf("invalid code %q: %w", code, err)
		}
		length, from := 0, byte('A')
		for i := 0; i < len(code); i++ {
			best := -1
			for _, p := range numericPad.paths(numericPad.keys[from], numericPad.keys[code[i]]) {
				if n := kc.typeCost(p+"A", robots); best < 0 || n < best {
					best = n
				}
			}
			length += best
			from = code[i]
		}
		sum += length * num
	}
	return sum, nil
}

func day21(input string) (string, error) {
	n, err := Complexity(input, 2)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

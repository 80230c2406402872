package solvers

import (
	"strconv"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/grid"
)

func init() {
	register(12, day12)
}

// day12 prices the fences of all regions at their area times their number of sides.
// A region has as many sides as corners, which are counted cell by cell.
func day12(input string) (string, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return "", err
	}
	seen := make(map[grid.Pt]bool)
	total := 0
	for start, plant := range g.All() {
		if seen[start] {
			continue
		}
		same := func(p grid.Pt) bool { return g.At(p) == plant }
		area, corners := 0, 0
		stack := []grid.Pt{start}
		seen[start] = true
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			area++
			for _, d := range grid.Dirs4 {
				d2 := d.Right()
				a, b := same(p.Add(d)), same(p.Add(d2))
				if !a && !b || a && b && !same(p.Add(d).Add(d2)) {
					corners++
				}
				if next := p.Add(d); a && !seen[next] {
					seen[next] = true
					stack = append(stack, next)
				}
			}
		}
		total += area * corners
	}
	return strconv.Itoa(total), nil
}

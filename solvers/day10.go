package solvers

import (
	"strconv"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/grid"
)

func init() {
	register(10, day10)
}

// height returns the height at p, or -1 if p is impassable or outside the map.
func height(g *grid.Grid, p grid.Pt) int {
	c := g.At(p)
	if c < '0' || c > '9' {
		return -1
	}
	return int(c - '0')
}

// day10 sums the ratings of all trailheads: the number of distinct hiking trails
// going from a height of 0 to a height of 9, one unit at a time.
func day10(input string) (string, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return "", err
	}
	memo := make(map[grid.Pt]int)
	var trails func(p grid.Pt) int
	trails = func(p grid.Pt) int {
		h := height(g, p)
		if h == 9 {
			return 1
		}
		if n, ok := memo[p]; ok {
			return n
		}
		n := 0
		for next := range grid.Neighbors(p) {
			if height(g, next) == h+1 {
				n += trails(next)
			}
		}
		memo[p] = n
		return n
	}
	sum := 0
	for p := range g.All() {
		if height(g, p) == 0 {
			sum += trails(p)
		}
	}
	return strconv.Itoa(sum), nil
}

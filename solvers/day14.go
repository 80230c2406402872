package solvers

import (
	"fmt"
	"strconv"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/grid"
)

func init() {
	register(14, day14)
}

type robot struct {
	pos, vel grid.Pt
}

func parseRobots(input string) ([]robot, error) {
	var robots []robot
	for _, line := range lines(input) {
		var r robot
		if _, err := fmt.Sscanf(line, "p=%d,%d v=%d,%d", &r.pos.X, &r.pos.Y, &r.vel.X, &r.vel.Y); err != nil {
			return nil, fmt.Errorf("invalid robot %q: %w", line, err)
		}
		robots = append(robots, r)
	}
	return robots, nil
}

// TreeStep returns the first step, within one period of the robots' motion on a
// w*h torus, at which robots are the most tightly packed. Packing is measured by
// summing, over occupied cells away from the border, the square of their number of
// occupied orthogonal neighbors.
func TreeStep(input string, w, h int) (int, error) {
	robots, err := parseRobots(input)
	if err != nil {
		return 0, err
	}
	size := grid.Pt{X: w, Y: h}
	best, bestScore := 0, -1
	for step := 0; step < w*h; step++ {
		g := grid.New(w, h, '.')
		for _, r := range robots {
			g.Set(r.pos.Add(r.vel.Scale(step)).Wrap(size), '#')
		}
		score := 0
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				p := grid.Pt{X: x, Y: y}
				if g.At(p) != '#' {
					continue
				}
				n := 0
				for next := range grid.Neighbors(p) {
					if g.At(next) == '#' {
						n++
					}
				}
				score += n * n
			}
		}
		if score > bestScore {
			best, bestScore = step, score
		}
	}
	return best, nil
}

func day14(input string) (string, error) {
	step, err := TreeStep(input, 101, 103)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(step), nil
}

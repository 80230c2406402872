package solvers

import (
	"errors"
	"strconv"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/grid"
)

func init() {
	register(20, day20)
}

// CountCheats returns the number of cheats lasting at most maxCheat picoseconds
// that save at least minSaving picoseconds on the race track.
// A cheat goes through walls from one track position to another.
func CountCheats(input string, maxCheat, minSaving int) (int, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return 0, err
	}
	exit, ok := g.Find('E')
	if !ok {
		return 0, errors.New("could not find the end of the track")
	}
	// Distance from every track position to the exit.
	dist := map[grid.Pt]int{exit: 0}
	queue := []grid.Pt{exit}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for next := range grid.Neighbors(p) {
			if _, ok := dist[next]; ok || !g.In(next) || g.At(next) == '#' {
				continue
			}
			dist[next] = dist[p] + 1
			queue = append(queue, next)
		}
	}
	nb := 0
	for from, d1 := range dist {
		for dy := -maxCheat; dy <= maxCheat; dy++ {
			span := maxCheat - grid.AbsDiff(dy, 0)
			for dx := -span; dx <= span; dx++ {
				to := from.Add(grid.Pt{X: dx, Y: dy})
				d2, ok := dist[to]
				if !ok {
					continue
				}
				if d1-d2-from.MDist(to) >= minSaving {
					nb++
				}
			}
		}
	}
	return nb, nil
}

func day20(input string) (string, error) {
	n, err := CountCheats(input, 20, 100)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

package solvers

import (
	"fmt"
	"strconv"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/grid"
)

func init() {
	register(18, day18)
}

// ShortestEscape returns the number of steps needed to go from the top-left corner
// to the bottom-right corner of a size*size memory space, once the first n bytes
// of the input have fallen.
func ShortestEscape(input string, size, n int) (int, error) {
	g := grid.New(size, size, '.')
	for i, line := range lines(input) {
		if i == n {
			break
		}
		xy, err := ints(line, ",")
		if err != nil {
			return 0, err
		}
		if len(xy) != 2 || !g.In(grid.Pt{X: xy[0], Y: xy[1]}) {
			return 0, fmt.Errorf("invalid byte position %q", line)
		}
		g.Set(grid.Pt{X: xy[0], Y: xy[1]}, '#')
	}
	start, exit := grid.Pt{}, grid.Pt{X: size - 1, Y: size - 1}
	dist := map[grid.Pt]int{start: 0}
	queue := []grid.Pt{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == exit {
			return dist[p], nil
		}
		for next := range grid.Neighbors(p) {
			if _, ok := dist[next]; ok || g.At(next) != '.' {
				continue
			}
			dist[next] = dist[p] + 1
			queue = append(queue, next)
		}
	}
	return 0, fmt.Errorf("exit is unreachable after %d bytes", n)
}

func day18(input string) (string, error) {
	n, err := ShortestEscape(input, 71, 1024)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

package solvers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/grid"
)

func init() {
	register(15, day15)
}

var moves = map[rune]grid.Pt{'^': grid.North, '>': grid.East, 'v': grid.South, '<': grid.West}

// day15 moves the robot around the warehouse, pushing rows of boxes unless a wall
// stands behind them, then sums the GPS coordinates of the boxes.
func day15(input string) (string, error) {
	parts := blocks(input)
	if len(parts) != 2 {
		return "", fmt.Errorf("expected a map and moves, got %d sections", len(parts))
	}
	g, err := grid.Parse(parts[0])
	if err != nil {
		return "", err
	}
	pos, ok := g.Find('@')
	if !ok {
		return "", errors.New("could not find the robot")
	}
	for _, c := range strings.Join(lines(parts[1]), "") {
		d, ok := moves[c]
		if !ok {
			return "", fmt.Errorf("invalid move %q", c)
		}
		end := pos.Add(d)
		for g.At(end) == 'O' {
			end = end.Add(d)
		}
		if g.At(end) != '.' {
			continue
		}
		next := pos.Add(d)
		if end != next {
			g.Set(end, 'O')
		}
		g.Set(next, '@')
		g.Set(pos, '.')
		pos = next
	}
	sum := 0
	for p, c := range g.All() {
		if c == 'O' {
			sum += 100*p.Y + p.X
		}
	}
	return strconv.Itoa(sum), nil
}

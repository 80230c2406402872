package solvers

import (
	"errors"
	"strconv"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/grid"
)

func init() {
	register(6, day6)
}

type heading struct {
	pos, dir grid.Pt
}

// day6 counts the cells the guard walks on before leaving the map. The guard starts
// facing north, and turns right whenever an obstruction blocks the way.
func day6(input string) (string, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return "", err
	}
	pos, ok := g.Find('^')
	if !ok {
		return "", errors.New("could not find the guard")
	}
	dir := grid.North
	visited := map[grid.Pt]bool{pos: true}
	seen := map[heading]bool{{pos, dir}: true}
	for {
		next := pos.Add(dir)
		if !g.In(next) {
			break
		}
		if g.At(next) == '#' {
			dir = dir.Right()
		} else {
			pos = next
			visited[pos] = true
		}
		h := heading{pos, dir}
		if seen[h] {
			return "", errors.New("guard walks in a loop")
		}
		seen[h] = true
	}
	return strconv.Itoa(len(visited)), nil
}

package solvers

import (
	"errors"
	"strconv"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/grid"
)

func init() {
	register(16, day16)
}

// day16 finds the lowest score a reindeer can get going from S, facing east, to E.
// Moving forward costs 1 point, turning a quarter turn costs 1000.
func day16(input string) (string, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return "", err
	}
	start, ok := g.Find('S')
	if !ok {
		return "", errors.New("could not find the start tile")
	}
	end, ok := g.Find('E')
	if !ok {
		return "", errors.New("could not find the end tile")
	}
	dist := make(map[heading]int)
	var q grid.Queue[heading]
	q.Push(heading{start, grid.East}, 0)
	for !q.Empty() {
		h, d := q.Pop()
		if best, ok := dist[h]; ok && best <= d {
			continue
		}
		dist[h] = d
		if h.pos == end {
			return strconv.Itoa(d), nil
		}
		if next := h.pos.Add(h.dir); g.At(next) != '#' && g.In(next) {
			q.Push(heading{next, h.dir}, d+1)
		}
		q.Push(heading{h.pos, h.dir.Right()}, d+1000)
		q.Push(heading{h.pos, h.dir.Left()}, d+1000)
	}
	return "", errors.New("could not reach the end tile")
}

package solvers

import (
	"strconv"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/grid"
)

func init() {
	register(4, day4)
}

func day4(input string) (string, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return "", err
	}
	const word = "XMAS"
	nb := 0
	for p, c := range g.All() {
		if c != word[0] {
			continue
		}
		for _, d := range grid.Dirs8 {
			i := 1
			for ; i < len(word); i++ {
				if g.At(p.Add(d.Scale(i))) != word[i] {
					break
				}
			}
			if i == len(word) {
				nb++
			}
		}
	}
	return strconv.Itoa(nb), nil
}

package solvers

import (
	"strconv"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/grid"
)

func init() {
	register(8, day8)
}

// day8 counts the antinodes created by antennas of the same frequency, taking
// resonant harmonics into account: every grid position in line with a pair of
// antennas, at a multiple of their distance, is an antinode.
func day8(input string) (string, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return "", err
	}
	antennas := make(map[byte][]grid.Pt)
	for p, c := range g.All() {
		if c != '.' {
			antennas[c] = append(antennas[c], p)
		}
	}
	antinodes := make(map[grid.Pt]bool)
	for _, ants := range antennas {
		for i, a := range ants {
			for _, b := range ants[i+1:] {
				d := a.Sub(b)
				for p := a; g.In(p); p = p.Add(d) {
					antinodes[p] = true
				}
				for p := b; g.In(p); p = p.Sub(d) {
					antinodes[p] = true
				}
			}
		}
	}
	return strconv.Itoa(len(antinodes)), nil
}

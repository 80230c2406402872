package solvers

import (
	"regexp"
	"strconv"
)

func init() {
	register(3, day3)
}

var instrRE = regexp.MustCompile(`mul\(([0-9]+),([0-9]+)\)|do\(\)|don't\(\)`)

// day3 adds the products of the mul instructions found in the corrupted memory,
// skipping those that follow a don't() until the next do().
func day3(input string) (string, error) {
	enabled := true
	sum := 0
	for _, m := range instrRE.FindAllStringSubmatch(input, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if !enabled {
				continue
			}
			a, err := strconv.Atoi(m[1])
			if err != nil {
				return "", err
			}
			b, err := strconv.Atoi(m[2])
			if err != nil {
				return "", err
			}
			sum += a * b
		}
	}
	return strconv.Itoa(sum), nil
}
